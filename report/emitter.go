package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Emitter renders a report
type Emitter interface {
	Emit(report *Report) ([]byte, error)
}

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// NewEmitter returns an emitter for format
func NewEmitter(format string, verbose bool) (Emitter, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return &TextEmitter{Verbose: verbose}, nil
	case FormatYAML, "yml":
		return &YAMLEmitter{}, nil
	case FormatJSON:
		return &JSONEmitter{}, nil
	}
	return nil, fmt.Errorf("unsupported report format: %s", format)
}

// YAMLEmitter renders a report as YAML
type YAMLEmitter struct{}

func (e *YAMLEmitter) Emit(report *Report) ([]byte, error) {
	buffer := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buffer)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// JSONEmitter renders a report as indented JSON
type JSONEmitter struct{}

func (e *JSONEmitter) Emit(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// TextEmitter renders a human readable report; Verbose lists conforming methods too
type TextEmitter struct {
	Verbose bool
}

func (e *TextEmitter) Emit(report *Report) ([]byte, error) {
	builder := &strings.Builder{}
	title := report.Root
	if report.Project != "" {
		title = report.Project + " (" + report.Root + ")"
	}
	builder.WriteString("daocheck: " + title + "\n")
	for _, class := range report.Classes {
		if len(class.Violations) == 0 && !e.Verbose {
			continue
		}
		fmt.Fprintf(builder, "\n%s %s (entity: %s)\n", class.Path, class.Name, class.Entity)
		if e.Verbose {
			for _, methodKey := range class.Conforming {
				fmt.Fprintf(builder, "  ok    %s\n", methodKey)
			}
		}
		for _, violation := range class.Violations {
			status := "FAIL"
			if violation.Suppressed {
				status = "skip"
			}
			fmt.Fprintf(builder, "  %-5s %s [%s]", status, violation.Key, violation.Fingerprint)
			if violation.Line > 0 {
				fmt.Fprintf(builder, " %s:%d", class.Path, violation.Line)
			}
			builder.WriteString("\n")
		}
	}
	for _, skipped := range report.Skipped {
		fmt.Fprintf(builder, "\nskipped %s: %s\n", skipped.Path, skipped.Reason)
	}
	summary := report.Summary
	fmt.Fprintf(builder, "\n%d files, %d classes, %d conforming, %d non-conforming (%d suppressed)\n",
		summary.Files, summary.Classes, summary.Conforming, summary.NonConforming, summary.Suppressed)
	return []byte(builder.String()), nil
}
