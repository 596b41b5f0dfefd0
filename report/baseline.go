package report

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Baseline lists fingerprints of accepted violations
type Baseline struct {
	Fingerprints []string `yaml:"fingerprints"`
	index        map[string]bool
}

// NewBaseline captures every violation of a report
func NewBaseline(r *Report) *Baseline {
	ret := &Baseline{}
	for _, class := range r.Classes {
		for _, violation := range class.Violations {
			ret.Fingerprints = append(ret.Fingerprints, violation.Fingerprint)
		}
	}
	sort.Strings(ret.Fingerprints)
	return ret
}

// LoadBaseline reads a YAML baseline
func LoadBaseline(ctx context.Context, fs afs.Service, URL string) (*Baseline, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline %s: %w", URL, err)
	}
	ret := &Baseline{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode baseline %s: %w", URL, err)
	}
	return ret, nil
}

// Save writes the baseline as YAML
func (b *Baseline) Save(ctx context.Context, fs afs.Service, URL string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return err
	}
	if err = fs.Upload(ctx, URL, 0644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write baseline %s: %w", URL, err)
	}
	return nil
}

// Contains reports whether fingerprint is accepted
func (b *Baseline) Contains(fingerprint string) bool {
	if b.index == nil {
		b.index = make(map[string]bool, len(b.Fingerprints))
		for _, item := range b.Fingerprints {
			b.index[item] = true
		}
	}
	return b.index[fingerprint]
}

// Apply marks accepted violations as suppressed and returns how many were suppressed
func (b *Baseline) Apply(r *Report) int {
	count := 0
	for _, class := range r.Classes {
		for _, violation := range class.Violations {
			if b.Contains(violation.Fingerprint) {
				violation.Suppressed = true
				count++
			}
		}
	}
	r.summarize()
	return count
}
