// Package config provides configuration loading and management for daocheck.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/daocheck/analyzer"
	"github.com/viant/daocheck/report"
	"gopkg.in/yaml.v3"
)

// ErrInvalid reports an invalid configuration
var ErrInvalid = errors.New("invalid configuration")

// Config represents the complete daocheck configuration
type Config struct {
	// Suffix qualifies DAO class names (default: DAO)
	Suffix string `yaml:"suffix"`
	// TrivialTypes extends the trivial type whitelist
	TrivialTypes []string `yaml:"trivialTypes,omitempty"`
	// ReplaceTrivialTypes uses TrivialTypes instead of the default whitelist
	ReplaceTrivialTypes bool `yaml:"replaceTrivialTypes"`
	// TransitiveSupertypes follows the whole supertype chain instead of direct supertypes only
	TransitiveSupertypes bool `yaml:"transitiveSupertypes"`
	// Include lists doublestar globs of source files to scan, relative to the root
	Include []string `yaml:"include,omitempty"`
	// Exclude lists doublestar globs of source files to skip, relative to the root
	Exclude []string `yaml:"exclude,omitempty"`
	// Concurrency caps parallel file processing (0 = number of CPUs)
	Concurrency int `yaml:"concurrency"`
	// Format is the report format: text, yaml or json
	Format string `yaml:"format"`
	// Baseline is the location of accepted violation fingerprints; a relative path
	// is resolved against the folder of the config file setting it
	Baseline string `yaml:"baseline,omitempty"`
	// FailOnViolation makes unsuppressed violations fail the check
	FailOnViolation bool `yaml:"failOnViolation"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Suffix:          analyzer.DefaultSuffix,
		Include:         []string{"**/*.java"},
		Format:          report.FormatText,
		FailOnViolation: true,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Suffix == "" {
		return fmt.Errorf("%w: suffix is required", ErrInvalid)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must not be negative", ErrInvalid)
	}
	if _, err := report.NewEmitter(c.Format, false); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for _, patterns := range [][]string{c.Include, c.Exclude} {
		for _, pattern := range patterns {
			if !doublestar.ValidatePattern(pattern) {
				return fmt.Errorf("%w: malformed glob %q", ErrInvalid, pattern)
			}
		}
	}
	return nil
}

// Workers returns the effective concurrency
func (c *Config) Workers() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.NumCPU()
}

// CheckerOptions returns classification options derived from the configuration
func (c *Config) CheckerOptions() []analyzer.Option {
	options := []analyzer.Option{analyzer.WithSuffix(c.Suffix)}
	if c.ReplaceTrivialTypes {
		options = append(options, analyzer.WithTrivialTypes(c.TrivialTypes...))
	} else if len(c.TrivialTypes) > 0 {
		options = append(options, analyzer.WithExtraTrivialTypes(c.TrivialTypes...))
	}
	if c.TransitiveSupertypes {
		options = append(options, analyzer.WithTransitiveSupertypes())
	}
	return options
}

// Overlay decodes YAML on top of the current values; keys absent from data keep their values
func (c *Config) Overlay(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// overlayFile applies data read from URL and resolves a relative baseline it sets
func (c *Config) overlayFile(URL string, data []byte) error {
	baseline := c.Baseline
	if err := c.Overlay(data); err != nil {
		return fmt.Errorf("%s: %w", URL, err)
	}
	if c.Baseline != baseline && isRelative(c.Baseline) {
		parent, _ := url.Split(URL, file.Scheme)
		c.Baseline = url.Join(parent, c.Baseline)
	}
	return nil
}

func isRelative(location string) bool {
	return location != "" && !strings.Contains(location, "://") && !path.IsAbs(location) && !filepath.IsAbs(location)
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", URL, err)
	}
	config := DefaultConfig()
	if err := config.overlayFile(URL, data); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(ctx context.Context, fs afs.Service, URL string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := fs.Upload(ctx, URL, 0644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
