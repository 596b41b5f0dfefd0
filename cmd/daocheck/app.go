package main

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/daocheck/config"
	"github.com/viant/daocheck/report"
	"github.com/viant/daocheck/scanner"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time
var Version = "dev"

// errViolations signals unsuppressed violations; it is reported through the exit code only
var errViolations = errors.New("unsuppressed DAO naming violations")

type app struct {
	fs     afs.Service
	logger *zap.Logger
	// global flags
	configURL       string
	format          string
	suffix          string
	baseline        string
	concurrency     int
	failOnViolation bool
	verbose         bool
	output          string
}

func newApp() *app {
	return &app{fs: afs.New()}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:   "daocheck [path]",
		Short: "Checks that DAO methods are named after the entity they serve",
		Long: `daocheck scans a Java source tree and classifies every public method of each
*DAO class as conforming or non-conforming: a method of InvoiceDAO conforms when
its return type or parameters relate to Invoice (by name, generics, enums or
declared supertypes) or are plain value types.

Running without a sub-command is the same as "daocheck check".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			logConfig := zap.NewProductionConfig()
			logConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if a.verbose {
				logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			if a.logger, err = logConfig.Build(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runCheck,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configURL, "config", "", "explicit config file (overrides user and project config)")
	flags.StringVar(&a.format, "format", "", "report format: text, yaml or json")
	flags.StringVar(&a.suffix, "suffix", "", "DAO class name suffix")
	flags.StringVar(&a.baseline, "baseline", "", "baseline file with accepted violations (relative to the working directory)")
	flags.IntVar(&a.concurrency, "concurrency", 0, "files processed in parallel (0 = number of CPUs)")
	flags.BoolVar(&a.failOnViolation, "fail-on-violation", true, "exit with status 1 on unsuppressed violations")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging and conforming methods in text reports")
	flags.StringVarP(&a.output, "output", "o", "", "output file (default: stdout; baseline: daocheck-baseline.yaml)")

	root.AddCommand(&cobra.Command{
		Use:   "check [path]",
		Short: "Classify DAO methods and report violations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runCheck,
	})
	root.AddCommand(&cobra.Command{
		Use:   "baseline [path]",
		Short: "Record current violations as accepted",
		Long: `Scans the tree and writes the fingerprint of every current violation to a
baseline file; later checks with --baseline only fail on new violations.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runBaseline,
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "daocheck %s\n", Version)
		},
	})
	return root
}

// loadConfig resolves layered configuration and applies explicitly set flags
func (a *app) loadConfig(cmd *cobra.Command, rootURL string) (*config.Config, error) {
	cfg, err := config.NewLoader(a.fs, a.logger).Load(cmd.Context(), rootURL, location(a.configURL))
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("suffix") {
		cfg.Suffix = a.suffix
	}
	if flags.Changed("baseline") {
		cfg.Baseline = a.baseline
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = a.concurrency
	}
	if flags.Changed("fail-on-violation") {
		cfg.FailOnViolation = a.failOnViolation
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) scan(cmd *cobra.Command, args []string) (*config.Config, *report.Report, error) {
	rootURL := "."
	if len(args) > 0 {
		rootURL = args[0]
	}
	rootURL = location(rootURL)
	cfg, err := a.loadConfig(cmd, rootURL)
	if err != nil {
		return nil, nil, err
	}
	options := []scanner.Option{
		scanner.WithFS(a.fs),
		scanner.WithLogger(a.logger),
		scanner.WithCheckerOptions(cfg.CheckerOptions()...),
		scanner.WithConcurrency(cfg.Workers()),
		scanner.WithExclude(cfg.Exclude...),
	}
	if len(cfg.Include) > 0 {
		options = append(options, scanner.WithInclude(cfg.Include...))
	}
	r, err := scanner.New(options...).Scan(cmd.Context(), rootURL)
	if err != nil {
		return nil, nil, err
	}
	return cfg, r, nil
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	cfg, r, err := a.scan(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Baseline != "" {
		baseline, err := report.LoadBaseline(cmd.Context(), a.fs, location(cfg.Baseline))
		if err != nil {
			return err
		}
		suppressed := baseline.Apply(r)
		a.logger.Debug("applied baseline", zap.String("url", cfg.Baseline), zap.Int("suppressed", suppressed))
	}
	emitter, err := report.NewEmitter(cfg.Format, a.verbose)
	if err != nil {
		return err
	}
	data, err := emitter.Emit(r)
	if err != nil {
		return err
	}
	if err = a.write(cmd, data); err != nil {
		return err
	}
	if cfg.FailOnViolation && r.Violations() > 0 {
		return errViolations
	}
	return nil
}

func (a *app) runBaseline(cmd *cobra.Command, args []string) error {
	_, r, err := a.scan(cmd, args)
	if err != nil {
		return err
	}
	output := a.output
	if output == "" {
		output = "daocheck-baseline.yaml"
	}
	baseline := report.NewBaseline(r)
	if err = baseline.Save(cmd.Context(), a.fs, location(output)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "recorded %d violations in %s\n", len(baseline.Fingerprints), output)
	return nil
}

func (a *app) write(cmd *cobra.Command, data []byte) error {
	if a.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return a.fs.Upload(cmd.Context(), location(a.output), 0644, bytes.NewReader(data))
}

// location turns a local path into an absolute one; URLs are returned unchanged
func location(path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	if absolute, err := filepath.Abs(path); err == nil {
		return absolute
	}
	return path
}
