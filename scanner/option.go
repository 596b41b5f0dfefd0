package scanner

import (
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/daocheck/analyzer"
	"go.uber.org/zap"
)

type Option func(*Scanner)

// WithFS sets the storage service used to walk and read sources
func WithFS(fs afs.Service) Option {
	return func(s *Scanner) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCheckerOptions sets classification options; the scanner supplies the registry
func WithCheckerOptions(options ...analyzer.Option) Option {
	return func(s *Scanner) {
		s.checkerOptions = append(s.checkerOptions, options...)
	}
}

// WithInclude sets doublestar globs of files to scan, relative to the root
func WithInclude(patterns ...string) Option {
	return func(s *Scanner) {
		s.include = patterns
	}
}

// WithExclude sets doublestar globs of files to skip, relative to the root
func WithExclude(patterns ...string) Option {
	return func(s *Scanner) {
		s.exclude = patterns
	}
}

// WithConcurrency caps the number of files processed in parallel
func WithConcurrency(workers int) Option {
	return func(s *Scanner) {
		if workers > 0 {
			s.concurrency = workers
		}
	}
}

// JavaFiles matches Java source files and skips common build and VCS directories.
func JavaFiles(info os.FileInfo) bool {
	if info.IsDir() {
		switch info.Name() {
		case "target", "build", "out", ".git", "node_modules":
			return false
		}
		return true
	}
	return filepath.Ext(info.Name()) == ".java"
}
