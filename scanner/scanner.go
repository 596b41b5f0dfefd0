// Package scanner classifies every DAO class of a Java source tree
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/daocheck/analyzer"
	"github.com/viant/daocheck/analyzer/kb"
	"github.com/viant/daocheck/inspector/java"
	"github.com/viant/daocheck/inspector/repository"
	"github.com/viant/daocheck/report"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Scanner indexes a source tree and classifies its DAO classes
type Scanner struct {
	fs             afs.Service
	logger         *zap.Logger
	inspector      *java.Inspector
	detector       *repository.Detector
	checkerOptions []analyzer.Option
	include        []string
	exclude        []string
	concurrency    int
}

// source is a file kept by the walk
type source struct {
	URL       string
	path      string // relative to the scan root
	data      []byte
	className string
}

// New creates a scanner
func New(options ...Option) *Scanner {
	ret := &Scanner{
		fs:          afs.New(),
		logger:      zap.NewNop(),
		include:     []string{"**/*.java"},
		concurrency: runtime.NumCPU(),
	}
	for _, option := range options {
		option(ret)
	}
	ret.inspector = java.NewInspector(ret.fs)
	ret.detector = repository.New(ret.fs)
	return ret
}

// Scan walks rootURL, indexes every selected file, then classifies files declaring a DAO class.
// Unparsable files are reported as skipped; I/O failures and cancellation abort the scan.
func (s *Scanner) Scan(ctx context.Context, rootURL string) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rootURL = strings.TrimRight(rootURL, "/")
	files, err := s.collect(ctx, rootURL)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", rootURL, err)
	}
	projectName := ""
	if project, err := s.detector.DetectProject(ctx, rootURL); err == nil {
		projectName = project.Name
		s.logger.Debug("detected project", zap.String("name", project.Name), zap.String("type", project.Type), zap.String("root", project.RootURL))
	}
	ret := report.New(projectName, rootURL)
	s.logger.Info("scanning sources", zap.String("root", rootURL), zap.Int("files", len(files)))

	builder := kb.NewBuilder()
	mux := sync.Mutex{}
	skip := func(file *source, err error) {
		s.logger.Warn("skipping unparsable source", zap.String("path", file.path), zap.Error(err))
		mux.Lock()
		ret.AddSkipped(file.path, err.Error())
		mux.Unlock()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)
	for _, file := range files {
		group.Go(func() error {
			data, err := s.fs.DownloadWithURL(groupCtx, file.URL)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file.URL, err)
			}
			className, err := s.inspector.Index(groupCtx, data, builder)
			if err != nil {
				if errors.Is(err, java.ErrSyntax) {
					skip(file, err)
					return nil
				}
				return fmt.Errorf("failed to index %s: %w", file.path, err)
			}
			file.data, file.className = data, className
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}
	registry := builder.Build()
	enumerators, supertypes := registry.Len()
	s.logger.Debug("indexed sources", zap.Int("enumerators", enumerators), zap.Int("supertypes", supertypes))

	checker := analyzer.New(append(append([]analyzer.Option{}, s.checkerOptions...), analyzer.WithRegistry(registry))...)
	s.logger.Debug("classifying DAO classes", zap.String("suffix", checker.Suffix()))
	classes := make([]*report.Class, len(files))
	group, groupCtx = errgroup.WithContext(ctx)
	group.SetLimit(s.concurrency)
	for i, file := range files {
		if file.data == nil || !checker.IsDAO(file.className) {
			continue
		}
		group.Go(func() error {
			walker := checker.NewWalker()
			if err := s.inspector.InspectSource(groupCtx, file.data, walker); err != nil {
				return fmt.Errorf("failed to inspect %s: %w", file.path, err)
			}
			result := walker.Result()
			class := report.NewClass(file.path, walker.ClassName(), walker.Entity(), result.Conforming(), result.NonConforming())
			class.SetLines(result.Line)
			classes[i] = class
			s.logger.Debug("classified", zap.String("path", file.path), zap.String("class", walker.ClassName()),
				zap.Int("conforming", len(result.Conforming())), zap.Int("nonConforming", len(result.NonConforming())))
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, err
	}
	for _, class := range classes {
		if class != nil {
			ret.AddClass(class)
		}
	}
	ret.Finalize(len(files))
	s.logger.Info("scan completed", zap.Int("classes", ret.Summary.Classes), zap.Int("nonConforming", ret.Summary.NonConforming))
	return ret, nil
}

// collect returns the selected source files sorted by relative path
func (s *Scanner) collect(ctx context.Context, rootURL string) ([]*source, error) {
	var files []*source
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if !JavaFiles(info) {
			return !info.IsDir(), nil
		}
		if info.IsDir() {
			return true, nil
		}
		relative := path.Join(parent, info.Name())
		if !s.selected(relative) {
			return true, nil
		}
		files = append(files, &source{URL: url.Join(baseURL, parent, info.Name()), path: relative})
		return true, nil
	}
	if err := s.fs.Walk(ctx, rootURL, visitor); err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].path < files[j].path
	})
	return files, nil
}

func (s *Scanner) selected(relative string) bool {
	if !matchAny(s.include, relative) {
		return false
	}
	return !matchAny(s.exclude, relative)
}

func matchAny(patterns []string, relative string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, relative); ok {
			return true
		}
	}
	return false
}
