// Package report assembles, suppresses and renders DAO classification results
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Report holds classification results of a project scan
type Report struct {
	ID        string     `yaml:"id" json:"id"`
	Project   string     `yaml:"project,omitempty" json:"project,omitempty"`
	Root      string     `yaml:"root" json:"root"`
	CreatedAt time.Time  `yaml:"createdAt" json:"createdAt"`
	Classes   []*Class   `yaml:"classes" json:"classes"`
	Skipped   []*Skipped `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Summary   Summary    `yaml:"summary" json:"summary"`
}

// Class holds classification results of one DAO class
type Class struct {
	Path          string       `yaml:"path" json:"path"` // relative to the report root
	Name          string       `yaml:"name" json:"name"`
	Entity        string       `yaml:"entity" json:"entity"`
	Conforming    []string     `yaml:"conforming" json:"conforming"`
	NonConforming []string     `yaml:"nonConforming" json:"nonConforming"`
	Violations    []*Violation `yaml:"violations,omitempty" json:"violations,omitempty"`
}

// Violation is a non-conforming method
type Violation struct {
	Key         string `yaml:"key" json:"key"`
	Line        int    `yaml:"line,omitempty" json:"line,omitempty"` // 1-based, 0 if unknown; not part of the fingerprint
	Fingerprint string `yaml:"fingerprint" json:"fingerprint"`
	Suppressed  bool   `yaml:"suppressed,omitempty" json:"suppressed,omitempty"`
}

// Skipped is a file excluded from the report because it could not be processed
type Skipped struct {
	Path   string `yaml:"path" json:"path"`
	Reason string `yaml:"reason" json:"reason"`
}

// Summary aggregates report counters
type Summary struct {
	Files         int `yaml:"files" json:"files"`
	Classes       int `yaml:"classes" json:"classes"`
	Conforming    int `yaml:"conforming" json:"conforming"`
	NonConforming int `yaml:"nonConforming" json:"nonConforming"`
	Suppressed    int `yaml:"suppressed" json:"suppressed"`
}

// New creates an empty report
func New(project, root string) *Report {
	return &Report{
		ID:        uuid.New().String(),
		Project:   project,
		Root:      root,
		CreatedAt: time.Now(),
	}
}

// NewClass creates a class entry with a violation for every non-conforming key
func NewClass(path, name, entity string, conforming, nonConforming []string) *Class {
	ret := &Class{
		Path:          path,
		Name:          name,
		Entity:        entity,
		Conforming:    append([]string{}, conforming...),
		NonConforming: append([]string{}, nonConforming...),
	}
	for _, methodKey := range ret.NonConforming {
		ret.Violations = append(ret.Violations, &Violation{Key: methodKey, Fingerprint: Fingerprint(path, name, methodKey)})
	}
	return ret
}

// SetLines assigns declaration lines to violations
func (c *Class) SetLines(line func(methodKey string) int) {
	for _, violation := range c.Violations {
		violation.Line = line(violation.Key)
	}
}

// AddClass appends a class entry
func (r *Report) AddClass(class *Class) {
	r.Classes = append(r.Classes, class)
}

// AddSkipped records a file that could not be processed
func (r *Report) AddSkipped(path, reason string) {
	r.Skipped = append(r.Skipped, &Skipped{Path: path, Reason: reason})
}

// Finalize sorts entries and recomputes the summary
func (r *Report) Finalize(files int) {
	sort.Slice(r.Classes, func(i, j int) bool {
		if r.Classes[i].Path == r.Classes[j].Path {
			return r.Classes[i].Name < r.Classes[j].Name
		}
		return r.Classes[i].Path < r.Classes[j].Path
	})
	sort.Slice(r.Skipped, func(i, j int) bool {
		return r.Skipped[i].Path < r.Skipped[j].Path
	})
	r.Summary = Summary{Files: files, Classes: len(r.Classes)}
	r.summarize()
}

func (r *Report) summarize() {
	r.Summary.Conforming, r.Summary.NonConforming, r.Summary.Suppressed = 0, 0, 0
	for _, class := range r.Classes {
		r.Summary.Conforming += len(class.Conforming)
		r.Summary.NonConforming += len(class.NonConforming)
		for _, violation := range class.Violations {
			if violation.Suppressed {
				r.Summary.Suppressed++
			}
		}
	}
}

// Violations returns the number of unsuppressed violations
func (r *Report) Violations() int {
	count := 0
	for _, class := range r.Classes {
		for _, violation := range class.Violations {
			if !violation.Suppressed {
				count++
			}
		}
	}
	return count
}
