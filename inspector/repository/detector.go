package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

const (
	TypeMaven   = "maven"
	TypeGradle  = "gradle"
	TypeGit     = "git"
	TypeUnknown = "unknown"
)

// maxDepth bounds the upward search
const maxDepth = 64

var gradleNameExpr = regexp.MustCompile(`(?:rootProject|project)\.name\s*=\s*['"]([^'"]+)['"]`)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	fs afs.Service
	// project root marker files/directories, in priority order
	markers []string
}

// New creates a new project detector instance
func New(fs afs.Service) *Detector {
	if fs == nil {
		fs = afs.New()
	}
	return &Detector{
		fs: fs,
		markers: []string{
			"pom.xml",             // Maven projects
			"settings.gradle",     // Gradle projects
			"settings.gradle.kts", // Gradle Kotlin DSL projects
			"build.gradle",        // Gradle projects
			"build.gradle.kts",    // Gradle Kotlin DSL projects
			".git",                // Generic VCS marker
		},
	}
}

// DetectProject identifies the project enclosing URL; an unmarked location yields an unknown project rooted at URL
func (d *Detector) DetectProject(ctx context.Context, URL string) (*Project, error) {
	URL = strings.TrimRight(URL, "/")
	ok, err := d.fs.Exists(ctx, URL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("project location not found: %s", URL)
	}
	rootURL, marker := d.findProjectRoot(ctx, URL)
	if rootURL == "" {
		return &Project{RootURL: URL, Type: TypeUnknown, Name: folderName(URL)}, nil
	}
	project := &Project{RootURL: rootURL, Type: projectType(marker)}
	if gitRoot := d.findGitRoot(ctx, rootURL); gitRoot != "" {
		project.Origin = d.gitOrigin(ctx, gitRoot)
	}
	project.Name = d.projectName(ctx, project)
	return project, nil
}

func (d *Detector) findProjectRoot(ctx context.Context, URL string) (string, string) {
	dir := URL
	for i := 0; i < maxDepth; i++ {
		for _, marker := range d.markers {
			if ok, _ := d.fs.Exists(ctx, url.Join(dir, marker)); ok {
				return dir, marker
			}
		}
		parent, ok := parentURL(dir)
		if !ok {
			break
		}
		dir = parent
	}
	return "", ""
}

func (d *Detector) findGitRoot(ctx context.Context, URL string) string {
	dir := URL
	for i := 0; i < maxDepth; i++ {
		if ok, _ := d.fs.Exists(ctx, url.Join(dir, ".git")); ok {
			return dir
		}
		parent, ok := parentURL(dir)
		if !ok {
			break
		}
		dir = parent
	}
	return ""
}

// gitOrigin extracts the origin URL from git config
func (d *Detector) gitOrigin(ctx context.Context, gitRoot string) string {
	data, err := d.fs.DownloadWithURL(ctx, url.Join(gitRoot, ".git", "config"))
	if err != nil {
		return ""
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			foundRemote = strings.Contains(line, `[remote "origin"]`)
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url") {
			if _, value, ok := strings.Cut(line, "="); ok {
				return strings.TrimSpace(value)
			}
		}
	}
	return ""
}

func (d *Detector) projectName(ctx context.Context, project *Project) string {
	switch project.Type {
	case TypeMaven:
		if pom, err := d.LoadPom(ctx, url.Join(project.RootURL, "pom.xml")); err == nil {
			project.Pom = pom
			if pom.ArtifactID != "" {
				return pom.ArtifactID
			}
		}
	case TypeGradle:
		for _, candidate := range []string{"settings.gradle", "settings.gradle.kts", "build.gradle", "build.gradle.kts"} {
			data, err := d.fs.DownloadWithURL(ctx, url.Join(project.RootURL, candidate))
			if err != nil {
				continue
			}
			if matches := gradleNameExpr.FindSubmatch(data); len(matches) == 2 {
				return string(matches[1])
			}
		}
	}
	if project.Origin != "" {
		name := strings.TrimSuffix(strings.TrimRight(project.Origin, "/"), ".git")
		if index := strings.LastIndexAny(name, "/:"); index != -1 {
			name = name[index+1:]
		}
		if name != "" {
			return name
		}
	}
	return folderName(project.RootURL)
}

// LoadPom decodes the project coordinates of a Maven POM file
func (d *Detector) LoadPom(ctx context.Context, URL string) (*Pom, error) {
	data, err := d.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, err
	}
	pom := &Pom{}
	if err = xml.Unmarshal(data, pom); err != nil {
		return nil, err
	}
	if pom.GroupID == "" {
		pom.GroupID = pom.Parent.GroupID
	}
	if pom.Version == "" {
		pom.Version = pom.Parent.Version
	}
	return pom, nil
}

func projectType(marker string) string {
	switch marker {
	case "pom.xml":
		return TypeMaven
	case "settings.gradle", "settings.gradle.kts", "build.gradle", "build.gradle.kts":
		return TypeGradle
	case ".git":
		return TypeGit
	}
	return TypeUnknown
}

func parentURL(URL string) (string, bool) {
	if location := url.Path(URL); location == "" || location == "/" {
		return "", false
	}
	parent, name := url.Split(URL, file.Scheme)
	if name == "" || parent == "" || parent == URL {
		return "", false
	}
	return parent, true
}

func folderName(URL string) string {
	return path.Base(url.Path(URL))
}
