package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"go.uber.org/zap"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "daocheck.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/daocheck"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// maxDepth bounds the upward project config search
const maxDepth = 64

// Loader handles configuration loading with layered precedence
type Loader struct {
	fs         afs.Service
	logger     *zap.Logger
	userConfig string
}

// NewLoader creates a new configuration loader
func NewLoader(fs afs.Service, logger *zap.Logger) *Loader {
	if fs == nil {
		fs = afs.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{fs: fs, logger: logger, userConfig: userConfigPath()}
}

// WithUserConfig overrides the user config location
func (l *Loader) WithUserConfig(URL string) *Loader {
	l.userConfig = URL
	return l
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/daocheck/config.yaml)
// 3. Project config (daocheck.yaml in rootURL or its parents)
// 4. Explicit config file, if any
// A missing user or project file is skipped, a malformed one is an error.
func (l *Loader) Load(ctx context.Context, rootURL, explicitURL string) (*Config, error) {
	config := DefaultConfig()
	if l.userConfig != "" {
		if err := l.overlay(ctx, config, l.userConfig, false); err != nil {
			return nil, err
		}
	}
	if projectConfig := l.FindProjectConfig(ctx, rootURL); projectConfig != "" {
		if err := l.overlay(ctx, config, projectConfig, true); err != nil {
			return nil, err
		}
	} else {
		l.logger.Debug("no project config found", zap.String("root", rootURL))
	}
	if explicitURL != "" {
		if err := l.overlay(ctx, config, explicitURL, true); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *Loader) overlay(ctx context.Context, config *Config, URL string, required bool) error {
	if !required {
		if ok, _ := l.fs.Exists(ctx, URL); !ok {
			return nil
		}
	}
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return err
	}
	if err = config.overlayFile(URL, data); err != nil {
		return err
	}
	l.logger.Debug("loaded config", zap.String("url", URL))
	return nil
}

// FindProjectConfig searches for daocheck.yaml in rootURL and its parent folders
func (l *Loader) FindProjectConfig(ctx context.Context, rootURL string) string {
	if rootURL == "" {
		return ""
	}
	dir := rootURL
	for i := 0; i < maxDepth; i++ {
		candidate := url.Join(dir, ProjectConfigFile)
		if ok, _ := l.fs.Exists(ctx, candidate); ok {
			return candidate
		}
		if location := url.Path(dir); location == "" || location == "/" {
			break
		}
		parent, name := url.Split(dir, file.Scheme)
		if name == "" || parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}
