package config

import (
	"os"
	"path/filepath"

	"github.com/bnema/dumber-overlay/internal/domain/build"
)

// Default configuration constants
const (
	defaultDevServerURL = "http://localhost:4444"
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"

	// Dialog defaults
	defaultHideGraceMs = 0
)

// defaultAppPath returns the directory of the running executable, or the
// working directory when it cannot be resolved.
func defaultAppPath() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Mode:         string(build.ModePackaged),
		DevServerURL: defaultDevServerURL,
		AppPath:      defaultAppPath(),
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Dialogs: map[string]DialogConfig{
			"menu": {
				HideGraceMs: defaultHideGraceMs,
				Width:       320,
				Height:      400,
			},
			"omnibox": {
				HideGraceMs: 150,
				Width:       640,
				Height:      360,
			},
		},
	}
}
