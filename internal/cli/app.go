// Package cli holds the dependencies shared by the dumber-overlay commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/dumber-overlay/internal/application/usecase"
	"github.com/bnema/dumber-overlay/internal/cli/styles"
	"github.com/bnema/dumber-overlay/internal/domain/build"
	"github.com/bnema/dumber-overlay/internal/infrastructure/config"
	"github.com/bnema/dumber-overlay/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	ctx context.Context
}

// NewApp loads the configuration from configDir, or from the XDG config
// directory when configDir is empty, and builds the logger it describes.
func NewApp(configDir string) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configDir != "" {
		mgr, err = config.NewManagerForDir(configDir)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		ctx:           logging.WithContext(context.Background(), logger),
	}, nil
}

// Context returns the base context carrying the app logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// ContentURLs builds the resolver for the configured build mode.
func (a *App) ContentURLs() (*usecase.ResolveContentURLUseCase, error) {
	mode, err := build.ParseMode(a.Config.Mode)
	if err != nil {
		return nil, err
	}
	return usecase.NewResolveContentURLUseCase(usecase.ResolveContentURLInput{
		Mode:         mode,
		DevServerURL: a.Config.DevServerURL,
		AppPath:      a.Config.AppPath,
	})
}
