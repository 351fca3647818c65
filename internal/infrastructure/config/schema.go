package config

import (
	"maps"
	"slices"
	"time"

	"github.com/bnema/dumber-overlay/internal/domain/entity"
)

// Config represents the complete configuration for dumber-overlay.
type Config struct {
	// Mode selects where dialog pages are loaded from (development, packaged).
	Mode string `mapstructure:"mode" toml:"mode" json:"mode" jsonschema:"enum=development,enum=packaged"`
	// DevServerURL serves dialog pages in development mode.
	DevServerURL string `mapstructure:"dev_server_url" toml:"dev_server_url" json:"dev_server_url"`
	// AppPath is the application directory holding build/<name>.html in packaged mode.
	AppPath string        `mapstructure:"app_path" toml:"app_path" json:"app_path"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Dialogs holds per-dialog settings keyed by dialog name.
	Dialogs map[string]DialogConfig `mapstructure:"dialogs" toml:"dialogs" json:"dialogs"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// DialogConfig holds the settings of one dialog.
type DialogConfig struct {
	// HideGraceMs keeps a hidden dialog attached for this long so its page can animate out.
	HideGraceMs int  `mapstructure:"hide_grace_ms" toml:"hide_grace_ms" json:"hide_grace_ms" jsonschema:"minimum=0"`
	DevTools    bool `mapstructure:"devtools" toml:"devtools" json:"devtools"`
	X           int  `mapstructure:"x" toml:"x" json:"x"`
	Y           int  `mapstructure:"y" toml:"y" json:"y"`
	Width       int  `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=0"`
	Height      int  `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=0"`
}

// Bounds returns the configured geometry.
func (d DialogConfig) Bounds() entity.Rect {
	return entity.Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
}

// HideGrace returns the configured grace period.
func (d DialogConfig) HideGrace() time.Duration {
	return time.Duration(d.HideGraceMs) * time.Millisecond
}

// Dialog returns the settings for name, or zero settings when none exist.
func (c *Config) Dialog(name string) (DialogConfig, bool) {
	d, ok := c.Dialogs[name]
	return d, ok
}

// DialogNames returns the configured dialog names, sorted.
func (c *Config) DialogNames() []string {
	return slices.Sorted(maps.Keys(c.Dialogs))
}

func (c *Config) clone() *Config {
	out := *c
	if c.Dialogs != nil {
		out.Dialogs = make(map[string]DialogConfig, len(c.Dialogs))
		for k, v := range c.Dialogs {
			out.Dialogs[k] = v
		}
	}
	return &out
}
