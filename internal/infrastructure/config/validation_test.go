package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown mode",
			mutate:  func(c *Config) { c.Mode = "staging" },
			wantErr: "mode must be one of",
		},
		{
			name: "relative dev server url",
			mutate: func(c *Config) {
				c.Mode = "development"
				c.DevServerURL = "localhost"
			},
			wantErr: "dev_server_url must be an absolute URL",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "logging.level is invalid",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format must be one of",
		},
		{
			name:    "bad dialog name",
			mutate:  func(c *Config) { c.Dialogs["Bad Name"] = DialogConfig{} },
			wantErr: "dialogs.Bad Name",
		},
		{
			name:    "negative height",
			mutate:  func(c *Config) { c.Dialogs["menu"] = DialogConfig{Height: -1} },
			wantErr: "dialogs.menu.height must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_PackagedIgnoresDevServerURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DevServerURL = ""
	assert.NoError(t, validateConfig(cfg))
}
