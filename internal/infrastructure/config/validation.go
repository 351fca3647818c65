package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/dumber-overlay/internal/domain/build"
	"github.com/bnema/dumber-overlay/internal/domain/entity"
	"github.com/bnema/dumber-overlay/internal/logging"
)

// validateConfig performs validation of configuration values and reports
// every problem at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateMode(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDialogs(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateMode(config *Config) []string {
	var validationErrors []string
	mode, err := build.ParseMode(config.Mode)
	if err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("mode must be one of: development, packaged (got: %s)", config.Mode))
	}
	if mode.IsDevelopment() {
		u, err := url.Parse(config.DevServerURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("dev_server_url must be an absolute URL (got: %s)", config.DevServerURL))
		}
	}
	if !mode.IsDevelopment() && err == nil && config.AppPath == "" {
		validationErrors = append(validationErrors, "app_path cannot be empty in packaged mode")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level is invalid: %v", err))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	return validationErrors
}

func validateDialogs(config *Config) []string {
	var validationErrors []string
	names := config.DialogNames()
	for _, name := range names {
		d := config.Dialogs[name]
		if err := entity.ValidateDialogName(name); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("dialogs.%s: %v", name, err))
		}
		if d.HideGraceMs < 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("dialogs.%s.hide_grace_ms must be non-negative", name))
		}
		if d.Width < 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("dialogs.%s.width must be non-negative", name))
		}
		if d.Height < 0 {
			validationErrors = append(validationErrors, fmt.Sprintf("dialogs.%s.height must be non-negative", name))
		}
	}
	return validationErrors
}
