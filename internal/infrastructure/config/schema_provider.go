package config

import (
	"fmt"
	"strconv"
)

// Section names for grouping config keys.
const (
	SectionGeneral = "General"
	SectionLogging = "Logging"
	SectionDialogs = "Dialogs"
)

// KeyInfo describes one configuration key and its effective value.
type KeyInfo struct {
	Key         string
	Section     string
	Type        string
	Value       string
	Default     string
	Description string
}

// Modified reports whether the effective value differs from the default.
func (k KeyInfo) Modified() bool {
	return k.Value != k.Default
}

// Describe flattens cfg into one entry per key, dialogs sorted by name.
func Describe(cfg *Config) []KeyInfo {
	defaults := DefaultConfig()
	if cfg == nil {
		cfg = defaults
	}

	keys := []KeyInfo{
		{
			Key: "mode", Section: SectionGeneral, Type: "string",
			Value: cfg.Mode, Default: defaults.Mode,
			Description: "Where dialog pages are loaded from (development, packaged)",
		},
		{
			Key: "dev_server_url", Section: SectionGeneral, Type: "string",
			Value: cfg.DevServerURL, Default: defaults.DevServerURL,
			Description: "Dev server serving <name>.html in development mode",
		},
		{
			Key: "app_path", Section: SectionGeneral, Type: "string",
			Value: cfg.AppPath, Default: defaults.AppPath,
			Description: "Application directory holding build/<name>.html",
		},
		{
			Key: "logging.level", Section: SectionLogging, Type: "string",
			Value: cfg.Logging.Level, Default: defaults.Logging.Level,
			Description: "Log level (trace, debug, info, warn, error)",
		},
		{
			Key: "logging.format", Section: SectionLogging, Type: "string",
			Value: cfg.Logging.Format, Default: defaults.Logging.Format,
			Description: "Log format (console, json)",
		},
	}

	names := cfg.DialogNames()
	for _, name := range names {
		keys = append(keys, describeDialog(name, cfg.Dialogs[name], defaults.Dialogs[name])...)
	}
	return keys
}

func describeDialog(name string, d, def DialogConfig) []KeyInfo {
	prefix := "dialogs." + name + "."
	ints := []struct {
		key   string
		value int
		def   int
		desc  string
	}{
		{"hide_grace_ms", d.HideGraceMs, def.HideGraceMs, "Milliseconds the surface stays attached after a hide"},
		{"x", d.X, def.X, "Left offset in the host window"},
		{"y", d.Y, def.Y, "Top offset in the host window"},
		{"width", d.Width, def.Width, "Width, 0 keeps the natural size"},
		{"height", d.Height, def.Height, "Height, 0 keeps the natural size"},
	}

	out := make([]KeyInfo, 0, len(ints)+1)
	for _, f := range ints {
		out = append(out, KeyInfo{
			Key:         prefix + f.key,
			Section:     SectionDialogs,
			Type:        "int",
			Value:       strconv.Itoa(f.value),
			Default:     strconv.Itoa(f.def),
			Description: f.desc,
		})
	}
	out = append(out, KeyInfo{
		Key:         prefix + "devtools",
		Section:     SectionDialogs,
		Type:        "bool",
		Value:       fmt.Sprint(d.DevTools),
		Default:     fmt.Sprint(def.DevTools),
		Description: "Open a detached inspector in development mode",
	})
	return out
}
