package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumber-overlay/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file location.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderKeys renders keys grouped by section. Values differing from the
// default are marked.
func (r *ConfigRenderer) RenderKeys(keys []config.KeyInfo) string {
	if len(keys) == 0 {
		return ""
	}

	sectionStyle := r.theme.Title
	keyStyle := r.theme.Highlight
	typeStyle := r.theme.Subtle
	valueStyle := lipgloss.NewStyle().Foreground(r.theme.Text)
	modifiedStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	var sb strings.Builder
	section := ""
	for _, k := range keys {
		if k.Section != section {
			section = k.Section
			sb.WriteString(fmt.Sprintf("\n  %s\n", sectionStyle.Render(section)))
		}

		value := valueStyle.Render(displayValue(k.Value))
		if k.Modified() {
			value = fmt.Sprintf("%s %s", modifiedStyle.Render(displayValue(k.Value)),
				typeStyle.Render(fmt.Sprintf("(default: %s)", displayValue(k.Default))))
		}

		sb.WriteString(fmt.Sprintf("    %s %s %s = %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCursor),
			keyStyle.Render(k.Key),
			typeStyle.Render(k.Type),
			value,
		))
	}
	return sb.String()
}

func displayValue(v string) string {
	if v == "" {
		return `""`
	}
	return v
}

// RenderResetSuccess renders the message shown after writing defaults.
func (r *ConfigRenderer) RenderResetSuccess(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Wrote default settings to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(filepath.Base(path)),
	)
}

// RenderCanceled renders the message shown when the user declines.
func (r *ConfigRenderer) RenderCanceled() string {
	return fmt.Sprintf("\n  %s\n", r.theme.Subtle.Render("Canceled, config left untouched"))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
