// Package theme provides GTK CSS styling for the overlay window.
package theme

import (
	"fmt"
	"strings"

	"github.com/bnema/dumber-overlay/internal/ui/layout"
)

// Palette holds the colors the window chrome is drawn with.
type Palette struct {
	Background string
	Border     string
}

// DefaultDarkPalette returns the default dark palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Border:     "#333333",
	}
}

// GenerateCSS creates the GTK4 CSS for the overlay window.
func GenerateCSS(p Palette) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "/* Window */\nwindow {\n\tbackground-color: %s;\n}\n\n", p.Background)
	fmt.Fprintf(&sb, "/* Content */\n.%s {\n\tbackground-color: %s;\n}\n\n", layout.ContentClass, p.Background)

	// Dialog pages paint their own rounded panels.
	fmt.Fprintf(&sb, "/* Dialogs */\n.%s {\n\tbackground: transparent;\n\tborder: none;\n\tbox-shadow: none;\n}\n", layout.DialogClass)

	return sb.String()
}
