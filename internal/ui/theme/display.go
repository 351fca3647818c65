package theme

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/dumber-overlay/internal/logging"
)

// ApplyToDisplay loads the CSS generated from p into the default display.
func ApplyToDisplay(ctx context.Context, p Palette) *gtk.CSSProvider {
	log := logging.FromContext(ctx)

	display := gdk.DisplayGetDefault()
	if display == nil {
		log.Warn().Msg("cannot apply theme: no default display")
		return nil
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(GenerateCSS(p))
	gtk.StyleContextAddProviderForDisplay(display, provider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)

	log.Debug().Msg("theme CSS applied to display")
	return provider
}
