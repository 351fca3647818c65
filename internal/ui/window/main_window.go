// Package window provides the GTK window hosting the dialog overlay.
package window

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/dumber-overlay/internal/logging"
	"github.com/bnema/dumber-overlay/internal/ui/layout"
)

const (
	defaultWidth  = 1280
	defaultHeight = 800
	windowTitle   = "dumber-overlay"
	maxTitleLen   = 255
)

// ErrWindowCreationFailed is returned when GTK cannot create the window.
var ErrWindowCreationFailed = errors.New("failed to create application window")

// MainWindow is the top-level window; its only child is the overlay the
// dialogs are stacked on.
type MainWindow struct {
	window  *gtk.ApplicationWindow
	overlay layout.OverlayWidget

	onEscape func()
	logger   zerolog.Logger
}

// New creates the window around overlay.
func New(ctx context.Context, app *gtk.Application, overlay layout.OverlayWidget) (*MainWindow, error) {
	mw := &MainWindow{
		overlay: overlay,
		logger:  logging.FromContext(ctx).With().Str("component", "main-window").Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.window.SetTitle(windowTitle)
	mw.window.SetDefaultSize(defaultWidth, defaultHeight)

	overlay.SetHalign(layout.AlignFill)
	overlay.SetValign(layout.AlignFill)
	mw.window.SetChild(overlay.GtkWidget())

	mw.installKeyController()
	return mw, nil
}

func (mw *MainWindow) installKeyController() {
	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)
	keys.ConnectKeyPressed(func(keyval, _ uint, _ gdk.ModifierType) bool {
		if keyval != gdk.KEY_Escape || mw.onEscape == nil {
			return false
		}
		mw.onEscape()
		return true
	})
	mw.window.AddController(keys)
}

// OnEscape registers fn to run when Escape is pressed anywhere in the window.
func (mw *MainWindow) OnEscape(fn func()) {
	mw.onEscape = fn
}

// Show makes the window visible.
func (mw *MainWindow) Show() {
	mw.window.Present()
	mw.logger.Debug().Msg("window presented")
}

// Close closes the window.
func (mw *MainWindow) Close() {
	mw.window.Close()
}

// Window returns the underlying GTK window.
func (mw *MainWindow) Window() *gtk.ApplicationWindow {
	return mw.window
}

// SetTitle updates the window title, capped at 255 characters.
func (mw *MainWindow) SetTitle(title string) {
	mw.window.SetTitle(FormatTitle(title))
}

// FormatTitle returns the window title for title.
func FormatTitle(title string) string {
	if title == "" {
		return windowTitle
	}
	runes := []rune(title)
	if len(runes) > maxTitleLen {
		return string(runes[:maxTitleLen-3]) + "..."
	}
	return title
}
