// Package layout provides GTK widget abstractions and the overlay stack the
// host window layers dialog surfaces on. The interfaces wrap GTK types so the
// stacking logic can be unit tested without a GTK runtime.
package layout

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Align mirrors gtk.Align.
type Align = gtk.Align

// Align constants matching GTK values.
const (
	AlignFill  = gtk.AlignFill
	AlignStart = gtk.AlignStart
)

// CSS classes set on the widgets of the overlay.
const (
	// DialogClass marks dialog surfaces layered over the content.
	DialogClass = "dumber-dialog"
	// ContentClass marks the window content below the dialogs.
	ContentClass = "dumber-content"
)

// Widget is the base interface that all GTK widgets implement.
type Widget interface {
	// Visibility
	SetVisible(visible bool)
	IsVisible() bool

	// Focus
	GrabFocus() bool

	// Pointer events
	SetCanTarget(canTarget bool)

	// Layout
	SetHalign(align Align)
	SetValign(align Align)
	SetMarginStart(margin int)
	SetMarginTop(margin int)
	SetSizeRequest(width, height int)

	// CSS styling
	AddCssClass(cssClass string)
	RemoveCssClass(cssClass string)

	// Parent management
	Unparent()

	// GTK interop - returns the underlying GTK widget for embedding
	GtkWidget() gtk.Widgetter
}

// OverlayWidget wraps gtk.Overlay for layered content.
// It displays overlay widgets on top of a main child widget; overlays added
// later are drawn above earlier ones.
type OverlayWidget interface {
	Widget

	// Main child
	SetChild(child Widget)

	// Overlay management
	AddOverlay(overlay Widget)
	RemoveOverlay(overlay Widget)

	// Overlay configuration
	SetClipOverlay(overlay Widget, clip bool)
}

// WidgetFactory creates GTK widgets. Tests substitute a mock.
type WidgetFactory interface {
	NewOverlay() OverlayWidget
	// WrapWidget adapts an existing GTK widget, such as a WebView.
	WrapWidget(w gtk.Widgetter) Widget
}
