package layout

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// gtkWidget wraps *gtk.Widget to implement the Widget interface.
type gtkWidget struct {
	inner *gtk.Widget
}

func (w *gtkWidget) SetVisible(visible bool)          { w.inner.SetVisible(visible) }
func (w *gtkWidget) IsVisible() bool                  { return w.inner.Visible() }
func (w *gtkWidget) GrabFocus() bool                  { return w.inner.GrabFocus() }
func (w *gtkWidget) SetCanTarget(canTarget bool)      { w.inner.SetCanTarget(canTarget) }
func (w *gtkWidget) SetHalign(align Align)            { w.inner.SetHAlign(align) }
func (w *gtkWidget) SetValign(align Align)            { w.inner.SetVAlign(align) }
func (w *gtkWidget) SetMarginStart(margin int)        { w.inner.SetMarginStart(margin) }
func (w *gtkWidget) SetMarginTop(margin int)          { w.inner.SetMarginTop(margin) }
func (w *gtkWidget) SetSizeRequest(width, height int) { w.inner.SetSizeRequest(width, height) }
func (w *gtkWidget) AddCssClass(class string)         { w.inner.AddCSSClass(class) }
func (w *gtkWidget) RemoveCssClass(class string)      { w.inner.RemoveCSSClass(class) }
func (w *gtkWidget) Unparent()                        { w.inner.Unparent() }
func (w *gtkWidget) GtkWidget() gtk.Widgetter         { return w.inner }

// gtkOverlay wraps *gtk.Overlay to implement the OverlayWidget interface.
type gtkOverlay struct {
	gtkWidget
	overlay *gtk.Overlay
}

func (o *gtkOverlay) SetChild(child Widget) {
	if child == nil {
		o.overlay.SetChild(nil)
		return
	}
	o.overlay.SetChild(child.GtkWidget())
}

func (o *gtkOverlay) AddOverlay(overlay Widget) {
	if overlay == nil {
		return
	}
	o.overlay.AddOverlay(overlay.GtkWidget())
}

func (o *gtkOverlay) RemoveOverlay(overlay Widget) {
	if overlay == nil {
		return
	}
	o.overlay.RemoveOverlay(overlay.GtkWidget())
}

func (o *gtkOverlay) SetClipOverlay(overlay Widget, clip bool) {
	if overlay == nil {
		return
	}
	o.overlay.SetClipOverlay(overlay.GtkWidget(), clip)
}

// GtkWidgetFactory creates real GTK widgets.
type GtkWidgetFactory struct{}

// NewGtkWidgetFactory returns a factory backed by gotk4.
func NewGtkWidgetFactory() *GtkWidgetFactory {
	return &GtkWidgetFactory{}
}

// NewOverlay creates a gtk.Overlay.
func (*GtkWidgetFactory) NewOverlay() OverlayWidget {
	o := gtk.NewOverlay()
	return &gtkOverlay{gtkWidget: gtkWidget{inner: &o.Widget}, overlay: o}
}

// WrapWidget adapts an existing GTK widget.
func (*GtkWidgetFactory) WrapWidget(w gtk.Widgetter) Widget {
	if w == nil {
		return nil
	}
	return &gtkWidget{inner: gtk.BaseWidget(w)}
}
