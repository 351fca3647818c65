package layout

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/dumber-overlay/internal/logging"
)

// OverlayStack keeps surfaces layered above a base widget. The order of
// the stack is the stacking order: the last entry is drawn on top.
type OverlayStack struct {
	overlay OverlayWidget
	layers  []Widget

	mu sync.Mutex
}

// NewOverlayStack creates the overlay and installs base as its main child.
func NewOverlayStack(ctx context.Context, factory WidgetFactory, base Widget) *OverlayStack {
	overlay := factory.NewOverlay()
	if base != nil {
		overlay.SetChild(base)
	}

	logging.FromContext(ctx).Debug().Msg("overlay stack created")
	return &OverlayStack{overlay: overlay}
}

// Widget returns the overlay widget to embed in the window.
func (s *OverlayStack) Widget() OverlayWidget {
	return s.overlay
}

// Push adds w on top of every other layer. Pushing a widget that is already
// stacked is a no-op.
func (s *OverlayStack) Push(w Widget) bool {
	if w == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.layers, w) {
		return false
	}
	s.overlay.AddOverlay(w)
	s.overlay.SetClipOverlay(w, true)
	s.layers = append(s.layers, w)
	return true
}

// Remove takes w out of the overlay. Removing an unknown widget is a no-op.
func (s *OverlayStack) Remove(w Widget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.layers, w)
	if i < 0 {
		return false
	}
	s.overlay.RemoveOverlay(w)
	s.layers = slices.Delete(s.layers, i, i+1)
	return true
}

// Contains reports whether w is currently stacked.
func (s *OverlayStack) Contains(w Widget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.layers, w)
}

// Len returns the number of stacked layers.
func (s *OverlayStack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.layers)
}

// Layers returns the stacked widgets, bottom first.
func (s *OverlayStack) Layers() []Widget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.layers)
}
