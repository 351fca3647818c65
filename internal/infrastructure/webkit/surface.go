// Package webkit implements dialog surfaces with WebKitGTK web views and the
// GTK overlay that hosts them.
package webkit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/rs/zerolog"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/domain/entity"
	"github.com/bnema/dumber-overlay/internal/ui/layout"
)

var (
	// ErrSurfaceDestroyed is returned by operations on a destroyed surface.
	ErrSurfaceDestroyed = errors.New("webkit: surface destroyed")
	// ErrInvalidURL is returned when loading an empty URL.
	ErrInvalidURL = errors.New("webkit: invalid url")
)

// Surface is a dialog surface backed by a WebKit web view.
type Surface struct {
	id        port.SurfaceID
	view      *webkit.WebView
	widget    layout.Widget
	load      loadTracker
	logger    zerolog.Logger
	onDestroy func(port.SurfaceID)

	mu        sync.Mutex
	destroyed bool
	teardown  []func()
}

var _ port.Surface = (*Surface)(nil)

// ID returns the surface identity.
func (s *Surface) ID() port.SurfaceID { return s.id }

// Widget returns the widget the host window layers.
func (s *Surface) Widget() layout.Widget { return s.widget }

func (s *Surface) isDestroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// LoadURI starts loading uri.
func (s *Surface) LoadURI(_ context.Context, uri string) error {
	if s.isDestroyed() {
		return ErrSurfaceDestroyed
	}
	if uri == "" {
		return ErrInvalidURL
	}
	s.view.LoadURI(uri)
	return nil
}

// OnInitialLoadComplete registers fn to run when the first load finishes.
func (s *Surface) OnInitialLoadComplete(fn func()) {
	s.load.add(fn)
}

// ShowDevTools opens the web inspector in its own window.
func (s *Surface) ShowDevTools(_ context.Context) error {
	if s.isDestroyed() {
		return ErrSurfaceDestroyed
	}
	inspector := s.view.Inspector()
	if inspector == nil {
		return errors.New("webkit: inspector unavailable, developer extras disabled")
	}
	inspector.Show()
	inspector.Detach()
	return nil
}

// Focus gives keyboard focus to the page.
func (s *Surface) Focus() {
	if s.isDestroyed() {
		return
	}
	if !s.widget.GrabFocus() {
		s.logger.Debug().Msg("surface refused focus")
	}
}

// SetGeometry positions the surface inside the host overlay.
func (s *Surface) SetGeometry(rect entity.Rect) {
	if s.isDestroyed() {
		return
	}
	layout.ApplyGeometry(s.widget, rect)
}

// Send delivers a message to the page as a DOM event.
func (s *Surface) Send(ctx context.Context, channel string, args ...any) error {
	if s.isDestroyed() {
		return ErrSurfaceDestroyed
	}
	script, err := buildDispatchScript(channel, args)
	if err != nil {
		return err
	}
	s.view.EvaluateJavascript(ctx, script, -1, "", "", nil)
	return nil
}

// OnDestroy registers fn to run when the surface is destroyed, before the
// view is unparented. On an already destroyed surface fn runs right away.
func (s *Surface) OnDestroy(fn func()) {
	s.mu.Lock()
	if !s.destroyed {
		s.teardown = append(s.teardown, fn)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	fn()
}

// Destroy drops the surface from its host, unparents the view and terminates
// its web process.
func (s *Surface) Destroy() {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return
	}
	s.destroyed = true
	teardown := s.teardown
	s.teardown = nil
	s.mu.Unlock()

	s.load.reset()
	for _, fn := range teardown {
		fn()
	}
	s.widget.Unparent()
	s.view.TerminateWebProcess()
	if s.onDestroy != nil {
		s.onDestroy(s.id)
	}
	s.logger.Debug().Msg("surface destroyed")
}

func (s *Surface) String() string {
	return fmt.Sprintf("surface(%d)", s.id)
}
