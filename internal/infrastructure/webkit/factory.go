package webkit

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/logging"
	"github.com/bnema/dumber-overlay/internal/ui/layout"
)

// isolatedWorld is the script world used when a surface asks for context
// isolation; page scripts in the main world cannot reach the handler.
const isolatedWorld = "dumber-isolated"

// SurfaceFactory creates web view backed surfaces and keeps a registry of
// the live ones.
type SurfaceFactory struct {
	widgets layout.WidgetFactory
	router  *MessageRouter
	nextID  atomic.Uint64

	mu       sync.RWMutex
	surfaces map[port.SurfaceID]*Surface
}

var _ port.SurfaceFactory = (*SurfaceFactory)(nil)

// NewSurfaceFactory creates a factory. Privileged surfaces get their script
// messages routed through router.
func NewSurfaceFactory(widgets layout.WidgetFactory, router *MessageRouter) *SurfaceFactory {
	return &SurfaceFactory{
		widgets:  widgets,
		router:   router,
		surfaces: make(map[port.SurfaceID]*Surface),
	}
}

// NewSurface creates a web view configured by cfg. Must be called on the
// GTK main thread.
func (f *SurfaceFactory) NewSurface(ctx context.Context, cfg port.SurfaceConfig) (port.Surface, error) {
	view := webkit.NewWebView()
	if view == nil {
		return nil, errors.New("webkit: failed to create web view")
	}
	id := port.SurfaceID(f.nextID.Add(1))
	applySurfaceConfig(view, cfg)

	logger := logging.FromContext(ctx).With().
		Str("component", "surface").
		Uint64("surface_id", uint64(id)).
		Logger()

	s := &Surface{
		id:        id,
		view:      view,
		widget:    f.widgets.WrapWidget(view),
		logger:    logger,
		onDestroy: f.unregister,
	}
	if cfg.Transparent {
		s.widget.AddCssClass(layout.DialogClass)
	} else {
		s.widget.AddCssClass(layout.ContentClass)
	}

	view.ConnectLoadChanged(func(event webkit.LoadEvent) {
		if event != webkit.LoadFinished {
			return
		}
		if s.load.complete() {
			s.logger.Debug().Str("uri", view.URI()).Msg("initial load finished")
		}
	})

	if cfg.Privileged && f.router != nil {
		f.connectMessages(s, cfg)
	}

	f.mu.Lock()
	f.surfaces[id] = s
	f.mu.Unlock()

	logger.Debug().
		Bool("privileged", cfg.Privileged).
		Bool("context_isolation", cfg.ContextIsolation).
		Bool("transparent", cfg.Transparent).
		Msg("surface created")
	return s, nil
}

func applySurfaceConfig(view *webkit.WebView, cfg port.SurfaceConfig) {
	settings := view.Settings()
	settings.SetEnableDeveloperExtras(cfg.DeveloperExtras)
	// Packaged dialog pages are file:// URLs loading sibling assets.
	settings.SetAllowFileAccessFromFileURLs(cfg.Privileged)
	settings.SetAllowUniversalAccessFromFileURLs(cfg.Privileged)
	if cfg.UserAgent != "" {
		settings.SetUserAgent(cfg.UserAgent)
	}

	if cfg.Transparent {
		bg := gdk.NewRGBA(0, 0, 0, 0)
		view.SetBackgroundColor(&bg)
	}
}

func (f *SurfaceFactory) connectMessages(s *Surface, cfg port.SurfaceConfig) {
	world := ""
	if cfg.ContextIsolation {
		world = isolatedWorld
	}

	ucm := s.view.UserContentManager()
	if ucm == nil {
		s.logger.Warn().Msg("user content manager unavailable, page messages disabled")
		return
	}
	if !ucm.RegisterScriptMessageHandler(ScriptHandlerName, world) {
		s.logger.Warn().Str("handler", ScriptHandlerName).Msg("failed to register script message handler")
		return
	}
	ucm.ConnectScriptMessageReceived(func(value *javascriptcore.Value) {
		if value == nil {
			return
		}
		if err := f.router.Dispatch(s.id, value.ToJSON(0)); err != nil {
			s.logger.Debug().Err(err).Msg("page message rejected")
		}
	})
}

// DestroyAll destroys every surface still alive, such as the window content,
// and returns how many there were.
func (f *SurfaceFactory) DestroyAll() int {
	f.mu.RLock()
	live := make([]*Surface, 0, len(f.surfaces))
	for _, s := range f.surfaces {
		live = append(live, s)
	}
	f.mu.RUnlock()

	for _, s := range live {
		s.Destroy()
	}
	return len(live)
}

func (f *SurfaceFactory) unregister(id port.SurfaceID) {
	f.mu.Lock()
	delete(f.surfaces, id)
	f.mu.Unlock()
}
