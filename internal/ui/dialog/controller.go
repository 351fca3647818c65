// Package dialog manages overlay panels layered above the browser window.
//
// A Controller owns one embeddable surface and drives its visibility:
// shows requested before the page finished its first load are deferred,
// hides can keep the surface attached for a grace period so the page can
// animate out, and every transition is reported to the host window.
package dialog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/domain/entity"
	"github.com/bnema/dumber-overlay/internal/logging"
)

// Options configures a dialog at creation.
type Options struct {
	// Name identifies the dialog page and its visibility notifications.
	Name string
	// DevTools opens a detached inspector in development builds.
	DevTools bool
	// Bounds is the initial geometry.
	Bounds entity.Rect
	// HideGrace delays detaching the surface after a hide. Zero detaches
	// immediately.
	HideGrace time.Duration
	// CustomHide is reserved for dialogs that drive their own hide
	// animation. It is stored but has no effect yet.
	CustomHide bool
	// Surface overrides the trusted chrome surface defaults.
	Surface port.SurfaceOverrides
}

// Deps groups the collaborators a Controller needs besides its host window.
type Deps struct {
	Surfaces  port.SurfaceFactory
	Bus       port.HideRequestBus
	Scheduler port.Scheduler
	URLs      port.ContentURLResolver
}

func (d Deps) validate() error {
	switch {
	case d.Surfaces == nil:
		return fmt.Errorf("%w: surface factory", ErrMissingDependency)
	case d.Bus == nil:
		return fmt.Errorf("%w: hide request bus", ErrMissingDependency)
	case d.Scheduler == nil:
		return fmt.Errorf("%w: scheduler", ErrMissingDependency)
	case d.URLs == nil:
		return fmt.Errorf("%w: content url resolver", ErrMissingDependency)
	}
	return nil
}

// showWaiter is the completion handed back by Show. It closes at most once.
type showWaiter struct {
	once sync.Once
	done chan struct{}
}

func newShowWaiter() *showWaiter {
	return &showWaiter{done: make(chan struct{})}
}

func (w *showWaiter) resolve() {
	w.once.Do(func() { close(w.done) })
}

// pendingShow is the single show continuation parked until the first load.
type pendingShow struct {
	focus   bool
	waiters []*showWaiter
}

func (p *pendingShow) resolve() {
	for _, w := range p.waiters {
		w.resolve()
	}
}

// Controller drives one overlay dialog. Methods must be called from the main
// loop; the mutex only protects state read from other goroutines.
type Controller struct {
	host       port.HostWindow
	scheduler  port.Scheduler
	name       string
	customHide bool
	ctx        context.Context
	logger     zerolog.Logger

	mu           sync.Mutex
	surface      port.Surface
	id           port.SurfaceID
	bounds       entity.Rect
	hideGrace    time.Duration
	visible      bool
	attached     bool
	loaded       bool
	pending      *pendingShow
	cancelDetach func()
	detachGen    uint64
	tabIDs       entity.TabIDSet
	unsubscribe  func()
}

// New creates the dialog surface, subscribes to hide requests posted by the
// dialog page and starts loading the page.
func New(ctx context.Context, host port.HostWindow, deps Deps, opts Options) (*Controller, error) {
	if opts.Name == "" {
		return nil, ErrNameRequired
	}
	if err := entity.ValidateDialogName(opts.Name); err != nil {
		return nil, err
	}
	if host == nil {
		return nil, fmt.Errorf("%w: host window", ErrMissingDependency)
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if opts.HideGrace < 0 {
		opts.HideGrace = 0
	}

	devTools := opts.DevTools && deps.URLs.IsDevelopment()
	cfg := opts.Surface.Apply(port.TrustedChromeConfig())
	if devTools {
		cfg.DeveloperExtras = true
	}

	surface, err := deps.Surfaces.NewSurface(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create surface for dialog %q: %w", opts.Name, err)
	}

	dctx := logging.WithDialog(logging.WithComponent(ctx, "dialog"), opts.Name, uint64(surface.ID()))
	c := &Controller{
		host:       host,
		scheduler:  deps.Scheduler,
		name:       opts.Name,
		customHide: opts.CustomHide,
		ctx:        dctx,
		logger:     *logging.FromContext(dctx),
		surface:    surface,
		id:         surface.ID(),
		bounds:     opts.Bounds,
		hideGrace:  opts.HideGrace,
	}

	unsubscribe, err := deps.Bus.Subscribe(c.id, c.onHideRequest)
	if err != nil {
		surface.Destroy()
		return nil, fmt.Errorf("subscribe hide requests for dialog %q: %w", opts.Name, err)
	}
	c.unsubscribe = unsubscribe

	surface.OnInitialLoadComplete(c.onInitialLoad)

	uri, err := deps.URLs.ContentURL(opts.Name)
	if err == nil {
		err = surface.LoadURI(dctx, uri)
	}
	if err != nil {
		unsubscribe()
		surface.Destroy()
		return nil, fmt.Errorf("load dialog %q: %w", opts.Name, err)
	}

	if devTools {
		if err := surface.ShowDevTools(dctx); err != nil {
			c.logger.Warn().Err(err).Msg("failed to open dialog devtools")
		}
	}

	c.logger.Debug().Str("uri", uri).Msg("dialog created")
	return c, nil
}

// ID returns the identity of the dialog surface.
func (c *Controller) ID() port.SurfaceID { return c.id }

// Name returns the dialog name.
func (c *Controller) Name() string { return c.name }

// CustomHide reports the reserved custom hide flag.
func (c *Controller) CustomHide() bool { return c.customHide }

// Bounds returns the last requested geometry.
func (c *Controller) Bounds() entity.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bounds
}

// IsVisible reports whether the dialog is logically shown.
func (c *Controller) IsVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// IsLoaded reports whether the dialog page finished its first load.
func (c *Controller) IsLoaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// IsDestroyed reports whether Destroy has been called.
func (c *Controller) IsDestroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surface == nil
}

// HideGrace returns the current detach grace period.
func (c *Controller) HideGrace() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hideGrace
}

// SetHideGrace changes the grace period used by later hides.
func (c *Controller) SetHideGrace(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.mu.Lock()
	c.hideGrace = d
	c.mu.Unlock()
}

// TabIDs returns the tabs the dialog was opened for, in insertion order.
func (c *Controller) TabIDs() []entity.TabID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tabIDs.IDs()
}

// AddTabID associates a tab with the dialog.
func (c *Controller) AddTabID(id entity.TabID) {
	c.mu.Lock()
	c.tabIDs.Add(id)
	c.mu.Unlock()
}

// RemoveTabID drops a tab association.
func (c *Controller) RemoveTabID(id entity.TabID) {
	c.mu.Lock()
	c.tabIDs.Remove(id)
	c.mu.Unlock()
}

// Rearrange merges rect into the dialog bounds and, when the dialog is
// visible, applies the result right away. Zero fields keep their current
// value (see entity.Rect.Merge).
func (c *Controller) Rearrange(_ context.Context, rect entity.Rect) error {
	c.mu.Lock()
	s := c.surface
	if s == nil {
		c.mu.Unlock()
		return c.errDestroyed()
	}
	c.bounds = c.bounds.Merge(rect)
	bounds := c.bounds
	visible := c.visible
	c.mu.Unlock()

	if visible {
		s.SetGeometry(bounds)
	}
	return nil
}

// Toggle shows the dialog when it is hidden. It never hides.
func (c *Controller) Toggle(ctx context.Context) error {
	if c.IsVisible() {
		return nil
	}
	_, err := c.Show(ctx, true, true)
	return err
}

// Show makes the dialog visible. The returned channel is closed once the
// surface is attached, or right away when it already is.
//
// With waitForLoad set and the page still loading, the show is parked until
// the first load completes. Only one show is parked at a time: a later call
// replaces the parked focus value, and every caller's channel closes when the
// parked show finally runs. Destroying the dialog also closes the channel.
func (c *Controller) Show(ctx context.Context, focus, waitForLoad bool) (<-chan struct{}, error) {
	c.mu.Lock()
	if c.surface == nil {
		c.mu.Unlock()
		return nil, c.errDestroyed()
	}
	c.stopDetachTimerLocked()
	alreadyVisible := c.visible
	c.mu.Unlock()

	if !alreadyVisible {
		c.host.Notify(ctx, entity.ChannelVisibilityChange, c.name, true)
	}

	w := newShowWaiter()

	c.mu.Lock()
	if !c.loaded && waitForLoad {
		if c.pending == nil {
			c.pending = &pendingShow{}
		} else {
			c.logger.Debug().Msg("replacing parked show")
		}
		c.pending.focus = focus
		c.pending.waiters = append(c.pending.waiters, w)
		c.mu.Unlock()
		c.logger.Debug().Bool("focus", focus).Msg("show deferred until initial load")
		return w.done, nil
	}
	c.mu.Unlock()

	c.apply(focus)
	w.resolve()
	return w.done, nil
}

// apply attaches the surface, restores its geometry and optionally focuses
// it. Showing an already visible dialog only focuses it.
func (c *Controller) apply(focus bool) {
	c.mu.Lock()
	s := c.surface
	if s == nil {
		c.mu.Unlock()
		return
	}
	if c.visible {
		c.mu.Unlock()
		if focus {
			s.Focus()
		}
		return
	}
	c.visible = true
	attach := !c.attached
	c.attached = true
	bounds := c.bounds
	c.mu.Unlock()

	if attach {
		c.host.AttachSurface(s)
		c.logger.Debug().Msg("surface attached")
	}
	s.SetGeometry(bounds)
	if focus {
		s.Focus()
	}
}

// onInitialLoad runs the parked show, if any, once the first load is done.
func (c *Controller) onInitialLoad() {
	c.mu.Lock()
	if c.loaded || c.surface == nil {
		c.mu.Unlock()
		return
	}
	c.loaded = true
	p := c.pending
	c.pending = nil
	c.mu.Unlock()

	c.logger.Debug().Bool("parked_show", p != nil).Msg("dialog page loaded")
	if p == nil {
		return
	}
	c.apply(p.focus)
	p.resolve()
}

// HideVisually asks the dialog page to animate out without detaching it.
func (c *Controller) HideVisually(ctx context.Context) error {
	return c.Send(ctx, entity.ChannelVisible, false)
}

// Send delivers a message to the dialog page.
func (c *Controller) Send(ctx context.Context, channel string, args ...any) error {
	c.mu.Lock()
	s := c.surface
	c.mu.Unlock()
	if s == nil {
		return c.errDestroyed()
	}
	return s.Send(ctx, channel, args...)
}

// Hide hides the dialog. With hideVisually the page is told to animate out
// first; that message is sent even when the dialog is already hidden.
// bringToTop restacks the surface above its siblings before it goes away.
// A parked show is left in place.
func (c *Controller) Hide(ctx context.Context, bringToTop, hideVisually bool) error {
	c.mu.Lock()
	s := c.surface
	visible := c.visible
	c.mu.Unlock()
	if s == nil {
		return c.errDestroyed()
	}

	if hideVisually {
		if err := s.Send(ctx, entity.ChannelVisible, false); err != nil {
			c.logger.Warn().Err(err).Msg("failed to send visual hide")
		}
	}
	if !visible {
		return nil
	}

	c.host.Notify(ctx, entity.ChannelVisibilityChange, c.name, false)

	if bringToTop {
		c.restack(s)
	}

	c.mu.Lock()
	c.stopDetachTimerLocked()
	c.visible = false
	grace := c.hideGrace
	if grace > 0 {
		c.detachGen++
		gen := c.detachGen
		c.cancelDetach = c.scheduler.AfterFunc(grace, func() { c.onDetachTimer(gen) })
	} else {
		c.attached = false
	}
	c.mu.Unlock()

	if grace > 0 {
		c.logger.Debug().Dur("grace", grace).Msg("detach scheduled")
		return nil
	}
	c.host.DetachSurface(s)
	c.logger.Debug().Msg("surface detached")
	return nil
}

func (c *Controller) onDetachTimer(gen uint64) {
	c.mu.Lock()
	s := c.surface
	if s == nil || gen != c.detachGen || c.cancelDetach == nil {
		c.mu.Unlock()
		return
	}
	c.cancelDetach = nil
	c.attached = false
	c.mu.Unlock()

	c.host.DetachSurface(s)
	c.logger.Debug().Msg("surface detached after grace period")
}

// stopDetachTimerLocked cancels a scheduled detach. Must hold c.mu.
func (c *Controller) stopDetachTimerLocked() {
	if c.cancelDetach == nil {
		return
	}
	c.cancelDetach()
	c.cancelDetach = nil
	c.detachGen++
}

// BringToTop restacks the surface above every sibling surface by detaching
// and re-attaching it. Both steps always run, whatever the current state.
func (c *Controller) BringToTop(_ context.Context) error {
	c.mu.Lock()
	s := c.surface
	c.mu.Unlock()
	if s == nil {
		return c.errDestroyed()
	}
	c.restack(s)
	return nil
}

func (c *Controller) restack(s port.Surface) {
	c.host.DetachSurface(s)
	c.host.AttachSurface(s)

	c.mu.Lock()
	c.attached = true
	c.mu.Unlock()
}

// onHideRequest handles a hide posted by the dialog page: the dialog hides
// without the visual hide message (the page already animated) and forgets
// the tab that is currently selected.
func (c *Controller) onHideRequest(ctx context.Context) {
	if ctx == nil {
		ctx = c.ctx
	}
	if err := c.Hide(ctx, false, false); err != nil {
		c.logger.Debug().Err(err).Msg("ignoring hide request")
		return
	}

	selected := c.host.SelectedTabID()
	c.mu.Lock()
	c.tabIDs.Remove(selected)
	c.mu.Unlock()
}

// Destroy releases the surface. It does not hide first; the surface drops its
// own host attachment. Any later call on the controller fails with
// ErrDestroyed.
func (c *Controller) Destroy(_ context.Context) error {
	c.mu.Lock()
	s := c.surface
	if s == nil {
		c.mu.Unlock()
		return c.errDestroyed()
	}
	c.surface = nil
	c.stopDetachTimerLocked()
	p := c.pending
	c.pending = nil
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.visible = false
	c.attached = false
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	s.Destroy()
	if p != nil {
		p.resolve()
	}

	c.logger.Debug().Msg("dialog destroyed")
	return nil
}

func (c *Controller) errDestroyed() error {
	return fmt.Errorf("dialog %q: %w", c.name, ErrDestroyed)
}
