package dialog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/domain/entity"
	"github.com/bnema/dumber-overlay/internal/logging"
	"github.com/bnema/dumber-overlay/internal/ui/mainloop"
)

// Manager owns the dialogs of one host window, at most one per name.
type Manager struct {
	host      port.HostWindow
	deps      Deps
	coalescer *mainloop.Coalescer

	mu      sync.Mutex
	dialogs map[string]*Controller
	closed  bool
}

// NewManager creates a manager for host. post schedules work on the main
// loop and is used to merge bursts of geometry updates.
func NewManager(host port.HostWindow, deps Deps, post func(func())) (*Manager, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: host window", ErrMissingDependency)
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return &Manager{
		host:      host,
		deps:      deps,
		coalescer: mainloop.NewCoalescer(post),
		dialogs:   make(map[string]*Controller),
	}, nil
}

// Open returns the dialog registered under opts.Name, creating it first if
// needed. Options are only used on creation.
func (m *Manager) Open(ctx context.Context, opts Options) (*Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, fmt.Errorf("open dialog %q: manager closed", opts.Name)
	}
	if c, ok := m.dialogs[opts.Name]; ok && !c.IsDestroyed() {
		return c, nil
	}

	c, err := New(ctx, m.host, m.deps, opts)
	if err != nil {
		return nil, err
	}
	m.dialogs[opts.Name] = c
	logging.FromContext(ctx).Debug().Str("dialog", opts.Name).Msg("dialog registered")
	return c, nil
}

// Get returns the dialog registered under name.
func (m *Manager) Get(name string) (*Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.dialogs[name]
	return c, ok
}

// Names returns the registered dialog names, sorted.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedKeys(m.dialogs)
}

func (m *Manager) snapshot() []*Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Controller, 0, len(m.dialogs))
	for _, name := range sortedKeys(m.dialogs) {
		out = append(out, m.dialogs[name])
	}
	return out
}

// HideAll hides every visible dialog, e.g. when the window loses focus.
func (m *Manager) HideAll(ctx context.Context) error {
	var errs []error
	for _, c := range m.snapshot() {
		if !c.IsVisible() {
			continue
		}
		if err := c.Hide(ctx, false, true); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RequestRearrange queues a geometry update for the named dialog. Updates
// posted for the same dialog before the main loop runs collapse into the
// last one.
func (m *Manager) RequestRearrange(ctx context.Context, name string, rect entity.Rect) error {
	c, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialog, name)
	}
	m.coalescer.Post("rearrange:"+name, func() {
		if err := c.Rearrange(ctx, rect); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Str("dialog", name).Msg("dropping rearrange")
		}
	})
	return nil
}

// Reconfigure applies new settings to a registered dialog.
func (m *Manager) Reconfigure(ctx context.Context, name string, bounds entity.Rect, grace time.Duration) error {
	c, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialog, name)
	}
	c.SetHideGrace(grace)
	return m.RequestRearrange(ctx, name, bounds)
}

// AssociateTab records that the named dialog was opened for tab, or drops the
// association when open is false. A hide requested by the dialog page later
// forgets whichever tab is selected at that time.
func (m *Manager) AssociateTab(name string, tab entity.TabID, open bool) error {
	c, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDialog, name)
	}
	if tab == "" {
		return fmt.Errorf("dialog %q: empty tab id", name)
	}
	if open {
		c.AddTabID(tab)
	} else {
		c.RemoveTabID(tab)
	}
	return nil
}

// Close destroys every dialog. The manager cannot be used afterwards.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	dialogs := m.dialogs
	m.dialogs = make(map[string]*Controller)
	m.mu.Unlock()

	m.coalescer.Destroy()

	var errs []error
	for _, name := range sortedKeys(dialogs) {
		c := dialogs[name]
		if c.IsDestroyed() {
			continue
		}
		if err := c.Destroy(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sortedKeys(m map[string]*Controller) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
