package dialog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-overlay/internal/domain/entity"
)

// queue collects posted main loop callbacks until drained.
type queue struct {
	tasks []func()
}

func (q *queue) post(fn func()) { q.tasks = append(q.tasks, fn) }

func (q *queue) drain() {
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]
		fn()
	}
}

func newTestManager(t *testing.T) (*Manager, *harness, *queue) {
	t.Helper()
	h := newHarness()
	q := &queue{}
	m, err := NewManager(h.host, h.deps(), q.post)
	require.NoError(t, err)
	return m, h, q
}

func TestNewManager_RequiresDependencies(t *testing.T) {
	h := newHarness()
	q := &queue{}

	_, err := NewManager(nil, h.deps(), q.post)
	assert.ErrorIs(t, err, ErrMissingDependency)

	deps := h.deps()
	deps.URLs = nil
	_, err = NewManager(h.host, deps, q.post)
	assert.ErrorIs(t, err, ErrMissingDependency)
}

func TestManager_OpenReusesByName(t *testing.T) {
	m, h, _ := newTestManager(t)
	ctx := context.Background()

	first, err := m.Open(ctx, Options{Name: "omnibox"})
	require.NoError(t, err)
	again, err := m.Open(ctx, Options{Name: "omnibox", HideGrace: time.Second})
	require.NoError(t, err)

	assert.Same(t, first, again)
	assert.Zero(t, again.HideGrace(), "options only apply on creation")
	assert.Len(t, h.factory.surfaces, 1)

	require.NoError(t, first.Destroy(ctx))
	replaced, err := m.Open(ctx, Options{Name: "omnibox"})
	require.NoError(t, err)
	assert.NotSame(t, first, replaced)
}

func TestManager_Names(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	for _, name := range []string{"settings", "menu", "omnibox"} {
		_, err := m.Open(ctx, Options{Name: name})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"menu", "omnibox", "settings"}, m.Names())
	_, ok := m.Get("menu")
	assert.True(t, ok)
	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestManager_HideAll(t *testing.T) {
	m, h, _ := newTestManager(t)
	ctx := context.Background()

	menu, err := m.Open(ctx, Options{Name: "menu"})
	require.NoError(t, err)
	omnibox, err := m.Open(ctx, Options{Name: "omnibox"})
	require.NoError(t, err)
	for _, s := range h.factory.surfaces {
		s.finishLoad()
	}

	_, err = menu.Show(ctx, false, false)
	require.NoError(t, err)

	require.NoError(t, m.HideAll(ctx))

	assert.False(t, menu.IsVisible())
	assert.False(t, omnibox.IsVisible())
	assert.Len(t, h.factory.surfaces[0].sent, 1)
	assert.Empty(t, h.factory.surfaces[1].sent, "hidden dialogs are skipped")
}

func TestManager_RequestRearrangeCoalesces(t *testing.T) {
	m, h, q := newTestManager(t)
	ctx := context.Background()

	c, err := m.Open(ctx, Options{Name: "menu"})
	require.NoError(t, err)
	h.factory.surfaces[0].finishLoad()
	_, err = c.Show(ctx, false, false)
	require.NoError(t, err)

	require.NoError(t, m.RequestRearrange(ctx, "menu", entity.Rect{Width: 100, Height: 100}))
	require.NoError(t, m.RequestRearrange(ctx, "menu", entity.Rect{Width: 400, Height: 300}))
	assert.Len(t, q.tasks, 1)

	q.drain()

	s := h.factory.surfaces[0]
	assert.Equal(t, entity.Rect{Width: 400, Height: 300}, c.Bounds())
	assert.Equal(t, entity.Rect{Width: 400, Height: 300}, s.geometry[len(s.geometry)-1])
	assert.Len(t, s.geometry, 2)
}

func TestManager_UnknownDialog(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	assert.ErrorIs(t, m.RequestRearrange(ctx, "nope", entity.Rect{}), ErrUnknownDialog)
	assert.ErrorIs(t, m.Reconfigure(ctx, "nope", entity.Rect{}, time.Second), ErrUnknownDialog)
}

func TestManager_Reconfigure(t *testing.T) {
	m, _, q := newTestManager(t)
	ctx := context.Background()

	c, err := m.Open(ctx, Options{Name: "menu", Bounds: entity.Rect{X: 5, Y: 5, Width: 10, Height: 10}})
	require.NoError(t, err)

	require.NoError(t, m.Reconfigure(ctx, "menu", entity.Rect{Width: 50}, 200*time.Millisecond))
	q.drain()

	assert.Equal(t, 200*time.Millisecond, c.HideGrace())
	assert.Equal(t, entity.Rect{X: 5, Y: 5, Width: 50, Height: 10}, c.Bounds())
}

func TestManager_Close(t *testing.T) {
	m, h, q := newTestManager(t)
	ctx := context.Background()

	_, err := m.Open(ctx, Options{Name: "menu"})
	require.NoError(t, err)
	_, err = m.Open(ctx, Options{Name: "omnibox"})
	require.NoError(t, err)
	require.NoError(t, m.RequestRearrange(ctx, "menu", entity.Rect{Width: 1}))

	require.NoError(t, m.Close(ctx))
	q.drain()

	for _, s := range h.factory.surfaces {
		assert.True(t, s.destroyed)
		assert.Empty(t, s.geometry)
	}
	assert.Zero(t, h.bus.Len())
	assert.Empty(t, m.Names())

	_, err = m.Open(ctx, Options{Name: "menu"})
	assert.Error(t, err)
	assert.NoError(t, m.Close(ctx))
}

func TestManager_AssociateTab(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	c, err := m.Open(ctx, Options{Name: "menu"})
	require.NoError(t, err)

	require.NoError(t, m.AssociateTab("menu", "tab-1", true))
	require.NoError(t, m.AssociateTab("menu", "tab-2", true))
	require.NoError(t, m.AssociateTab("menu", "tab-1", false))
	assert.Equal(t, []entity.TabID{"tab-2"}, c.TabIDs())

	assert.ErrorIs(t, m.AssociateTab("nope", "tab-1", true), ErrUnknownDialog)
	assert.Error(t, m.AssociateTab("menu", "", true))
}

func TestManager_AssociatedTabPrunedOnHideRequest(t *testing.T) {
	m, h, _ := newTestManager(t)
	ctx := context.Background()

	c, err := m.Open(ctx, Options{Name: "menu"})
	require.NoError(t, err)
	s := h.factory.surfaces[0]
	s.finishLoad()
	require.NoError(t, m.AssociateTab("menu", "tab-1", true))
	require.NoError(t, m.AssociateTab("menu", "tab-2", true))
	_, err = c.Show(ctx, false, false)
	require.NoError(t, err)

	h.host.selected = "tab-2"
	require.True(t, h.bus.Publish(ctx, s.ID()))

	assert.False(t, c.IsVisible())
	assert.Equal(t, []entity.TabID{"tab-1"}, c.TabIDs())
}
