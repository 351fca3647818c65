package dialog

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/domain/entity"
	"github.com/bnema/dumber-overlay/internal/infrastructure/ipc"
)

// recorder keeps the order of collaborator calls across fakes.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

type sentMessage struct {
	channel string
	args    []any
}

type fakeSurface struct {
	id  port.SurfaceID
	rec *recorder

	onLoad     []func()
	uri        string
	devTools   int
	focusCount int
	geometry   []entity.Rect
	sent       []sentMessage
	destroyed  bool
}

func (s *fakeSurface) ID() port.SurfaceID { return s.id }

func (s *fakeSurface) LoadURI(_ context.Context, uri string) error {
	s.uri = uri
	s.rec.add("surface.load %s", uri)
	return nil
}

func (s *fakeSurface) OnInitialLoadComplete(fn func()) { s.onLoad = append(s.onLoad, fn) }

func (s *fakeSurface) ShowDevTools(context.Context) error {
	s.devTools++
	return nil
}

func (s *fakeSurface) Focus() {
	s.focusCount++
	s.rec.add("surface.focus")
}

func (s *fakeSurface) SetGeometry(rect entity.Rect) {
	s.geometry = append(s.geometry, rect)
	s.rec.add("surface.geometry %d,%d %dx%d", rect.X, rect.Y, rect.Width, rect.Height)
}

func (s *fakeSurface) Send(_ context.Context, channel string, args ...any) error {
	s.sent = append(s.sent, sentMessage{channel: channel, args: args})
	s.rec.add("surface.send %s %v", channel, args)
	return nil
}

func (s *fakeSurface) Destroy() {
	s.destroyed = true
	s.rec.add("surface.destroy")
}

// finishLoad fires the initial load callbacks, as the page load would.
func (s *fakeSurface) finishLoad() {
	callbacks := s.onLoad
	s.onLoad = nil
	for _, cb := range callbacks {
		cb()
	}
}

type fakeFactory struct {
	rec      *recorder
	nextID   port.SurfaceID
	configs  []port.SurfaceConfig
	surfaces []*fakeSurface
	err      error
}

func (f *fakeFactory) NewSurface(_ context.Context, cfg port.SurfaceConfig) (port.Surface, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	s := &fakeSurface{id: f.nextID, rec: f.rec}
	f.configs = append(f.configs, cfg)
	f.surfaces = append(f.surfaces, s)
	return s, nil
}

type notification struct {
	channel string
	name    string
	visible bool
}

type fakeHost struct {
	rec           *recorder
	attached      map[port.SurfaceID]bool
	attachCount   int
	detachCount   int
	notifications []notification
	selected      entity.TabID
}

func (h *fakeHost) AttachSurface(s port.Surface) {
	h.attached[s.ID()] = true
	h.attachCount++
	h.rec.add("host.attach %d", s.ID())
}

func (h *fakeHost) DetachSurface(s port.Surface) {
	delete(h.attached, s.ID())
	h.detachCount++
	h.rec.add("host.detach %d", s.ID())
}

func (h *fakeHost) Notify(_ context.Context, channel string, args ...any) {
	n := notification{channel: channel}
	if len(args) == 2 {
		n.name, _ = args[0].(string)
		n.visible, _ = args[1].(bool)
	}
	h.notifications = append(h.notifications, n)
	h.rec.add("host.notify %s %v", channel, args)
}

func (h *fakeHost) SelectedTabID() entity.TabID { return h.selected }

type fakeTimer struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// fakeScheduler never fires on its own; tests call fire explicitly.
type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := &fakeTimer{delay: d, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

func (s *fakeScheduler) active() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled && !t.fired {
			n++
		}
	}
	return n
}

// fire runs every timer that has not been cancelled or fired, including
// timers whose cancel raced the firing, to prove the controller ignores them.
func (s *fakeScheduler) fire(includeCancelled bool) {
	for _, t := range s.timers {
		if t.fired || (t.cancelled && !includeCancelled) {
			continue
		}
		t.fired = true
		t.fn()
	}
}

type fakeURLs struct {
	dev bool
	err error
}

func (u *fakeURLs) ContentURL(name string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	if u.dev {
		return "http://localhost:4444/" + name + ".html", nil
	}
	return "file:///opt/dumber-overlay/build/" + name + ".html", nil
}

func (u *fakeURLs) IsDevelopment() bool { return u.dev }

type harness struct {
	rec     *recorder
	host    *fakeHost
	factory *fakeFactory
	sched   *fakeScheduler
	bus     *ipc.Bus
	urls    *fakeURLs
}

func newHarness() *harness {
	rec := &recorder{}
	return &harness{
		rec:     rec,
		host:    &fakeHost{rec: rec, attached: make(map[port.SurfaceID]bool)},
		factory: &fakeFactory{rec: rec},
		sched:   &fakeScheduler{},
		bus:     ipc.NewBus(),
		urls:    &fakeURLs{},
	}
}

func (h *harness) deps() Deps {
	return Deps{
		Surfaces:  h.factory,
		Bus:       h.bus,
		Scheduler: h.sched,
		URLs:      h.urls,
	}
}

func (h *harness) newController(t *testing.T, opts Options) (*Controller, *fakeSurface) {
	t.Helper()
	if opts.Name == "" {
		opts.Name = "menu"
	}
	c, err := New(context.Background(), h.host, h.deps(), opts)
	require.NoError(t, err)
	return c, h.factory.surfaces[len(h.factory.surfaces)-1]
}

// loadedController returns a controller whose page already finished loading.
func (h *harness) loadedController(t *testing.T, opts Options) (*Controller, *fakeSurface) {
	t.Helper()
	c, s := h.newController(t, opts)
	s.finishLoad()
	h.rec.events = nil
	return c, s
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func itoa(id port.SurfaceID) string {
	return strconv.FormatUint(uint64(id), 10)
}
