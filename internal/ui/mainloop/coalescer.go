// Package mainloop schedules work onto the UI main loop.
package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks so that only the most recent task
// of a burst runs, once, on the next main loop iteration.
type Coalescer struct {
	post func(func())

	mu      sync.Mutex
	latest  map[string]func()
	stopped bool
}

// NewCoalescer returns a coalescer scheduling through post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		post:   post,
		latest: make(map[string]func()),
	}
}

// Post records fn as the latest task for key. Only the first Post of a burst
// schedules a main loop callback.
func (c *Coalescer) Post(key string, fn func()) {
	if key == "" || fn == nil {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if scheduled {
		return
	}
	c.post(func() { c.run(key) })
}

// Pending reports whether a task for key is waiting to run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.latest[key]
	return ok
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	stopped := c.stopped
	c.mu.Unlock()

	if ok && !stopped {
		fn()
	}
}

// Destroy drops pending tasks; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.stopped = true
	clear(c.latest)
	c.mu.Unlock()
}
