package webkit

import "sync"

// loadTracker runs callbacks once, when the first page load finishes.
// Callbacks registered afterwards run immediately.
type loadTracker struct {
	mu        sync.Mutex
	done      bool
	callbacks []func()
}

func (t *loadTracker) add(fn func()) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		fn()
		return
	}
	t.callbacks = append(t.callbacks, fn)
	t.mu.Unlock()
}

// complete marks the first load as finished. Later calls do nothing.
func (t *loadTracker) complete() bool {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return false
	}
	t.done = true
	callbacks := t.callbacks
	t.callbacks = nil
	t.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
	return true
}

func (t *loadTracker) reset() {
	t.mu.Lock()
	t.callbacks = nil
	t.mu.Unlock()
}
