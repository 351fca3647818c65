// Package ipc routes messages posted by dialog pages to the controller that
// owns the posting surface.
package ipc

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/logging"
)

var (
	// ErrAlreadySubscribed is returned when a surface already has a handler.
	ErrAlreadySubscribed = errors.New("surface already has a hide request handler")
	// ErrNilHandler is returned when subscribing a nil handler.
	ErrNilHandler = errors.New("hide request handler cannot be nil")
)

var _ port.HideRequestBus = (*Bus)(nil)

type subscription struct {
	handler port.HideRequestHandler
}

// Bus is a registry of hide request handlers keyed by surface identity.
type Bus struct {
	mu       sync.RWMutex
	handlers map[port.SurfaceID]*subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[port.SurfaceID]*subscription)}
}

// Subscribe registers h for hide requests posted by surface id.
func (b *Bus) Subscribe(id port.SurfaceID, h port.HideRequestHandler) (func(), error) {
	if h == nil {
		return nil, ErrNilHandler
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.handlers[id]; exists {
		return nil, ErrAlreadySubscribed
	}
	sub := &subscription{handler: h}
	b.handlers[id] = sub

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			if b.handlers[id] == sub {
				delete(b.handlers, id)
			}
			b.mu.Unlock()
		})
	}, nil
}

// Publish delivers a hide request from surface id. It reports whether a
// handler received it. The handler runs on the caller's goroutine.
func (b *Bus) Publish(ctx context.Context, id port.SurfaceID) bool {
	b.mu.RLock()
	sub := b.handlers[id]
	b.mu.RUnlock()

	if sub == nil {
		logging.FromContext(ctx).Debug().Uint64("surface_id", uint64(id)).Msg("hide request for unknown surface")
		return false
	}
	sub.handler(ctx)
	return true
}

// Len returns the number of registered handlers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
