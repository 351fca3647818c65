package webkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/logging"
)

// ScriptHandlerName is the script message handler pages post to:
// window.webkit.messageHandlers.dumber.postMessage({type: "dialog-hide"}).
const ScriptHandlerName = "dumber"

// Message represents a JS -> Go message envelope sent via postMessage.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageHandler handles a decoded message payload posted by a surface.
type MessageHandler interface {
	Handle(ctx context.Context, surfaceID port.SurfaceID, payload json.RawMessage) error
}

// MessageHandlerFunc adapts a function to the MessageHandler interface.
type MessageHandlerFunc func(ctx context.Context, surfaceID port.SurfaceID, payload json.RawMessage) error

// Handle calls f(ctx, surfaceID, payload).
func (f MessageHandlerFunc) Handle(ctx context.Context, surfaceID port.SurfaceID, payload json.RawMessage) error {
	return f(ctx, surfaceID, payload)
}

// ErrUnknownMessage is returned for message types without a handler.
var ErrUnknownMessage = errors.New("unknown message type")

// MessageRouter dispatches script messages to registered handlers. The
// posting surface is identified by the router wiring, never by the payload.
type MessageRouter struct {
	baseCtx context.Context

	mu       sync.RWMutex
	handlers map[string]MessageHandler
}

// NewMessageRouter creates a new message router.
func NewMessageRouter(ctx context.Context) *MessageRouter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &MessageRouter{
		baseCtx:  ctx,
		handlers: make(map[string]MessageHandler),
	}
}

// RegisterHandler registers a handler for a message type.
func (r *MessageRouter) RegisterHandler(msgType string, handler MessageHandler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = handler
	return nil
}

// Dispatch decodes a raw JSON message posted by surfaceID and runs the
// matching handler.
func (r *MessageRouter) Dispatch(surfaceID port.SurfaceID, raw string) error {
	ctx := r.baseCtx
	log := logging.FromContext(ctx)

	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		log.Debug().Err(err).Uint64("surface_id", uint64(surfaceID)).Msg("dropping malformed script message")
		return fmt.Errorf("decode script message: %w", err)
	}

	r.mu.RLock()
	handler, ok := r.handlers[msg.Type]
	r.mu.RUnlock()
	if !ok {
		log.Debug().Str("type", msg.Type).Uint64("surface_id", uint64(surfaceID)).Msg("no handler for script message")
		return fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}

	if err := handler.Handle(ctx, surfaceID, msg.Payload); err != nil {
		log.Warn().Err(err).Str("type", msg.Type).Msg("script message handler failed")
		return err
	}
	return nil
}
