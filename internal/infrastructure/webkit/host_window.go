package webkit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/domain/entity"
	"github.com/bnema/dumber-overlay/internal/logging"
	"github.com/bnema/dumber-overlay/internal/ui/layout"
)

// MessageTabSelected is posted by the window content when the user switches
// tabs. Payload: {"tabId": "..."}.
const MessageTabSelected = "tab-selected"

// MessageDialogTab is posted by the window content when it opens a dialog on
// behalf of a tab, or closes that tab. Payload:
// {"dialog": "...", "tabId": "...", "open": true}.
const MessageDialogTab = "dialog-tab"

// DialogTabs records which tabs a dialog was opened for.
type DialogTabs interface {
	AssociateTab(name string, tab entity.TabID, open bool) error
}

type widgetProvider interface {
	Widget() layout.Widget
}

// destroyNotifier is implemented by surfaces that report their teardown.
type destroyNotifier interface {
	OnDestroy(fn func())
}

// HostWindow layers dialog surfaces over the window content using a GTK
// overlay stack.
type HostWindow struct {
	ctx     context.Context
	stack   *layout.OverlayStack
	content port.Surface

	mu       sync.RWMutex
	selected entity.TabID
	watched  map[port.SurfaceID]struct{}
}

var _ port.HostWindow = (*HostWindow)(nil)

// NewHostWindow creates a host over stack. content receives Notify messages
// and may be nil when the window has no page of its own.
func NewHostWindow(ctx context.Context, stack *layout.OverlayStack, content port.Surface) *HostWindow {
	return &HostWindow{
		ctx:     logging.WithComponent(ctx, "host-window"),
		stack:   stack,
		content: content,
		watched: make(map[port.SurfaceID]struct{}),
	}
}

// AttachSurface stacks s above everything attached before it.
func (h *HostWindow) AttachSurface(s port.Surface) {
	w := widgetOf(s)
	if w == nil {
		logging.FromContext(h.ctx).Warn().Stringer("surface", surfaceName(s)).Msg("surface has no widget, not attached")
		return
	}
	h.stack.Push(w)
	h.watchDestroy(s, w)
}

// watchDestroy removes w from the stack when s is destroyed while attached.
// The hook is installed once per surface.
func (h *HostWindow) watchDestroy(s port.Surface, w layout.Widget) {
	n, ok := s.(destroyNotifier)
	if !ok {
		return
	}
	id := s.ID()
	h.mu.Lock()
	if _, seen := h.watched[id]; seen {
		h.mu.Unlock()
		return
	}
	h.watched[id] = struct{}{}
	h.mu.Unlock()

	n.OnDestroy(func() {
		h.mu.Lock()
		delete(h.watched, id)
		h.mu.Unlock()
		if h.stack.Remove(w) {
			logging.FromContext(h.ctx).Debug().Uint64("surface_id", uint64(id)).Msg("destroyed surface removed from stack")
		}
	})
}

// DetachSurface removes s from the stack.
func (h *HostWindow) DetachSurface(s port.Surface) {
	w := widgetOf(s)
	if w == nil {
		return
	}
	h.stack.Remove(w)
}

// Notify forwards a message to the window content.
func (h *HostWindow) Notify(ctx context.Context, channel string, args ...any) {
	log := logging.FromContext(h.ctx)
	if h.content == nil {
		log.Debug().Str("channel", channel).Msg("no window content, notification dropped")
		return
	}
	if err := h.content.Send(ctx, channel, args...); err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("failed to notify window content")
	}
}

// SelectedTabID returns the tab last reported as selected.
func (h *HostWindow) SelectedTabID() entity.TabID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.selected
}

// SetSelectedTabID records the selected tab.
func (h *HostWindow) SetSelectedTabID(id entity.TabID) {
	h.mu.Lock()
	h.selected = id
	h.mu.Unlock()
}

// Layers returns the number of attached surfaces.
func (h *HostWindow) Layers() int {
	return h.stack.Len()
}

// RegisterTabSelection keeps the selected tab in sync with "tab-selected"
// messages posted by the window content.
func (h *HostWindow) RegisterTabSelection(r *MessageRouter) error {
	return r.RegisterHandler(MessageTabSelected, MessageHandlerFunc(
		func(_ context.Context, surfaceID port.SurfaceID, payload json.RawMessage) error {
			if h.content != nil && surfaceID != h.content.ID() {
				return fmt.Errorf("tab selection from foreign surface %d", surfaceID)
			}
			var msg struct {
				TabID string `json:"tabId"`
			}
			if err := json.Unmarshal(payload, &msg); err != nil {
				return fmt.Errorf("decode tab selection: %w", err)
			}
			h.SetSelectedTabID(entity.TabID(msg.TabID))
			return nil
		},
	))
}

// RegisterDialogTabs forwards "dialog-tab" messages from the window content
// to tabs.
func (h *HostWindow) RegisterDialogTabs(r *MessageRouter, tabs DialogTabs) error {
	return r.RegisterHandler(MessageDialogTab, MessageHandlerFunc(
		func(_ context.Context, surfaceID port.SurfaceID, payload json.RawMessage) error {
			if h.content == nil || surfaceID != h.content.ID() {
				return fmt.Errorf("dialog tab from foreign surface %d", surfaceID)
			}
			var msg struct {
				Dialog string `json:"dialog"`
				TabID  string `json:"tabId"`
				Open   bool   `json:"open"`
			}
			if err := json.Unmarshal(payload, &msg); err != nil {
				return fmt.Errorf("decode dialog tab: %w", err)
			}
			return tabs.AssociateTab(msg.Dialog, entity.TabID(msg.TabID), msg.Open)
		},
	))
}

func widgetOf(s port.Surface) layout.Widget {
	if p, ok := s.(widgetProvider); ok {
		return p.Widget()
	}
	return nil
}

type surfaceStringer struct{ s port.Surface }

func (n surfaceStringer) String() string {
	if n.s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("surface(%d)", n.s.ID())
}

func surfaceName(s port.Surface) fmt.Stringer { return surfaceStringer{s} }
