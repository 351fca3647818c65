package port

import (
	"context"

	"github.com/bnema/dumber-overlay/internal/domain/entity"
)

// HostWindow is the top-level window dialogs are layered over.
//
// The view stack is shared by every dialog of the window; each dialog only
// attaches and detaches its own surface.
type HostWindow interface {
	// AttachSurface stacks s above the window content and every surface
	// attached before it.
	AttachSurface(s Surface)
	// DetachSurface removes s from the view stack. Detaching a surface that is
	// not attached is a no-op.
	DetachSurface(s Surface)
	// Notify sends a message to the window's own content (tab bar, toolbar).
	Notify(ctx context.Context, channel string, args ...any)
	// SelectedTabID returns the tab currently selected in the window.
	SelectedTabID() entity.TabID
}

// HideRequestHandler reacts to a dialog page asking to be hidden.
type HideRequestHandler func(ctx context.Context)

// HideRequestBus delivers hide requests posted by dialog pages, keyed by the
// identity of the surface that posted them.
type HideRequestBus interface {
	// Subscribe registers h for requests coming from surface id. The returned
	// func removes the registration and is safe to call more than once.
	Subscribe(id SurfaceID, h HideRequestHandler) (unsubscribe func(), err error)
}
