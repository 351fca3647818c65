package webkit

import (
	"context"
	"encoding/json"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/domain/entity"
	"github.com/bnema/dumber-overlay/internal/logging"
)

// HidePublisher delivers a hide request to the dialog owning a surface.
type HidePublisher interface {
	Publish(ctx context.Context, id port.SurfaceID) bool
}

// RegisterHideRequests routes "dialog-hide" messages to publisher, keyed by
// the surface that posted them.
func RegisterHideRequests(r *MessageRouter, publisher HidePublisher) error {
	return r.RegisterHandler(entity.ChannelHideRequest, MessageHandlerFunc(
		func(ctx context.Context, surfaceID port.SurfaceID, _ json.RawMessage) error {
			if !publisher.Publish(ctx, surfaceID) {
				logging.FromContext(ctx).Debug().
					Uint64("surface_id", uint64(surfaceID)).
					Msg("hide request from surface without dialog")
			}
			return nil
		},
	))
}
