package webkit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/domain/entity"
)

func TestMessageRouter_RegisterHandlerValidation(t *testing.T) {
	r := NewMessageRouter(context.Background())
	noop := MessageHandlerFunc(func(context.Context, port.SurfaceID, json.RawMessage) error { return nil })

	assert.Error(t, r.RegisterHandler("", noop))
	assert.Error(t, r.RegisterHandler("x", nil))
	assert.NoError(t, r.RegisterHandler("x", noop))
}

func TestMessageRouter_DispatchRoutesByType(t *testing.T) {
	r := NewMessageRouter(context.Background())

	var gotID port.SurfaceID
	var gotPayload string
	require.NoError(t, r.RegisterHandler("ping", MessageHandlerFunc(
		func(_ context.Context, id port.SurfaceID, payload json.RawMessage) error {
			gotID = id
			gotPayload = string(payload)
			return nil
		},
	)))

	err := r.Dispatch(4, `{"type":"ping","payload":{"n":1}}`)

	require.NoError(t, err)
	assert.Equal(t, port.SurfaceID(4), gotID)
	assert.JSONEq(t, `{"n":1}`, gotPayload)
}

func TestMessageRouter_DispatchErrors(t *testing.T) {
	r := NewMessageRouter(nil)
	boom := errors.New("boom")
	require.NoError(t, r.RegisterHandler("fail", MessageHandlerFunc(
		func(context.Context, port.SurfaceID, json.RawMessage) error { return boom },
	)))

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "unknown type", raw: `{"type":"nope"}`, want: ErrUnknownMessage},
		{name: "handler error", raw: `{"type":"fail"}`, want: boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, r.Dispatch(1, tt.raw), tt.want)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		assert.Error(t, r.Dispatch(1, `{"type":`))
	})
}

type recordingPublisher struct {
	ids   []port.SurfaceID
	known map[port.SurfaceID]bool
}

func (p *recordingPublisher) Publish(_ context.Context, id port.SurfaceID) bool {
	p.ids = append(p.ids, id)
	return p.known[id]
}

func TestRegisterHideRequests_PublishesPostingSurface(t *testing.T) {
	r := NewMessageRouter(context.Background())
	pub := &recordingPublisher{known: map[port.SurfaceID]bool{2: true}}
	require.NoError(t, RegisterHideRequests(r, pub))

	require.NoError(t, r.Dispatch(2, `{"type":"`+entity.ChannelHideRequest+`"}`))
	require.NoError(t, r.Dispatch(9, `{"type":"`+entity.ChannelHideRequest+`","payload":{"surfaceId":2}}`))

	// The payload never decides which dialog hides.
	assert.Equal(t, []port.SurfaceID{2, 9}, pub.ids)
}
