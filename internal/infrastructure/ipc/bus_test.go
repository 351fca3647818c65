package ipc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-overlay/internal/application/port"
)

func TestBus_PublishReachesOnlyTargetSurface(t *testing.T) {
	b := NewBus()
	var got []port.SurfaceID

	_, err := b.Subscribe(1, func(context.Context) { got = append(got, 1) })
	require.NoError(t, err)
	_, err = b.Subscribe(2, func(context.Context) { got = append(got, 2) })
	require.NoError(t, err)

	assert.True(t, b.Publish(context.Background(), 2))
	assert.Equal(t, []port.SurfaceID{2}, got)
}

func TestBus_PublishUnknownSurface(t *testing.T) {
	b := NewBus()
	assert.False(t, b.Publish(context.Background(), 42))
}

func TestBus_RejectsDuplicateAndNil(t *testing.T) {
	b := NewBus()
	_, err := b.Subscribe(1, func(context.Context) {})
	require.NoError(t, err)

	_, err = b.Subscribe(1, func(context.Context) {})
	assert.ErrorIs(t, err, ErrAlreadySubscribed)

	_, err = b.Subscribe(2, nil)
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestBus_UnsubscribeIsIdempotentAndScoped(t *testing.T) {
	b := NewBus()
	unsubscribe, err := b.Subscribe(1, func(context.Context) {})
	require.NoError(t, err)

	unsubscribe()
	assert.Equal(t, 0, b.Len())

	calls := 0
	_, err = b.Subscribe(1, func(context.Context) { calls++ })
	require.NoError(t, err)

	// A stale unsubscribe must not remove the newer registration.
	unsubscribe()
	assert.Equal(t, 1, b.Len())
	b.Publish(context.Background(), 1)
	assert.Equal(t, 1, calls)
}
