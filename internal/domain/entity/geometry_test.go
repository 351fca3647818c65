package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectMerge_OverridesSetFields(t *testing.T) {
	base := Rect{X: 1, Y: 2, Width: 10, Height: 20}

	got := base.Merge(Rect{Width: 50})

	assert.Equal(t, Rect{X: 1, Y: 2, Width: 50, Height: 20}, got)
}

func TestRectMerge_ZeroFallsBackToCurrent(t *testing.T) {
	base := Rect{X: 1, Y: 2, Width: 10, Height: 20}

	got := base.Merge(Rect{X: 0, Width: 0})

	assert.Equal(t, base, got)
}

func TestRectMerge_NegativeCoordinatesAreSet(t *testing.T) {
	base := Rect{X: 5, Y: 5, Width: 10, Height: 10}

	got := base.Merge(Rect{X: -3})

	assert.Equal(t, -3, got.X)
	assert.Equal(t, 5, got.Y)
}

func TestRectIsEmpty(t *testing.T) {
	assert.True(t, Rect{}.IsEmpty())
	assert.True(t, Rect{Width: 10}.IsEmpty())
	assert.False(t, Rect{Width: 10, Height: 1}.IsEmpty())
}
