package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-overlay/internal/domain/entity"
	"github.com/bnema/dumber-overlay/internal/ui/layout"
	"github.com/bnema/dumber-overlay/internal/ui/layout/mocks"
)

func newStack(t *testing.T) (*layout.OverlayStack, *mocks.MockOverlayWidget) {
	t.Helper()
	mockFactory := mocks.NewMockWidgetFactory(t)
	mockOverlay := mocks.NewMockOverlayWidget(t)
	mockBase := mocks.NewMockWidget(t)

	mockFactory.EXPECT().NewOverlay().Return(mockOverlay).Once()
	mockOverlay.EXPECT().SetChild(mockBase).Once()

	return layout.NewOverlayStack(context.Background(), mockFactory, mockBase), mockOverlay
}

func TestNewOverlayStack_InstallsBase(t *testing.T) {
	// Arrange / Act
	stack, mockOverlay := newStack(t)

	// Assert
	require.NotNil(t, stack)
	assert.Equal(t, mockOverlay, stack.Widget())
	assert.Zero(t, stack.Len())
}

func TestOverlayStack_PushAddsOnTop(t *testing.T) {
	// Arrange
	stack, mockOverlay := newStack(t)
	first := mocks.NewMockWidget(t)
	second := mocks.NewMockWidget(t)

	mockOverlay.EXPECT().AddOverlay(first).Once()
	mockOverlay.EXPECT().SetClipOverlay(first, true).Once()
	mockOverlay.EXPECT().AddOverlay(second).Once()
	mockOverlay.EXPECT().SetClipOverlay(second, true).Once()

	// Act
	assert.True(t, stack.Push(first))
	assert.True(t, stack.Push(second))
	assert.False(t, stack.Push(first), "already stacked")

	// Assert
	assert.Equal(t, []layout.Widget{first, second}, stack.Layers())
	assert.True(t, stack.Contains(first))
}

func TestOverlayStack_RemoveThenPushRaises(t *testing.T) {
	// Arrange
	stack, mockOverlay := newStack(t)
	first := mocks.NewMockWidget(t)
	second := mocks.NewMockWidget(t)

	mockOverlay.EXPECT().AddOverlay(first).Twice()
	mockOverlay.EXPECT().SetClipOverlay(first, true).Twice()
	mockOverlay.EXPECT().AddOverlay(second).Once()
	mockOverlay.EXPECT().SetClipOverlay(second, true).Once()
	mockOverlay.EXPECT().RemoveOverlay(first).Once()

	stack.Push(first)
	stack.Push(second)

	// Act
	assert.True(t, stack.Remove(first))
	assert.True(t, stack.Push(first))

	// Assert
	assert.Equal(t, []layout.Widget{second, first}, stack.Layers())
}

func TestOverlayStack_RemoveUnknownIsNoop(t *testing.T) {
	// Arrange
	stack, _ := newStack(t)
	stranger := mocks.NewMockWidget(t)

	// Act / Assert
	assert.False(t, stack.Remove(stranger))
	assert.False(t, stack.Push(nil))
}

func TestApplyGeometry(t *testing.T) {
	// Arrange
	w := mocks.NewMockWidget(t)
	w.EXPECT().SetHalign(layout.AlignStart).Once()
	w.EXPECT().SetValign(layout.AlignStart).Once()
	w.EXPECT().SetMarginStart(12).Once()
	w.EXPECT().SetMarginTop(0).Once()
	w.EXPECT().SetSizeRequest(480, -1).Once()

	// Act
	layout.ApplyGeometry(w, entity.Rect{X: 12, Y: -4, Width: 480})
}
