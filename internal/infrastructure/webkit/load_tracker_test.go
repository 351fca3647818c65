package webkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadTracker_RunsCallbacksOnce(t *testing.T) {
	var tr loadTracker
	calls := 0
	tr.add(func() { calls++ })
	tr.add(func() { calls++ })
	tr.add(nil)

	assert.True(t, tr.complete())
	assert.False(t, tr.complete(), "second completion is ignored")
	assert.Equal(t, 2, calls)
}

func TestLoadTracker_LateCallbackRunsImmediately(t *testing.T) {
	var tr loadTracker
	tr.complete()

	ran := false
	tr.add(func() { ran = true })

	assert.True(t, ran)
}

func TestLoadTracker_ResetDropsPending(t *testing.T) {
	var tr loadTracker
	ran := false
	tr.add(func() { ran = true })

	tr.reset()
	tr.complete()

	assert.False(t, ran)
}
