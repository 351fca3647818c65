package mainloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chanLoop stands in for the GTK main loop: posted tasks are queued on a
// channel and run by the test goroutine.
type chanLoop chan func()

func (l chanLoop) post(fn func()) { l <- fn }

func (l chanLoop) runNext(t *testing.T) {
	t.Helper()
	select {
	case fn := <-l:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for main loop task")
	}
}

func TestTimerSchedulerRunsOnMainLoop(t *testing.T) {
	loop := make(chanLoop, 1)
	s := NewTimerScheduler(loop.post)

	ran := false
	s.AfterFunc(time.Millisecond, func() { ran = true })

	assert.False(t, ran, "task must not run on the timer goroutine")
	loop.runNext(t)
	assert.True(t, ran)
}

func TestTimerSchedulerCancelBeforeFire(t *testing.T) {
	loop := make(chanLoop, 1)
	s := NewTimerScheduler(loop.post)

	ran := false
	cancel := s.AfterFunc(time.Hour, func() { ran = true })
	cancel()

	assert.False(t, ran)
	assert.Empty(t, loop)
}

func TestTimerSchedulerCancelAfterFireButBeforeRun(t *testing.T) {
	loop := make(chanLoop, 1)
	s := NewTimerScheduler(loop.post)

	ran := false
	cancel := s.AfterFunc(time.Millisecond, func() { ran = true })

	var queued func()
	select {
	case queued = <-loop:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
	cancel()
	require.NotNil(t, queued)
	queued()

	assert.False(t, ran)
}

func TestNewTimerSchedulerPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { NewTimerScheduler(nil) })
}
