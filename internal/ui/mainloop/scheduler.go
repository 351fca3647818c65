package mainloop

import (
	"sync/atomic"
	"time"

	"github.com/bnema/dumber-overlay/internal/application/port"
)

var _ port.Scheduler = (*TimerScheduler)(nil)

// TimerScheduler runs deferred tasks from Go timers, handing each one to the
// main loop through post once its delay has elapsed.
type TimerScheduler struct {
	post func(func())
}

// NewTimerScheduler returns a scheduler that delivers fired timers via post.
func NewTimerScheduler(post func(func())) *TimerScheduler {
	if post == nil {
		panic("mainloop.NewTimerScheduler: post function cannot be nil")
	}
	return &TimerScheduler{post: post}
}

// AfterFunc schedules fn after d. The cancel func must be called from the main
// loop; once it returns fn is guaranteed not to run, even if the timer already
// fired and its task is queued.
func (s *TimerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	var cancelled atomic.Bool
	timer := time.AfterFunc(d, func() {
		s.post(func() {
			if cancelled.Load() {
				return
			}
			fn()
		})
	})
	return func() {
		cancelled.Store(true)
		timer.Stop()
	}
}
