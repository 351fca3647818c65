package port

import "time"

// Scheduler runs deferred work on the main loop.
type Scheduler interface {
	// AfterFunc runs fn on the main loop once d has elapsed. Calling the
	// returned cancel func before fn runs guarantees fn never runs.
	AfterFunc(d time.Duration, fn func()) (cancel func())
}
