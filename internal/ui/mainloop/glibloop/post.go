// Package glibloop hands work to the GTK main loop. It is kept apart from
// mainloop so the dialog packages build without cgo.
package glibloop

import (
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
)

// Post runs fn on the next idle iteration of the GTK main loop.
// Safe to call from any goroutine.
func Post(fn func()) {
	coreglib.IdleAdd(func() bool {
		fn()
		return false
	})
}
