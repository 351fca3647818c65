package dialog

import "errors"

var (
	// ErrDestroyed is returned by every operation on a destroyed dialog.
	ErrDestroyed = errors.New("dialog destroyed")
	// ErrNameRequired is returned when a dialog is created without a name.
	ErrNameRequired = errors.New("dialog name is required")
	// ErrMissingDependency is returned when a collaborator is nil.
	ErrMissingDependency = errors.New("missing dialog dependency")
	// ErrUnknownDialog is returned by the manager for names it does not own.
	ErrUnknownDialog = errors.New("unknown dialog")
)
