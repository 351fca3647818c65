package entity

import (
	"fmt"
	"regexp"
)

// Dialog channel names shared between the shell and panel content.
const (
	// ChannelVisibilityChange is sent to the host window content with (name, visible).
	ChannelVisibilityChange = "dialog-visibility-change"
	// ChannelVisible is sent to the panel content itself so it can animate out.
	ChannelVisible = "visible"
	// ChannelHideRequest is posted by panel content asking the shell to hide it.
	ChannelHideRequest = "dialog-hide"
)

var dialogNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateDialogName checks that name can be used both as a page file name and
// as a notification identifier.
func ValidateDialogName(name string) error {
	if !dialogNamePattern.MatchString(name) {
		return fmt.Errorf("invalid dialog name %q: want lowercase letters, digits, '-' or '_'", name)
	}
	return nil
}
