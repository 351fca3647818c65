package build

import (
	"fmt"
	"strings"
)

// Mode selects where dialog content is served from.
type Mode string

const (
	// ModeDevelopment loads dialog pages from a local dev server.
	ModeDevelopment Mode = "development"
	// ModePackaged loads dialog pages from files shipped with the application.
	ModePackaged Mode = "packaged"
)

// ParseMode normalizes a user supplied mode. Empty input means packaged.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModePackaged), "production":
		return ModePackaged, nil
	case string(ModeDevelopment), "dev":
		return ModeDevelopment, nil
	default:
		return "", fmt.Errorf("unknown build mode %q", s)
	}
}

// IsDevelopment reports whether m is the development mode.
func (m Mode) IsDevelopment() bool {
	return m == ModeDevelopment
}
