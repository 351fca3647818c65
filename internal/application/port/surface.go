// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the dialog layer to
// remain independent of specific implementations (WebKit, GTK, etc.).
package port

import (
	"context"

	"github.com/bnema/dumber-overlay/internal/domain/entity"
)

// SurfaceID uniquely identifies an embeddable surface for its whole lifetime.
type SurfaceID uint64

// SurfaceConfig describes how an embeddable surface is created.
type SurfaceConfig struct {
	// Privileged exposes the shell message bridge to the page. Dialog pages
	// are trusted chrome, not arbitrary web content.
	Privileged bool
	// ContextIsolation runs page scripts in an isolated world.
	ContextIsolation bool
	// Transparent paints the surface background transparent so rounded
	// panels can be layered over the page.
	Transparent bool
	// DeveloperExtras enables the inspector.
	DeveloperExtras bool
	// UserAgent overrides the default user agent when non-empty.
	UserAgent string
}

// TrustedChromeConfig returns the defaults used for dialog surfaces.
func TrustedChromeConfig() SurfaceConfig {
	return SurfaceConfig{
		Privileged:       true,
		ContextIsolation: false,
		Transparent:      true,
	}
}

// SurfaceOverrides holds caller supplied changes to a SurfaceConfig.
// Nil fields keep the base value.
type SurfaceOverrides struct {
	Privileged       *bool
	ContextIsolation *bool
	Transparent      *bool
	DeveloperExtras  *bool
	UserAgent        *string
}

// Apply merges the overrides over base.
func (o SurfaceOverrides) Apply(base SurfaceConfig) SurfaceConfig {
	if o.Privileged != nil {
		base.Privileged = *o.Privileged
	}
	if o.ContextIsolation != nil {
		base.ContextIsolation = *o.ContextIsolation
	}
	if o.Transparent != nil {
		base.Transparent = *o.Transparent
	}
	if o.DeveloperExtras != nil {
		base.DeveloperExtras = *o.DeveloperExtras
	}
	if o.UserAgent != nil {
		base.UserAgent = *o.UserAgent
	}
	return base
}

// Surface is an embeddable rendering surface hosting a dialog page.
// All methods must be called from the main loop.
type Surface interface {
	// ID returns the identity assigned at creation.
	ID() SurfaceID
	// LoadURI starts loading the dialog page.
	LoadURI(ctx context.Context, uri string) error
	// OnInitialLoadComplete registers fn to run once, when the first page
	// load has finished. Registering after completion runs fn immediately.
	OnInitialLoadComplete(fn func())
	// ShowDevTools opens a detached inspector window.
	ShowDevTools(ctx context.Context) error
	// Focus moves keyboard focus into the surface.
	Focus()
	// SetGeometry positions and sizes the surface inside its host.
	SetGeometry(rect entity.Rect)
	// Send delivers a message to the page on the given channel.
	Send(ctx context.Context, channel string, args ...any) error
	// Destroy releases the surface. It also drops any host attachment.
	Destroy()
}

// SurfaceFactory creates embeddable surfaces.
type SurfaceFactory interface {
	NewSurface(ctx context.Context, cfg SurfaceConfig) (Surface, error)
}
