package usecase

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/bnema/dumber-overlay/internal/domain/build"
	"github.com/bnema/dumber-overlay/internal/domain/entity"
)

// contentDir is the directory under the application path holding built dialog pages.
const contentDir = "build"

// ResolveContentURLInput holds the settings the resolver is built from.
type ResolveContentURLInput struct {
	Mode build.Mode
	// DevServerURL serves <name>.html in development mode.
	DevServerURL string
	// AppPath holds build/<name>.html in packaged mode.
	AppPath string
}

// ResolveContentURLUseCase maps a dialog name to the URL of its page.
// It implements port.ContentURLResolver.
type ResolveContentURLUseCase struct {
	mode    build.Mode
	devBase *url.URL
	appPath string
}

// NewResolveContentURLUseCase validates the input and creates the resolver.
func NewResolveContentURLUseCase(input ResolveContentURLInput) (*ResolveContentURLUseCase, error) {
	uc := &ResolveContentURLUseCase{mode: input.Mode}

	switch input.Mode {
	case build.ModeDevelopment:
		base, err := url.Parse(strings.TrimRight(input.DevServerURL, "/"))
		if err != nil {
			return nil, fmt.Errorf("invalid dev server url %q: %w", input.DevServerURL, err)
		}
		if base.Scheme == "" || base.Host == "" {
			return nil, fmt.Errorf("dev server url %q must be absolute", input.DevServerURL)
		}
		uc.devBase = base
	case build.ModePackaged:
		if input.AppPath == "" {
			return nil, fmt.Errorf("app path is required in packaged mode")
		}
		abs, err := filepath.Abs(input.AppPath)
		if err != nil {
			return nil, fmt.Errorf("resolve app path %q: %w", input.AppPath, err)
		}
		uc.appPath = abs
	default:
		return nil, fmt.Errorf("unknown build mode %q", input.Mode)
	}
	return uc, nil
}

// ContentURL returns the page URL for the named dialog.
func (uc *ResolveContentURLUseCase) ContentURL(name string) (string, error) {
	if err := entity.ValidateDialogName(name); err != nil {
		return "", err
	}
	page := name + ".html"

	if uc.mode.IsDevelopment() {
		return uc.devBase.JoinPath(page).String(), nil
	}

	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(filepath.Join(uc.appPath, contentDir, page)),
	}
	return u.String(), nil
}

// IsDevelopment reports whether pages come from the dev server.
func (uc *ResolveContentURLUseCase) IsDevelopment() bool {
	return uc.mode.IsDevelopment()
}

// Mode returns the configured build mode.
func (uc *ResolveContentURLUseCase) Mode() build.Mode {
	return uc.mode
}
