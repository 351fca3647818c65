package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-overlay/internal/application/port"
	"github.com/bnema/dumber-overlay/internal/domain/build"
)

var _ port.ContentURLResolver = (*ResolveContentURLUseCase)(nil)

func TestResolveContentURL_Development(t *testing.T) {
	uc, err := NewResolveContentURLUseCase(ResolveContentURLInput{
		Mode:         build.ModeDevelopment,
		DevServerURL: "http://localhost:4444/",
	})
	require.NoError(t, err)

	got, err := uc.ContentURL("omnibox")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4444/omnibox.html", got)
	assert.True(t, uc.IsDevelopment())
}

func TestResolveContentURL_DevelopmentKeepsBasePath(t *testing.T) {
	uc, err := NewResolveContentURLUseCase(ResolveContentURLInput{
		Mode:         build.ModeDevelopment,
		DevServerURL: "http://127.0.0.1:5173/dialogs",
	})
	require.NoError(t, err)

	got, err := uc.ContentURL("menu")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:5173/dialogs/menu.html", got)
}

func TestResolveContentURL_Packaged(t *testing.T) {
	uc, err := NewResolveContentURLUseCase(ResolveContentURLInput{
		Mode:    build.ModePackaged,
		AppPath: "/opt/dumber-overlay",
	})
	require.NoError(t, err)

	got, err := uc.ContentURL("find-bar")
	require.NoError(t, err)
	assert.Equal(t, "file:///opt/dumber-overlay/build/find-bar.html", got)
	assert.False(t, uc.IsDevelopment())
}

func TestResolveContentURL_RejectsBadNames(t *testing.T) {
	uc, err := NewResolveContentURLUseCase(ResolveContentURLInput{
		Mode:    build.ModePackaged,
		AppPath: "/opt/dumber-overlay",
	})
	require.NoError(t, err)

	for _, name := range []string{"", "../secrets", "Menu", "a/b"} {
		_, err := uc.ContentURL(name)
		assert.Error(t, err, name)
	}
}

func TestNewResolveContentURLUseCase_Validation(t *testing.T) {
	_, err := NewResolveContentURLUseCase(ResolveContentURLInput{Mode: build.ModeDevelopment, DevServerURL: "localhost:4444"})
	assert.Error(t, err)

	_, err = NewResolveContentURLUseCase(ResolveContentURLInput{Mode: build.ModePackaged})
	assert.Error(t, err)

	_, err = NewResolveContentURLUseCase(ResolveContentURLInput{Mode: "staging", AppPath: "/"})
	assert.Error(t, err)
}
