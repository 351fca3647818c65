package styles_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumber-overlay/internal/cli/styles"
	"github.com/bnema/dumber-overlay/internal/domain/build"
	"github.com/bnema/dumber-overlay/internal/infrastructure/config"
)

func TestConfigRenderer_RenderKeysGroupsSections(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())
	cfg := config.DefaultConfig()
	cfg.Mode = "development"

	out := r.RenderKeys(config.Describe(cfg))

	require.Contains(t, out, config.SectionGeneral)
	require.Contains(t, out, config.SectionDialogs)
	assert.Contains(t, out, "dialogs.menu.width")
	assert.Contains(t, out, "(default: packaged)")
}

func TestConfigRenderer_Messages(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderConfigInfo("/tmp/dumber-overlay/config.toml"), "config.toml")
	assert.Contains(t, r.RenderResetSuccess("/tmp/dumber-overlay/config.toml"), "config.toml")
	assert.Contains(t, r.RenderError(errors.New("broken")), "broken")
	assert.Empty(t, r.RenderKeys(nil))
}

func TestAboutRenderer_Render(t *testing.T) {
	out := styles.NewAboutRenderer(styles.NewTheme()).Render(build.Info{
		Version: "v1.2.3", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25.3",
	})

	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}

func TestDialogRow_ToTableRow(t *testing.T) {
	row := styles.DialogRow{Name: "menu", X: 8, Y: 40, Width: 320, HideGraceMs: 150, DevTools: true, URL: "file:///x/menu.html"}

	got := row.ToTableRow()

	assert.Equal(t, []string{"menu", "8,40 320xauto", "150ms", "yes", "file:///x/menu.html"}, []string(got))
}

func TestRenderDialogTable(t *testing.T) {
	out := styles.RenderDialogTable(styles.NewTheme(), []styles.DialogRow{{Name: "omnibox"}})

	assert.Contains(t, out, "Dialog")
	assert.Contains(t, out, "omnibox")
}

func TestConfirmModel(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Overwrite config.toml?").WithDetail("dialogs will be removed")
	assert.False(t, m.Overwriting())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.True(t, m.Overwriting())
	assert.False(t, m.Done())

	view := m.View()
	assert.Contains(t, view, "Overwrite config.toml?")
	assert.Contains(t, view, "dialogs will be removed")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Done())
	assert.True(t, m.Result())
}

func TestConfirmModel_ToggleAndKeep(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Overwrite?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, m.Overwriting())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, m.Overwriting())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestConfirmModel_Abort(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Overwrite?")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Done())
	assert.False(t, m.Result())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Result(), "answers after abort are ignored")
}
