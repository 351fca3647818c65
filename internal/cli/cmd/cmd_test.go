package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configDir = ""
		configSchemaWrite = ""
		app = nil
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))
	return dir
}

func TestDialogsURL_Development(t *testing.T) {
	dir := writeTestConfig(t, `
mode = "development"
dev_server_url = "http://localhost:5173"
`)

	out, err := execute(t, "--config-dir", dir, "dialogs", "url", "omnibox")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173/omnibox.html", strings.TrimSpace(out))
}

func TestDialogsURL_Packaged(t *testing.T) {
	dir := writeTestConfig(t, `
mode = "packaged"
app_path = "/opt/dumber-overlay"
`)

	out, err := execute(t, "--config-dir", dir, "dialogs", "url", "menu")

	require.NoError(t, err)
	assert.Equal(t, "file:///opt/dumber-overlay/build/menu.html", strings.TrimSpace(out))
}

func TestDialogsURL_RejectsInvalidName(t *testing.T) {
	dir := writeTestConfig(t, `mode = "packaged"`)

	_, err := execute(t, "--config-dir", dir, "dialogs", "url", "../etc/passwd")

	assert.Error(t, err)
}

func TestDialogsList(t *testing.T) {
	dir := writeTestConfig(t, `
app_path = "/opt/dumber-overlay"

[dialogs.find]
width = 400
`)

	out, err := execute(t, "--config-dir", dir, "dialogs", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "find")
	assert.Contains(t, out, "build/find.html")
}

func TestConfigPath_CreatesDefaultFile(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--config-dir", dir, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), strings.TrimSpace(out))
	assert.FileExists(t, filepath.Join(dir, "config.toml"))
}

func TestConfigSchema_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")

	_, err := execute(t, "config", "schema", "--write", path)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hide_grace_ms")
}

func TestRun_RejectsUnknownDialog(t *testing.T) {
	dir := writeTestConfig(t, `mode = "packaged"`)
	t.Cleanup(func() { runShow = "" })

	_, err := execute(t, "--config-dir", dir, "run", "--show", "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
