package webkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDispatchScript(t *testing.T) {
	script, err := buildDispatchScript("dialog-visibility-change", []any{"menu", true})

	require.NoError(t, err)
	assert.Equal(t,
		`window.dispatchEvent(new CustomEvent("dumber:message", {detail: {"channel":"dialog-visibility-change","args":["menu",true]}}));`,
		script)
}

func TestBuildDispatchScript_NoArgsSendsEmptyArray(t *testing.T) {
	script, err := buildDispatchScript("visible", nil)

	require.NoError(t, err)
	assert.Contains(t, script, `"args":[]`)
}

func TestBuildDispatchScript_EscapesValues(t *testing.T) {
	script, err := buildDispatchScript("note", []any{`"); alert(1); ("`, "</script>"})

	require.NoError(t, err)
	assert.Contains(t, script, `"\"); alert(1); (\""`)
	assert.False(t, strings.Contains(script, "</script>"), "html must be escaped")
}

func TestBuildDispatchScript_Errors(t *testing.T) {
	_, err := buildDispatchScript("", nil)
	assert.Error(t, err)

	_, err = buildDispatchScript("bad", []any{make(chan int)})
	assert.Error(t, err)
}
