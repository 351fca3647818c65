package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCSS(t *testing.T) {
	css := GenerateCSS(DefaultDarkPalette())

	assert.Contains(t, css, "background-color: #0a0a0b;")
	assert.Contains(t, css, ".dumber-dialog {")
	assert.Contains(t, css, "background: transparent;")
	assert.Contains(t, css, ".dumber-content {")
}
