package window

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatTitle(t *testing.T) {
	long := strings.Repeat("é", 300)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "empty falls back", title: "", want: windowTitle},
		{name: "short kept", title: "menu", want: "menu"},
		{name: "long truncated", title: long, want: strings.Repeat("é", 252) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTitle(tt.title)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), maxTitleLen)
		})
	}
}
