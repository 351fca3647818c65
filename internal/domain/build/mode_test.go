package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"":            ModePackaged,
		"packaged":    ModePackaged,
		"production":  ModePackaged,
		"development": ModeDevelopment,
		" DEV ":       ModeDevelopment,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMode("staging")
	assert.Error(t, err)
}
