package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDialogName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "menu"},
		{name: "find-bar"},
		{name: "page_info2"},
		{name: "", wantErr: true},
		{name: "Menu", wantErr: true},
		{name: "../menu", wantErr: true},
		{name: "-menu", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDialogName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
