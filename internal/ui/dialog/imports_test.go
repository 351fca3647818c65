package dialog

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/bnema/dumber-overlay"

// The dialog state machine and everything it imports from this module must
// build without cgo, so its tests run on machines without GTK headers.
func TestDialogImportsStayFreeOfGTK(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", "..", ".."))
	require.NoError(t, err)

	seen := map[string]bool{}
	queue := []string{modulePath + "/internal/ui/dialog"}
	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]
		if seen[pkg] {
			continue
		}
		seen[pkg] = true

		dir := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(pkg, modulePath+"/")))
		p, err := build.ImportDir(dir, 0)
		require.NoError(t, err, pkg)
		assert.Empty(t, p.CgoFiles, "%s uses cgo", pkg)

		for _, imp := range p.Imports {
			assert.NotContains(t, imp, "gotk4", "%s imports %s", pkg, imp)
			if strings.HasPrefix(imp, modulePath+"/") {
				queue = append(queue, imp)
			}
		}
	}
	assert.True(t, seen[modulePath+"/internal/ui/mainloop"])
}
