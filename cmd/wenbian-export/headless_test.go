package main

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/younwookim/wenbian"

// TestExporter_LinksWithoutEbiten walks the module-local imports of the
// exporter and fails if any of them reaches ebiten.
func TestExporter_LinksWithoutEbiten(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	seen := map[string]bool{}
	var offenders []string
	var walk func(dir, name string)
	walk = func(dir, name string) {
		if seen[name] {
			return
		}
		seen[name] = true

		pkg, err := build.ImportDir(dir, 0)
		require.NoError(t, err, name)
		for _, imp := range pkg.Imports {
			switch {
			case strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten"):
				offenders = append(offenders, name+" -> "+imp)
			case strings.HasPrefix(imp, modulePath+"/"):
				rel := strings.TrimPrefix(imp, modulePath+"/")
				walk(filepath.Join(root, filepath.FromSlash(rel)), imp)
			}
		}
	}
	walk(".", modulePath+"/cmd/wenbian-export")

	assert.Empty(t, offenders)
	assert.True(t, seen[modulePath+"/internal/application/replay"])
	assert.True(t, seen[modulePath+"/internal/application/show"])
	assert.True(t, seen[modulePath+"/internal/domain/signal"])
}
