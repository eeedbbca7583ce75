package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_HealthyTree(t *testing.T) {
	pkgs, err := Load(Config{}, "pluginscan/registry")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	assert.Equal(t, "pluginscan/registry", pkgs[0].PkgPath)
	assert.NotNil(t, pkgs[0].Types)
}

func TestLoad_UnknownPatternFails(t *testing.T) {
	_, err := Load(Config{}, "pluginscan/does/not/exist")
	require.Error(t, err)
}

// brokenModule writes a throwaway module whose single package imports a
// module that cannot be resolved.
func brokenModule(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	gomod := "module example.com/broken\n\ngo 1.21\n"
	src := "package broken\n\nimport \"example.com/nonexistent\"\n\nvar _ = nonexistent.Thing\n"

	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.go"), []byte(src), 0o644))

	return dir
}

func TestLoad_BrokenPackagePropagates(t *testing.T) {
	dir := brokenModule(t)

	_, err := Load(Config{Dir: dir}, "example.com/broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package errors")
}

func TestLoad_TolerateMissingSkips(t *testing.T) {
	dir := brokenModule(t)

	pkgs, err := Load(Config{Dir: dir, TolerateMissing: true}, "example.com/broken")
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}
