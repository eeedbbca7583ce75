package walk

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

func loadTree(t *testing.T, cfg Config, patterns ...string) []*packages.Package {
	t.Helper()

	pkgs, err := Load(cfg, patterns...)
	require.NoError(t, err)
	require.NotEmpty(t, pkgs)

	return pkgs
}

func collect(t *testing.T, w *Walker, pkgs []*packages.Package, rootPaths []string) []string {
	t.Helper()

	var visits []string
	err := w.Walk(pkgs, rootPaths, func(pkg *packages.Package) error {
		visits = append(visits, pkg.PkgPath)
		return nil
	})
	require.NoError(t, err)

	return visits
}

func TestWalker_VisitsEachPackageOnce(t *testing.T) {
	// codec and auth both import shared, and auth imports codec: the tree is
	// full of diamonds, yet every package must be visited exactly once.
	pkgs := loadTree(t, Config{}, "pluginscan/plugins/...")

	w := NewWalker(Config{})
	visits := collect(t, w, pkgs, []string{"pluginscan/plugins"})

	expected := []string{
		"pluginscan/plugins/auth",
		"pluginscan/plugins/codec",
		"pluginscan/plugins/metrics",
		"pluginscan/plugins/shared",
	}
	assert.ElementsMatch(t, expected, visits)
	assert.Equal(t, expected, w.Visited())
}

func TestWalker_DescendsThroughImports(t *testing.T) {
	// Only auth is loaded as a root; codec and shared are reached through
	// auth's imports. metrics is in scope but imported by nobody, so the
	// walk never sees it.
	pkgs := loadTree(t, Config{}, "pluginscan/plugins/auth")

	w := NewWalker(Config{})
	visits := collect(t, w, pkgs, []string{"pluginscan/plugins"})

	assert.ElementsMatch(t, []string{
		"pluginscan/plugins/auth",
		"pluginscan/plugins/codec",
		"pluginscan/plugins/shared",
	}, visits)
}

func TestWalker_StaysUnderRoots(t *testing.T) {
	// auth imports pluginscan/registry, stdlib, and yaml; none are under the
	// root, so descent stops at the tree boundary.
	pkgs := loadTree(t, Config{}, "pluginscan/plugins/auth")

	w := NewWalker(Config{})
	visits := collect(t, w, pkgs, []string{"pluginscan/plugins/auth"})

	assert.Equal(t, []string{"pluginscan/plugins/auth"}, visits)
}

func TestWalker_SharedVisitedSetAcrossRoots(t *testing.T) {
	// Overlapping roots: the subtree root and one of its packages. The
	// shared visited set keeps every package at one visit.
	pkgs := loadTree(t, Config{}, "pluginscan/plugins/...", "pluginscan/plugins/codec")

	w := NewWalker(Config{})
	visits := collect(t, w, pkgs, []string{"pluginscan/plugins", "pluginscan/plugins/codec"})

	counts := make(map[string]int)
	for _, v := range visits {
		counts[v]++
	}
	for path, n := range counts {
		assert.Equal(t, 1, n, "package %s visited %d times", path, n)
	}
}

func TestWalker_ExcludedPackages(t *testing.T) {
	pkgs := loadTree(t, Config{}, "pluginscan/plugins/...")

	cfg := Config{ExcludedPackages: map[string]bool{"pluginscan/plugins/shared": true}}
	visits := collect(t, NewWalker(cfg), pkgs, []string{"pluginscan/plugins"})

	assert.NotContains(t, visits, "pluginscan/plugins/shared")
	assert.Contains(t, visits, "pluginscan/plugins/codec")
}

func TestWalker_ExcludePattern(t *testing.T) {
	pkgs := loadTree(t, Config{}, "pluginscan/plugins/...")

	cfg := Config{ExcludePattern: regexp.MustCompile(`/(metrics|shared)$`)}
	visits := collect(t, NewWalker(cfg), pkgs, []string{"pluginscan/plugins"})

	assert.ElementsMatch(t, []string{
		"pluginscan/plugins/auth",
		"pluginscan/plugins/codec",
	}, visits)
}

func TestWalker_VisitErrorAborts(t *testing.T) {
	pkgs := loadTree(t, Config{}, "pluginscan/plugins/...")

	w := NewWalker(Config{})
	calls := 0
	err := w.Walk(pkgs, []string{"pluginscan/plugins"}, func(pkg *packages.Package) error {
		calls++
		return assert.AnError
	})

	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}
