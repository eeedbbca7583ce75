package walk

import (
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// VisitFunc is applied to every visited package. A non-nil error aborts the
// traversal immediately.
type VisitFunc func(*packages.Package) error

// Walker enumerates each package of a loaded graph at most once. The visited
// set lives for a single Walk call chain and is never shared between calls;
// multiple roots passed to one Walk share it, so overlapping subtrees are not
// double-processed.
type Walker struct {
	cfg       Config
	visited   map[string]bool
	rootPaths []string
}

// NewWalker creates a Walker with a fresh visited set.
func NewWalker(cfg Config) *Walker {
	return &Walker{
		cfg:     cfg,
		visited: make(map[string]bool),
	}
}

// Walk visits every package of pkgs and every import reachable from them that
// is nested under one of rootPaths. Marking happens before recursing, so the
// traversal terminates on any diamond or cycle shape the graph presents.
func (w *Walker) Walk(pkgs []*packages.Package, rootPaths []string, visit VisitFunc) error {
	w.rootPaths = rootPaths

	for _, pkg := range pkgs {
		if !w.inScope(pkg.PkgPath) {
			continue
		}

		if err := w.walk(pkg, visit); err != nil {
			return err
		}
	}

	return nil
}

func (w *Walker) walk(pkg *packages.Package, visit VisitFunc) error {
	if w.visited[pkg.PkgPath] || w.excluded(pkg.PkgPath) {
		return nil
	}

	// Mark first: a package reached again through another import path must
	// not be processed twice.
	w.visited[pkg.PkgPath] = true

	if pkg.Types == nil {
		// Broken dependency that survived a tolerant load.
		return nil
	}

	if err := visit(pkg); err != nil {
		return err
	}

	// Deterministic descent order; the result set does not depend on it.
	paths := make([]string, 0, len(pkg.Imports))
	for path := range pkg.Imports {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if !w.inScope(path) {
			continue
		}

		if err := w.walk(pkg.Imports[path], visit); err != nil {
			return err
		}
	}

	return nil
}

// inScope reports whether the import path is one of the traversal roots or
// nested under one. Imports outside the roots (stdlib, external modules,
// sibling trees the caller did not ask for) are never descended into.
func (w *Walker) inScope(pkgPath string) bool {
	for _, root := range w.rootPaths {
		if pkgPath == root || strings.HasPrefix(pkgPath, root+"/") {
			return true
		}
	}

	return false
}

// excluded applies the exact and pattern exclusion filters.
func (w *Walker) excluded(pkgPath string) bool {
	if w.cfg.ExcludedPackages[pkgPath] {
		return true
	}

	return w.cfg.ExcludePattern != nil && w.cfg.ExcludePattern.MatchString(pkgPath)
}

// Visited returns the sorted import paths visited so far.
func (w *Walker) Visited() []string {
	out := make([]string, 0, len(w.visited))
	for path := range w.visited {
		out = append(out, path)
	}
	sort.Strings(out)

	return out
}
