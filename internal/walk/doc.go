// Package walk provides package loading and visited-set traversal.
//
// It uses golang.org/x/tools/go/packages to materialize the package graph in
// a single load, then walks that graph without ever loading anything else:
// descent goes through pkg.Imports, restricted to import paths nested under
// the traversal roots, with each package marked visited before its imports
// are followed.
//
// Key types:
//   - Config: load directory, exclusion filters, tolerance for broken packages
//   - Walker: per-call visited set and the mark-before-recurse traversal
package walk
