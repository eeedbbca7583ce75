// Package pluginscan discovers plugin implementations by walking a package
// tree with go/packages and inspecting every top-level declaration.
//
// Two entry points cover the common cases:
//   - GetSubclasses: collect every named type that descends from a base type
//     (implements a base interface, or embeds a base struct transitively)
//   - GetMembers: collect every top-level declaration matching a caller
//     predicate
//
// Both walk each package at most once per call, share a single visited set
// across multiple roots, and return deduplicated result sets. The walker
// never loads packages on its own mid-traversal: it sees exactly the graph
// that the initial load materialized, so descent through imports is limited
// to packages nested under the given roots.
//
// A configured Scanner adds exclusion filters, tolerant loading, and
// YAML-backed options; the package-level functions use a zero-config Scanner.
package pluginscan
