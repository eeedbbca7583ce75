// Package diagnostic provides structured reports for package loading.
//
// The loader records one diagnostic per broken package instead of stopping at
// the first error, so a caller sees every failure of a tree at once. In
// tolerant mode the same diagnostics are downgraded to warnings and the
// broken packages are skipped.
package diagnostic
