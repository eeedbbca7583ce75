package walk

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"pluginscan/internal/diagnostic"
)

// LoadMode specifies what information to load from packages. Type information
// is needed for every package the walker can reach, hence NeedDeps.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedModule

// Config controls loading and traversal for one call.
type Config struct {
	// Dir is the working directory for the load; empty means the process
	// working directory.
	Dir string
	// TolerateMissing downgrades broken packages to warnings and skips them
	// instead of failing the whole call.
	TolerateMissing bool
	// Logger receives one warning per skipped package in tolerant mode.
	Logger *log.Logger
	// ExcludedPackages are exact import paths never visited.
	ExcludedPackages map[string]bool
	// ExcludePattern excludes any import path it matches.
	ExcludePattern *regexp.Regexp
}

// Load materializes the package graph for the given patterns. The returned
// slice holds only healthy packages; what happens to broken ones depends on
// cfg.TolerateMissing. This is the only load of a call: the walker never
// fetches packages afterwards.
func Load(cfg Config, patterns ...string) ([]*packages.Package, error) {
	pkgCfg := &packages.Config{
		Mode: LoadMode,
		Dir:  cfg.Dir,
	}

	pkgs, err := packages.Load(pkgCfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var diags diagnostic.Diagnostics

	healthy := make([]*packages.Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		if len(pkg.Errors) == 0 && pkg.Types != nil {
			healthy = append(healthy, pkg)
			continue
		}

		for _, e := range pkg.Errors {
			if cfg.TolerateMissing {
				diags.AddWarning(classify(e), pkg.PkgPath, e.Msg)
			} else {
				diags.AddError(classify(e), pkg.PkgPath, e.Msg)
			}
		}
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("package errors: %w", err)
	}

	if cfg.Logger != nil {
		for _, w := range diags.Warnings {
			cfg.Logger.Warn("skipping broken package", "pkg", w.PkgPath, "reason", w.Message)
		}
	}

	return healthy, nil
}

// classify maps a packages.Error to a diagnostic code.
func classify(e packages.Error) string {
	if strings.Contains(e.Msg, "could not import") || strings.Contains(e.Msg, "no required module provides") {
		return diagnostic.CodeMissingImport
	}

	return diagnostic.CodeLoadFailed
}
