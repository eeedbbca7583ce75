// Package modpath maps filesystem directories to Go import paths.
package modpath

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// Resolve returns the import path of the package in dir by locating the
// enclosing go.mod and joining its module path with the relative directory.
func Resolve(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	modRoot := abs
	for {
		data, err := os.ReadFile(filepath.Join(modRoot, "go.mod"))
		if err == nil {
			modPath := modfile.ModulePath(data)
			if modPath == "" {
				return "", fmt.Errorf("go.mod in %s has no module path", modRoot)
			}

			rel, err := filepath.Rel(modRoot, abs)
			if err != nil {
				return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
			}

			if rel == "." {
				return modPath, nil
			}

			return modPath + "/" + filepath.ToSlash(rel), nil
		}

		parent := filepath.Dir(modRoot)
		if parent == modRoot {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		modRoot = parent
	}
}
