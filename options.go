package pluginscan

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Options configures a Scanner. The zero value is valid and reproduces the
// plain GetSubclasses / GetMembers semantics: full-depth loading, no
// exclusions, any broken package fails the whole call.
type Options struct {
	// Dir is the working directory for package loading; relative roots and
	// directory roots resolve against it. Empty means the process working
	// directory.
	Dir string `yaml:"dir"`

	// RootsOnly loads only the named root packages instead of cascading over
	// each root's whole subtree (root/...). The walker then sees just those
	// packages plus whatever they import under the roots, the same way an
	// opportunistic reflective walk sees only what is already loaded.
	RootsOnly bool `yaml:"roots_only"`

	// ExcludedPackages are exact import paths the walker never visits or
	// descends into.
	ExcludedPackages []string `yaml:"excluded_packages"`

	// ExcludePattern is a regular expression over import paths; matching
	// packages are excluded like ExcludedPackages entries.
	ExcludePattern string `yaml:"exclude_pattern"`

	// TolerateMissing skips packages that fail to load, reporting each as a
	// warning, instead of failing the call. The default is to fail: a broken
	// package aborts the traversal and no partial results are returned.
	TolerateMissing bool `yaml:"tolerate_missing"`

	// Logger receives warnings for tolerated load failures. Nil discards.
	Logger *log.Logger `yaml:"-"`
}

// LoadOptions reads a YAML options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	return ParseOptions(data)
}

// ParseOptions parses YAML data into Options.
func ParseOptions(data []byte) (Options, error) {
	var opts Options

	err := yaml.Unmarshal(data, &opts)
	if err != nil {
		return Options{}, fmt.Errorf("failed to parse options YAML: %w", err)
	}

	return opts, nil
}

// compile validates the options and builds the pieces the walker consumes.
func (o Options) compile() (*regexp.Regexp, map[string]bool, *log.Logger, error) {
	var pattern *regexp.Regexp
	if o.ExcludePattern != "" {
		var err error
		pattern, err = regexp.Compile(o.ExcludePattern)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid exclude pattern %q: %w", o.ExcludePattern, err)
		}
	}

	excluded := make(map[string]bool, len(o.ExcludedPackages))
	for _, path := range o.ExcludedPackages {
		if path == "" {
			return nil, nil, nil, fmt.Errorf("excluded package path must not be empty")
		}
		excluded[path] = true
	}

	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return pattern, excluded, logger, nil
}
