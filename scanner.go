package pluginscan

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/tools/go/packages"

	"pluginscan/internal/common"
	"pluginscan/internal/hierarchy"
	"pluginscan/internal/modpath"
	"pluginscan/internal/walk"
)

var (
	// ErrNoRoots is returned when a call names no root packages. Nothing is
	// loaded in that case.
	ErrNoRoots = errors.New("no root packages given")

	// ErrNotClass is returned when the base of a subclass query does not
	// resolve to a named struct or interface type.
	ErrNotClass = errors.New("base is not a struct or interface type")
)

// Scanner walks package trees with a fixed configuration. A Scanner holds no
// state between calls: every call loads its own graph and builds its own
// visited and result sets, so concurrent calls on one Scanner are safe.
type Scanner struct {
	opts     Options
	exclude  *regexp.Regexp
	excluded map[string]bool
	logger   *log.Logger
}

// New validates opts and creates a Scanner.
func New(opts Options) (*Scanner, error) {
	pattern, excluded, logger, err := opts.compile()
	if err != nil {
		return nil, err
	}

	return &Scanner{
		opts:     opts,
		exclude:  pattern,
		excluded: excluded,
		logger:   logger,
	}, nil
}

// GetSubclasses collects every named type under the roots that strictly
// descends from base: implements it when base is an interface, or embeds it
// transitively when base is a struct. Base itself is never included. Roots
// are import paths, patterns, or filesystem directories; all of them share
// one visited set, so the result over several roots is the deduplicated
// union. Uses a zero-config Scanner.
func GetSubclasses(base TypeRef, roots ...string) (MemberSet, error) {
	s, err := New(Options{})
	if err != nil {
		return nil, err
	}

	return s.Subclasses(base, roots...)
}

// GetMembers collects every top-level declaration under the roots for which
// the predicate returns true. Uses a zero-config Scanner.
func GetMembers(pred Predicate, roots ...string) (MemberSet, error) {
	s, err := New(Options{})
	if err != nil {
		return nil, err
	}

	return s.Members(pred, roots...)
}

// Subclasses is GetSubclasses with this Scanner's configuration.
func (s *Scanner) Subclasses(base TypeRef, roots ...string) (MemberSet, error) {
	if base.PkgPath == "" || base.Name == "" {
		return nil, fmt.Errorf("%w: empty base ref", ErrNotClass)
	}

	rootPaths, patterns, err := s.resolveRoots(roots)
	if err != nil {
		return nil, err
	}

	// The base's package is loaded alongside the roots so the base type can
	// be resolved, but it is only traversed when it sits under a root.
	pkgs, err := walk.Load(s.walkConfig(), append(patterns, base.PkgPath)...)
	if err != nil {
		return nil, err
	}

	baseType, err := resolveBase(pkgs, base)
	if err != nil {
		return nil, err
	}

	result := NewMemberSet()
	err = walk.NewWalker(s.walkConfig()).Walk(pkgs, rootPaths, func(pkg *packages.Package) error {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok {
				continue
			}

			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}

			if hierarchy.IsSubclass(named, baseType) {
				result.Add(memberOf(pkg.PkgPath, tn))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Members is GetMembers with this Scanner's configuration. The predicate is
// applied to every top-level declaration of every visited package and must
// not panic.
func (s *Scanner) Members(pred Predicate, roots ...string) (MemberSet, error) {
	if pred == nil {
		return nil, errors.New("predicate must not be nil")
	}

	rootPaths, patterns, err := s.resolveRoots(roots)
	if err != nil {
		return nil, err
	}

	pkgs, err := walk.Load(s.walkConfig(), patterns...)
	if err != nil {
		return nil, err
	}

	result := NewMemberSet()
	err = walk.NewWalker(s.walkConfig()).Walk(pkgs, rootPaths, func(pkg *packages.Package) error {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			m := memberOf(pkg.PkgPath, scope.Lookup(name))
			if pred(m) {
				result.Add(m)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// resolveRoots turns caller roots into traversal root paths and load
// patterns. Directory roots are resolved to import paths through the
// enclosing go.mod. Unless RootsOnly is set, each root loads its whole
// subtree so the graph covers everything nested under it.
func (s *Scanner) resolveRoots(roots []string) (rootPaths, patterns []string, err error) {
	if common.IsEmpty(roots) {
		return nil, nil, ErrNoRoots
	}

	for _, root := range roots {
		if root == "" {
			return nil, nil, fmt.Errorf("%w: empty root", ErrNoRoots)
		}

		if isDirRoot(root) {
			dir := root
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(s.opts.Dir, dir)
			}

			root, err = modpath.Resolve(dir)
			if err != nil {
				return nil, nil, err
			}
		}

		root = strings.TrimSuffix(root, "/...")
		rootPaths = append(rootPaths, root)

		if s.opts.RootsOnly {
			patterns = append(patterns, root)
		} else {
			patterns = append(patterns, root+"/...")
		}
	}

	return rootPaths, patterns, nil
}

// isDirRoot distinguishes filesystem roots from import paths and patterns.
func isDirRoot(root string) bool {
	return root == "." || root == ".." ||
		strings.HasPrefix(root, "./") || strings.HasPrefix(root, "../") ||
		filepath.IsAbs(root)
}

// resolveBase finds the base type in the loaded graph.
func resolveBase(pkgs []*packages.Package, base TypeRef) (types.Type, error) {
	matches := common.Filter(pkgs, func(p *packages.Package) bool {
		return p.PkgPath == base.PkgPath
	})

	pkg, ok := common.First(matches)
	if !ok {
		return nil, fmt.Errorf("%w: package %s not loaded", ErrNotClass, base.PkgPath)
	}

	obj := pkg.Types.Scope().Lookup(base.Name)
	if obj == nil {
		return nil, fmt.Errorf("%w: %s not found", ErrNotClass, base)
	}

	if !hierarchy.IsClass(obj) {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotClass, base, kindOf(obj))
	}

	return obj.Type(), nil
}

// walkConfig builds the per-call load and traversal configuration.
func (s *Scanner) walkConfig() walk.Config {
	return walk.Config{
		Dir:              s.opts.Dir,
		TolerateMissing:  s.opts.TolerateMissing,
		Logger:           s.logger,
		ExcludedPackages: s.excluded,
		ExcludePattern:   s.exclude,
	}
}
