// Package predicate provides ready-made member predicates and combinators
// for pluginscan.GetMembers.
package predicate

import (
	"go/types"

	"pluginscan"
	"pluginscan/internal/hierarchy"
)

// Everything accepts every member. Useful for inventory dumps: the result is
// every top-level declaration of every visited package, constants included.
func Everything(pluginscan.Member) bool { return true }

// IsFunc accepts function declarations.
func IsFunc(m pluginscan.Member) bool {
	_, ok := m.Obj.(*types.Func)
	return ok
}

// IsClass accepts named struct and interface types.
func IsClass(m pluginscan.Member) bool {
	return hierarchy.IsClass(m.Obj)
}

// IsConst accepts constant declarations.
func IsConst(m pluginscan.Member) bool {
	_, ok := m.Obj.(*types.Const)
	return ok
}

// IsVar accepts variable declarations.
func IsVar(m pluginscan.Member) bool {
	_, ok := m.Obj.(*types.Var)
	return ok
}

// Exported accepts exported members.
func Exported(m pluginscan.Member) bool {
	return m.Obj != nil && m.Obj.Exported()
}

// InPackage accepts members declared in the given package.
func InPackage(pkgPath string) pluginscan.Predicate {
	return func(m pluginscan.Member) bool {
		return m.Ref.PkgPath == pkgPath
	}
}

// And accepts members matching every given predicate.
func And(preds ...pluginscan.Predicate) pluginscan.Predicate {
	return func(m pluginscan.Member) bool {
		for _, p := range preds {
			if !p(m) {
				return false
			}
		}

		return true
	}
}

// Or accepts members matching at least one given predicate.
func Or(preds ...pluginscan.Predicate) pluginscan.Predicate {
	return func(m pluginscan.Member) bool {
		for _, p := range preds {
			if p(m) {
				return true
			}
		}

		return false
	}
}

// Not inverts a predicate.
func Not(pred pluginscan.Predicate) pluginscan.Predicate {
	return func(m pluginscan.Member) bool {
		return !pred(m)
	}
}
