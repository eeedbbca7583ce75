// Package hierarchy answers ancestry questions about named types.
//
// A "class" here is a named type whose underlying type is a struct or an
// interface. Descent is the Go rendering of subclassing: implementing a base
// interface (by value or pointer receiver), or embedding a base struct
// directly or through any chain of embedded fields.
package hierarchy

import "go/types"

// IsClass reports whether obj declares a named struct or interface type.
func IsClass(obj types.Object) bool {
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return false
	}

	switch tn.Type().Underlying().(type) {
	case *types.Struct, *types.Interface:
		return true
	default:
		return false
	}
}

// IsSubclass reports whether t strictly descends from base: the base type
// itself never counts. For an interface base, t descends when t or *t
// implements it. For a struct base, t descends when its underlying struct
// embeds base directly or transitively.
func IsSubclass(t *types.Named, base types.Type) bool {
	if t == nil || types.Identical(t, base) {
		return false
	}

	switch b := base.Underlying().(type) {
	case *types.Interface:
		return types.Implements(t, b) || types.Implements(types.NewPointer(t), b)
	case *types.Struct:
		return embedsStruct(t, base, make(map[*types.Named]bool))
	default:
		return false
	}
}

// embedsStruct walks embedded fields looking for base. The seen set guards
// against recursive embedding through pointer fields.
func embedsStruct(t *types.Named, base types.Type, seen map[*types.Named]bool) bool {
	if seen[t] {
		return false
	}
	seen[t] = true

	st, ok := t.Underlying().(*types.Struct)
	if !ok {
		return false
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Embedded() {
			continue
		}

		ft := field.Type()
		if ptr, ok := ft.(*types.Pointer); ok {
			ft = ptr.Elem()
		}

		if types.Identical(ft, base) {
			return true
		}

		if named, ok := ft.(*types.Named); ok && embedsStruct(named, base, seen) {
			return true
		}
	}

	return false
}
