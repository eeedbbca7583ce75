package pluginscan

import (
	"go/types"
	"sort"
	"strings"

	"pluginscan/internal/common"
)

// TypeRef uniquely identifies a top-level declaration by its package path and name.
type TypeRef struct {
	PkgPath string // e.g., "pluginscan/plugins/codec"
	Name    string // e.g., "JSONCodec"
}

// String returns a human-readable representation of the TypeRef.
func (r TypeRef) String() string {
	if r.PkgPath == "" {
		return r.Name
	}

	return r.PkgPath + "." + r.Name
}

// Short returns the reference with the package path collapsed to its alias.
func (r TypeRef) Short() string {
	if r.PkgPath == "" {
		return r.Name
	}

	return common.PkgAlias(r.PkgPath) + "." + r.Name
}

// MemberKind classifies a top-level declaration.
type MemberKind int

const (
	MemberKindUnknown MemberKind = iota
	MemberKindType               // named type declaration
	MemberKindFunc               // function declaration
	MemberKindConst              // constant declaration
	MemberKindVar                // variable declaration
)

// String returns a human-readable representation of the MemberKind.
func (k MemberKind) String() string {
	switch k {
	case MemberKindType:
		return "type"
	case MemberKindFunc:
		return "func"
	case MemberKindConst:
		return "const"
	case MemberKindVar:
		return "var"
	default:
		return common.UnknownStr
	}
}

// Member is one top-level binding of a visited package.
type Member struct {
	Ref  TypeRef      // Unique identifier within the loaded graph
	Kind MemberKind   // Declaration kind
	Obj  types.Object // The original go/types object
}

// memberOf builds a Member from a scope object.
func memberOf(pkgPath string, obj types.Object) Member {
	return Member{
		Ref:  TypeRef{PkgPath: pkgPath, Name: obj.Name()},
		Kind: kindOf(obj),
		Obj:  obj,
	}
}

// kindOf classifies a go/types object.
func kindOf(obj types.Object) MemberKind {
	switch obj.(type) {
	case *types.TypeName:
		return MemberKindType
	case *types.Func:
		return MemberKindFunc
	case *types.Const:
		return MemberKindConst
	case *types.Var:
		return MemberKindVar
	default:
		return MemberKindUnknown
	}
}

// Predicate tests one member for inclusion. It must be total: it is applied
// to every top-level declaration of every visited package, whatever its kind,
// and must not panic.
type Predicate func(Member) bool

// MemberSet is a deduplicated set of members. Top-level names are unique per
// package, so the (package path, name) pair is value identity: the same
// member reached through several import paths is stored once.
type MemberSet map[TypeRef]Member

// NewMemberSet creates an empty MemberSet.
func NewMemberSet() MemberSet {
	return make(MemberSet)
}

// Add inserts a member; an existing member with the same ref is kept.
func (s MemberSet) Add(m Member) {
	if _, ok := s[m.Ref]; !ok {
		s[m.Ref] = m
	}
}

// Contains reports whether the set holds a member with the given ref.
func (s MemberSet) Contains(ref TypeRef) bool {
	_, ok := s[ref]
	return ok
}

// Len returns the number of members in the set.
func (s MemberSet) Len() int {
	return len(s)
}

// Members returns the members in unspecified order.
func (s MemberSet) Members() []Member {
	out := make([]Member, 0, len(s))
	for _, m := range s {
		out = append(out, m)
	}

	return out
}

// Refs returns all refs sorted by package path, then name.
func (s MemberSet) Refs() []TypeRef {
	out := make([]TypeRef, 0, len(s))
	for ref := range s {
		out = append(out, ref)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].PkgPath != out[j].PkgPath {
			return out[i].PkgPath < out[j].PkgPath
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Union returns a new set holding the members of both sets.
func (s MemberSet) Union(other MemberSet) MemberSet {
	out := NewMemberSet()
	for _, m := range s {
		out.Add(m)
	}

	for _, m := range other {
		out.Add(m)
	}

	return out
}

// Equal reports whether both sets have identical membership.
func (s MemberSet) Equal(other MemberSet) bool {
	if len(s) != len(other) {
		return false
	}

	for ref := range s {
		if !other.Contains(ref) {
			return false
		}
	}

	return true
}

// String returns the sorted short refs, for diagnostics and debug dumps.
func (s MemberSet) String() string {
	refs := s.Refs()
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		parts = append(parts, ref.Short())
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
