package hierarchy

import (
	set "github.com/hashicorp/go-set/v3"
)

// Feature toggles one specific relaxation of the hierarchy contract. The
// enumeration is closed: configuration invariants over it are validated once,
// eagerly, when a Checker is constructed.
type Feature uint8

const (
	// WeakInheritanceCheck drops the requirement that Equal and HashCode be
	// declared non-overridable, for types that intentionally support
	// polymorphic equality. Mutually exclusive with a redefined subclass.
	WeakInheritanceCheck Feature = iota
	// RedefinedSuperclass declares that the type's parent intentionally has
	// different equality semantics: the superclass check then requires the
	// reference and its same-state parent clone to be unequal.
	RedefinedSuperclass
)

// String returns the feature's name.
func (f Feature) String() string {
	switch f {
	case WeakInheritanceCheck:
		return "WeakInheritanceCheck"
	case RedefinedSuperclass:
		return "RedefinedSuperclass"
	default:
		return "Feature(?)"
	}
}

// Features builds a feature set from the given features.
func Features(fs ...Feature) *set.Set[Feature] {
	s := set.New[Feature](len(fs))
	s.InsertSlice(fs)
	return s
}

// TypeInfo supplies the declaration-time finality facts the checker needs:
// whether the type is non-extensible and whether a named method is declared
// non-overridable. metadata.Info is the production implementation; the
// checker deliberately consumes only this narrow view.
type TypeInfo interface {
	TypeIsFinal() (bool, error)
	// MethodIsFinal fails when the type has no such method at all — the
	// type then falls outside the expected object model.
	MethodIsFinal(name string) (bool, error)
}

// Method names of the verified contract surface.
const (
	equalMethod = "Equal"
	hashMethod  = "HashCode"
)
