package vobj

import "reflect"

// Instantiator is the construction/mutation collaborator the checker drives.
//
// Implementations produce structurally valid instances of one fixed type,
// perturb their field state deterministically ("scrambling"), and clone
// state across one hierarchy level in either direction. Package instantiate
// provides the reflective implementation; tests may substitute their own.
type Instantiator interface {
	// Type returns the fixed type this instantiator produces.
	Type() reflect.Type

	// Instantiate returns a fresh, all-default instance.
	Instantiate() any

	// Scramble returns a copy of v with every mutable field, including
	// inherited ones, advanced to a new distinct value. Repeated calls keep
	// advancing: scramble(scramble(x)) differs from scramble(x).
	Scramble(v any) any

	// ShallowScramble is Scramble restricted to the type's own declared
	// fields; the embedded parent's state is left untouched.
	ShallowScramble(v any) any

	// CloneFrom returns an instance of Type() whose field state is copied
	// from src. src may be of Type() itself or of a type that embeds it
	// (cloning "up" the hierarchy); anything else is ErrNotRelated.
	CloneFrom(src any) (any, error)

	// CloneToSubclass returns an instance of subclass whose inherited state
	// is copied from src. A nil subclass requests a synthesized trivial
	// subclass with no redefined behavior.
	CloneToSubclass(src any, subclass reflect.Type) (any, error)

	// ForType derives an instantiator for another type in the same run,
	// typically Type()'s parent for superclass cloning.
	ForType(t reflect.Type) (Instantiator, error)
}
