// Package marked holds annotated fixture types for metadata extraction
// tests. The directive comments on these declarations are the data under
// test; do not reformat them casually.
package marked

import "github.com/eqlaw/eqlaw/vobj"

// Frozen is a type-level annotated fixture.
//
//eqlaw:immutable
type Frozen struct {
	ID int
}

// LegacyFrozen is annotated with the pre-rename directive prefix, matched
// through the dotted legacy alias.
//
//vo:immutable
type LegacyFrozen struct {
	ID int
}

// Versioned carries an argumented descriptor; the substring rule must still
// match it.
//
//eqlaw:immutable since=1.2
type Versioned struct {
	ID int
}

// Plain carries no directives anywhere.
type Plain struct {
	ID int
}

// Account exercises field-level directives in both placements.
type Account struct {
	ID int

	// Cache is derived state, excluded from equality.
	//
	//eqlaw:ignore
	Cache string

	Owner string //eqlaw:nonnil
}

// AncestorBase carries a type annotation and an annotated field, both of
// which a derived type inherits or shadows.
//
//eqlaw:polymorphic
type AncestorBase struct {
	//eqlaw:ignore
	Note string

	Core int
}

// Derived embeds AncestorBase and shadows Note with an unannotated field.
type Derived struct {
	AncestorBase

	Note string
}

// Sealed declares both equality methods non-overridable.
type Sealed struct {
	V int
}

//eqlaw:final
func (s Sealed) Equal(other any) bool {
	o, ok := vobj.As[Sealed](other)
	return ok && s.V == o.V
}

//eqlaw:final
func (s Sealed) HashCode() uint64 {
	return vobj.HashOf(s.V)
}

// Open declares the same methods with nothing locked down.
type Open struct {
	V int
}

func (o Open) Equal(other any) bool {
	q, ok := vobj.As[Open](other)
	return ok && o.V == q.V
}

func (o Open) HashCode() uint64 {
	return vobj.HashOf(o.V)
}
