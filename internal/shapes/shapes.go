// Package shapes holds value-type fixtures for hierarchy verification
// tests: well-behaved hierarchies, and types that break exactly one law each
// (symmetry, transitivity, hash consistency, substitutability). The
// directive comments are part of the fixtures; do not reformat them.
package shapes

import "github.com/eqlaw/eqlaw/vobj"

// Point is an open hierarchy root: equality accepts same-state descendants
// through the CanEqual hook, and nothing is locked down.
type Point struct {
	X, Y int
}

func (p Point) Equal(other any) bool {
	q, ok := vobj.As[Point](other)
	return ok && vobj.Accepts(other, p) && p == q
}

func (p Point) HashCode() uint64 {
	return vobj.HashOf([2]int{p.X, p.Y})
}

func (p Point) CanEqual(other any) bool {
	_, ok := vobj.As[Point](other)
	return ok
}

// FinalPoint is the canonical single-field value type: non-extensible, with
// standard Equal/HashCode. It must pass every hierarchy check.
//
//eqlaw:final
type FinalPoint struct {
	X int
}

func (p FinalPoint) Equal(other any) bool {
	q, ok := vobj.As[FinalPoint](other)
	return ok && p == q
}

func (p FinalPoint) HashCode() uint64 {
	return vobj.HashOf(p.X)
}

// SealedPoint is extensible, but locks both contract methods down instead.
type SealedPoint struct {
	X int
}

//eqlaw:final
func (p SealedPoint) Equal(other any) bool {
	q, ok := vobj.As[SealedPoint](other)
	return ok && p == q
}

//eqlaw:final
func (p SealedPoint) HashCode() uint64 {
	return vobj.HashOf(p.X)
}

// ColorPoint inherits Point's equality untouched: same-state instances are
// equal across the whole hierarchy. Polymorphic by declaration, so the
// façade applies the weak inheritance check automatically.
//
//eqlaw:polymorphic
type ColorPoint struct {
	Point
	Color string
}

// StrictColorPoint redefines its parent's equality on purpose: color is
// significant, and plain Points never compare equal. Verified with the
// RedefinedSuperclass relaxation.
type StrictColorPoint struct {
	Point
	Color string
}

//eqlaw:final
func (p StrictColorPoint) Equal(other any) bool {
	q, ok := vobj.As[StrictColorPoint](other)
	return ok && p == q
}

//eqlaw:final
func (p StrictColorPoint) HashCode() uint64 {
	return vobj.HashOf(p)
}

// SnobPoint rejects its parent while the parent still accepts it: the
// superclass symmetry law must flag it.
type SnobPoint struct {
	Point
	Grade int
}

func (p SnobPoint) Equal(other any) bool {
	q, ok := vobj.As[SnobPoint](other)
	return ok && p == q
}

func (p SnobPoint) HashCode() uint64 {
	return vobj.HashOf(p)
}

// HalfOpenPoint compares its own fields against its own kind but falls back
// to parent-state comparison for plain Points. Equality with a parent clone
// then fails to propagate to a shallow-scrambled sibling: the transitivity
// law must flag it.
type HalfOpenPoint struct {
	Point
	Shade string
}

func (p HalfOpenPoint) Equal(other any) bool {
	if q, ok := vobj.As[HalfOpenPoint](other); ok {
		return p == q
	}
	q, ok := vobj.As[Point](other)
	return ok && p.Point == q
}

func (p HalfOpenPoint) HashCode() uint64 {
	return vobj.HashOf(p)
}

// DriftPoint inherits Point's equality but redeclares hashing over its whole
// state: equal instances one level apart hash differently, so the hash
// consistency law must flag it.
type DriftPoint struct {
	Point
	Salt int
}

func (p DriftPoint) HashCode() uint64 {
	return vobj.HashOf(p)
}

// ExactPoint requires the exact dynamic type: a trivial subclass with equal
// fields is rejected, so the substitutability law must flag it.
type ExactPoint struct {
	X int
}

func (p ExactPoint) Equal(other any) bool {
	q, ok := other.(ExactPoint)
	return ok && p == q
}

func (p ExactPoint) HashCode() uint64 {
	return vobj.HashOf(p.X)
}
