package shapes

import "github.com/eqlaw/eqlaw/vobj"

// Person is an open root designed for legitimate subclass redefinition: its
// equality defers to the other side's CanEqual before comparing state.
type Person struct {
	Name string
}

func (p Person) Equal(other any) bool {
	q, ok := vobj.As[Person](other)
	return ok && vobj.Accepts(other, p) && p.Name == q.Name
}

func (p Person) HashCode() uint64 {
	return vobj.HashOf(p.Name)
}

func (p Person) CanEqual(other any) bool {
	_, ok := vobj.As[Person](other)
	return ok
}

// Employee redefines equality incompatibly with Person, and overrides
// CanEqual so the break stays symmetric: a Person never equals an Employee,
// in either direction.
type Employee struct {
	Person
	Badge int
}

func (e Employee) Equal(other any) bool {
	q, ok := vobj.As[Employee](other)
	return ok && e == q
}

func (e Employee) HashCode() uint64 {
	return vobj.HashOf(e)
}

func (e Employee) CanEqual(other any) bool {
	_, ok := vobj.As[Employee](other)
	return ok
}

// LoyalEmployee claims to redefine equality but forgets to override
// CanEqual, so its parent still accepts it: an ineffective redefinition the
// checker must flag.
type LoyalEmployee struct {
	Person
	Badge int
}

func (e LoyalEmployee) Equal(other any) bool {
	q, ok := vobj.As[LoyalEmployee](other)
	return ok && e == q
}

func (e LoyalEmployee) HashCode() uint64 {
	return vobj.HashOf(e)
}

// GuardedPoint locks Equal down; supplying a redefined subclass for it is a
// redundant, contradictory configuration.
type GuardedPoint struct {
	X int
}

//eqlaw:final
func (p GuardedPoint) Equal(other any) bool {
	q, ok := vobj.As[GuardedPoint](other)
	return ok && p == q
}

//eqlaw:final
func (p GuardedPoint) HashCode() uint64 {
	return vobj.HashOf(p.X)
}

// GuardedPointSub exists only to be offered as a (redundant) redefined
// subclass of GuardedPoint.
type GuardedPointSub struct {
	GuardedPoint
}

// NoHashPoint falls outside the expected object model: it has an Equal but
// no hash contribution at all.
type NoHashPoint struct {
	X int
}

//eqlaw:final
func (p NoHashPoint) Equal(other any) bool {
	q, ok := vobj.As[NoHashPoint](other)
	return ok && p == q
}

// CachedPoint carries derived state excluded from equality and from example
// scrambling via the ignore annotation.
//
//eqlaw:final
type CachedPoint struct {
	X int

	//eqlaw:ignore
	Cache string
}

func (p CachedPoint) Equal(other any) bool {
	q, ok := vobj.As[CachedPoint](other)
	return ok && p.X == q.X
}

func (p CachedPoint) HashCode() uint64 {
	return vobj.HashOf(p.X)
}
