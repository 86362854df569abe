package metadata

import (
	"fmt"
	"reflect"
)

// Info exposes the finality facts about a type that the hierarchy checker
// consumes: whether the type itself, or one of its equality methods, is
// declared non-overridable via the Final annotation.
type Info struct {
	typ reflect.Type
	acc *Accessor
}

// NewInfo returns the finality view of t, sharing one lazily-built accessor.
func NewInfo(t reflect.Type) *Info {
	return &Info{typ: t, acc: NewAccessor(t)}
}

// Accessor returns the underlying annotation accessor, so a caller can make
// annotation queries without re-reading the type's source.
func (i *Info) Accessor() *Accessor { return i.acc }

// TypeIsFinal reports whether the type is declared non-extensible.
func (i *Info) TypeIsFinal() (bool, error) {
	return i.acc.TypeHas(Final)
}

// MethodIsFinal reports whether the named method is declared non-overridable.
// A method absent from the type's method set is ErrNoSuchMethod: the type
// does not conform to the expected object model, which is a structural
// defect rather than a contract violation.
func (i *Info) MethodIsFinal(name string) (bool, error) {
	if _, ok := i.typ.MethodByName(name); !ok {
		return false, fmt.Errorf("%w: %s has no method %s", ErrNoSuchMethod, i.typ, name)
	}
	return i.acc.MethodHas(name, Final)
}
