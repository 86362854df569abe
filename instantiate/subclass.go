package instantiate

import (
	"fmt"
	"reflect"
)

// SubclassFactory synthesizes a trivial subclass type — one that embeds the
// given type and redefines nothing — for substitutability checks.
//
// The factory is an injectable strategy: the default synthesizes types at
// runtime, and callers on targets where that is unavailable can supply
// pre-declared subclass types instead.
type SubclassFactory interface {
	TrivialSubclassOf(t reflect.Type) (reflect.Type, error)
}

// structOfFactory builds struct{ T } via reflect.StructOf.
//
// A single embedded field at offset zero is the one shape for which StructOf
// carries the embedded type's method set over, so the synthesized subclass
// keeps the parent's Equal/HashCode behavior unchanged.
type structOfFactory struct{}

func (structOfFactory) TrivialSubclassOf(t reflect.Type) (sub reflect.Type, err error) {
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return nil, fmt.Errorf("%w: %v", ErrSubclassUnsupported, t)
	}
	defer func() {
		if r := recover(); r != nil {
			sub, err = nil, fmt.Errorf("%w: %s: %v", ErrSubclassUnsupported, t, r)
		}
	}()
	return reflect.StructOf([]reflect.StructField{{
		Name:      t.Name(),
		Type:      t,
		Anonymous: true,
	}}), nil
}
