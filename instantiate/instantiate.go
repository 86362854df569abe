package instantiate

import (
	"fmt"
	"reflect"

	set "github.com/hashicorp/go-set/v3"

	"github.com/eqlaw/eqlaw/vobj"
)

// Instantiator builds and mutates instances of one fixed struct type.
//
// It implements vobj.Instantiator. An Instantiator is not safe for
// concurrent use: the scramble sequence is a single mutable counter. Each
// verification run owns its own instance.
type Instantiator struct {
	typ      reflect.Type
	seq      uint64
	ignored  *set.Set[string]
	subclass SubclassFactory
}

// Option configures an Instantiator.
type Option func(*Instantiator)

// WithIgnoredFields names fields that scrambling must never touch, for
// example fields excluded from equality by annotation.
func WithIgnoredFields(names ...string) Option {
	return func(in *Instantiator) {
		in.ignored.InsertSlice(names)
	}
}

// WithSubclassFactory replaces the trivial-subclass synthesis strategy.
func WithSubclassFactory(f SubclassFactory) Option {
	return func(in *Instantiator) {
		in.subclass = f
	}
}

// For returns an Instantiator for t. Only struct types are supported.
func For(t reflect.Type, opts ...Option) (*Instantiator, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
	}
	in := &Instantiator{
		typ:      t,
		ignored:  set.New[string](0),
		subclass: structOfFactory{},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in, nil
}

// Type returns the fixed type this instantiator produces.
func (in *Instantiator) Type() reflect.Type { return in.typ }

// Instantiate returns a fresh, all-default instance of the type.
func (in *Instantiator) Instantiate() any {
	return reflect.New(in.typ).Elem().Interface()
}

// ForType derives an instantiator for another type, sharing the ignored-field
// set and subclass strategy but with its own scramble sequence.
func (in *Instantiator) ForType(t reflect.Type) (vobj.Instantiator, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
	}
	return &Instantiator{
		typ:      t,
		ignored:  in.ignored,
		subclass: in.subclass,
	}, nil
}
