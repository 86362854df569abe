package vobj

import "reflect"

// Equaler is the equality half of the contract. Equal must be an
// equivalence relation (reflexive, symmetric, transitive) over the values it
// accepts. other is deliberately untyped: the checker hands it same-state
// instances of parent and subclass types, not only the receiver's type.
type Equaler interface {
	Equal(other any) bool
}

// Hasher is the hash-contribution half of the contract. HashCode must return
// equal results for equal values and be stable across calls on an unmutated
// value.
type Hasher interface {
	HashCode() uint64
}

// Value is the full contract a verifiable value type implements.
type Value interface {
	Equaler
	Hasher
}

// Acceptor is the acceptance hook for hierarchies with redefined equality.
//
// A parent's Equal should call Accepts(other, receiver) before comparing
// state; a subclass that redefines equality overrides CanEqual to reject its
// parent, which keeps the broken substitutability symmetric.
type Acceptor interface {
	CanEqual(other any) bool
}

// Accepts applies other's CanEqual hook against self, defaulting to accept
// when other does not implement Acceptor.
func Accepts(other, self any) bool {
	if a, ok := other.(Acceptor); ok {
		return a.CanEqual(self)
	}
	return true
}

// ParentOf returns the type of t's first embedded struct field — its parent
// in the embedding hierarchy — or nil when t is a hierarchy root.
//
// Only value embedding is considered; embedded pointers and interfaces do
// not form a parent link.
func ParentOf(t reflect.Type) reflect.Type {
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			return f.Type
		}
	}
	return nil
}

// As unwraps v to a T, either directly or by descending v's embedding chain
// until a T is found. The second result reports success.
//
// This is how a well-behaved Equal implementation extracts the comparable
// state from a same-state subclass value.
func As[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	want := reflect.TypeFor[T]()
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	for rv.IsValid() && rv.Kind() == reflect.Struct {
		if rv.Type() == want {
			return rv.Interface().(T), true
		}
		idx := parentIndex(rv.Type())
		if idx < 0 {
			break
		}
		rv = rv.Field(idx)
	}
	return zero, false
}

// parentIndex returns the field index of t's parent link, or -1.
func parentIndex(t reflect.Type) int {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			return i
		}
	}
	return -1
}
