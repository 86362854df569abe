package instantiate

import (
	"fmt"
	"reflect"
)

// CloneFrom returns an instance of the instantiator's type whose field state
// is copied from src. src may be of the type itself, or of any type that
// embeds it (cloning "up" the hierarchy extracts the embedded state).
func (in *Instantiator) CloneFrom(src any) (any, error) {
	sv := reflect.ValueOf(src)
	if !sv.IsValid() {
		return nil, fmt.Errorf("%w: nil source", ErrNotRelated)
	}
	if sv.Kind() == reflect.Pointer {
		sv = sv.Elem()
	}
	if ev, ok := embeddedValue(sv, in.typ); ok {
		dst := reflect.New(in.typ).Elem()
		dst.Set(ev)
		return dst.Interface(), nil
	}
	return nil, fmt.Errorf("%w: cannot clone %s into %s", ErrNotRelated, sv.Type(), in.typ)
}

// CloneToSubclass returns an instance of subclass carrying src's state in
// its embedded parent. A nil subclass asks the factory for a synthesized
// trivial subclass. The subclass must embed the instantiator's type
// directly.
func (in *Instantiator) CloneToSubclass(src any, subclass reflect.Type) (any, error) {
	sv := reflect.ValueOf(src)
	if !sv.IsValid() || sv.Type() != in.typ {
		return nil, fmt.Errorf("%w: source must be %s", ErrNotRelated, in.typ)
	}
	if subclass == nil {
		sub, err := in.subclass.TrivialSubclassOf(in.typ)
		if err != nil {
			return nil, err
		}
		subclass = sub
	}
	if subclass.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotSubclass, subclass)
	}
	idx := -1
	for i := 0; i < subclass.NumField(); i++ {
		f := subclass.Field(i)
		if f.Anonymous && f.Type == in.typ {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s does not embed %s", ErrNotSubclass, subclass, in.typ)
	}
	out := reflect.New(subclass).Elem()
	field := out.Field(idx)
	if !field.CanSet() {
		return nil, fmt.Errorf("%w: %s embeds %s unexported", ErrNotSubclass, subclass, in.typ)
	}
	field.Set(sv)
	return out.Interface(), nil
}

// embeddedValue descends rv's embedding chain until a value of type target
// is found.
func embeddedValue(rv reflect.Value, target reflect.Type) (reflect.Value, bool) {
	for rv.IsValid() && rv.Kind() == reflect.Struct {
		if rv.Type() == target {
			return rv, true
		}
		t := rv.Type()
		next := -1
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				next = i
				break
			}
		}
		if next < 0 {
			break
		}
		rv = rv.Field(next)
	}
	return reflect.Value{}, false
}
