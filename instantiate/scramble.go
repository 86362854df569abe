package instantiate

import (
	"fmt"
	"reflect"
)

// Scramble returns a copy of v with every settable field, including
// inherited ones, advanced to a new distinct value.
func (in *Instantiator) Scramble(v any) any {
	rv := copyOf(v)
	in.scrambleStruct(rv, false)
	return rv.Interface()
}

// ShallowScramble returns a copy of v with only the type's own declared
// fields advanced; the embedded parent's state is left untouched.
func (in *Instantiator) ShallowScramble(v any) any {
	rv := copyOf(v)
	in.scrambleStruct(rv, true)
	return rv.Interface()
}

// copyOf returns an addressable copy of v.
func copyOf(v any) reflect.Value {
	sv := reflect.ValueOf(v)
	rv := reflect.New(sv.Type()).Elem()
	rv.Set(sv)
	return rv
}

// scrambleStruct perturbs rv's fields in place. Embedded parents are
// recursed into unless shallow is set; unexported and ignored fields are
// skipped.
func (in *Instantiator) scrambleStruct(rv reflect.Value, shallow bool) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		f := rv.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if !shallow {
				in.scrambleStruct(f, false)
			}
			continue
		}
		if !f.CanSet() || in.ignored.Contains(sf.Name) {
			continue
		}
		if nv, ok := in.nextValue(sf.Type, f); ok {
			f.Set(nv)
		}
	}
}

// nextValue produces a new value of type t, distinct from current, from the
// instantiator's monotonic sequence. The second result is false for kinds
// that cannot be synthesized generically (interfaces, channels, funcs).
func (in *Instantiator) nextValue(t reflect.Type, current reflect.Value) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.Bool:
		return reflect.ValueOf(!current.Bool()).Convert(t), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		in.seq++
		return reflect.ValueOf(int64(in.seq)).Convert(t), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		in.seq++
		return reflect.ValueOf(in.seq).Convert(t), true
	case reflect.Float32, reflect.Float64:
		in.seq++
		return reflect.ValueOf(float64(in.seq) + 0.5).Convert(t), true
	case reflect.Complex64, reflect.Complex128:
		in.seq++
		return reflect.ValueOf(complex(float64(in.seq), 0.5)).Convert(t), true
	case reflect.String:
		in.seq++
		return reflect.ValueOf(fmt.Sprintf("v%d", in.seq)).Convert(t), true
	case reflect.Slice:
		elem, ok := in.nextValue(t.Elem(), reflect.Zero(t.Elem()))
		if !ok {
			return reflect.Value{}, false
		}
		s := reflect.MakeSlice(t, 0, 1)
		return reflect.Append(s, elem), true
	case reflect.Map:
		key, okK := in.nextValue(t.Key(), reflect.Zero(t.Key()))
		val, okV := in.nextValue(t.Elem(), reflect.Zero(t.Elem()))
		if !okK || !okV {
			return reflect.Value{}, false
		}
		m := reflect.MakeMapWithSize(t, 1)
		m.SetMapIndex(key, val)
		return m, true
	case reflect.Pointer:
		p := reflect.New(t.Elem())
		if ev, ok := in.nextValue(t.Elem(), p.Elem()); ok {
			p.Elem().Set(ev)
		}
		return p, true
	case reflect.Struct:
		nv := reflect.New(t).Elem()
		nv.Set(current)
		in.scrambleStruct(nv, false)
		return nv, true
	case reflect.Array:
		nv := reflect.New(t).Elem()
		nv.Set(current)
		for i := 0; i < t.Len(); i++ {
			if ev, ok := in.nextValue(t.Elem(), nv.Index(i)); ok {
				nv.Index(i).Set(ev)
			}
		}
		return nv, true
	default:
		return reflect.Value{}, false
	}
}
