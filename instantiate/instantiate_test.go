package instantiate_test

import (
	"reflect"
	"testing"

	"github.com/eqlaw/eqlaw/instantiate"
	"github.com/stretchr/testify/require"
)

type inner struct {
	N int
}

type outer struct {
	inner
	S string
	F float64
	B bool
	P *int
	L []int
	M map[string]int
}

type declaredSub struct {
	outer
	Extra string
}

type hashed struct {
	V int
}

func (h hashed) HashCode() uint64 { return uint64(h.V) }

func mustFor(t *testing.T, typ reflect.Type, opts ...instantiate.Option) *instantiate.Instantiator {
	t.Helper()
	in, err := instantiate.For(typ, opts...)
	require.NoError(t, err)
	return in
}

// TestFor_NonStruct verifies only struct types are instantiable.
func TestFor_NonStruct(t *testing.T) {
	_, err := instantiate.For(reflect.TypeFor[int]())
	require.ErrorIs(t, err, instantiate.ErrUnsupportedType)
	_, err = instantiate.For(nil)
	require.ErrorIs(t, err, instantiate.ErrUnsupportedType)
}

// TestInstantiate verifies a fresh instance is all-default.
func TestInstantiate(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[outer]())
	v := in.Instantiate()
	require.Equal(t, outer{}, v)
}

// TestScramble verifies every settable field moves away from its default,
// including inherited state.
func TestScramble(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[outer]())
	v := in.Scramble(in.Instantiate()).(outer)

	require.NotZero(t, v.N, "embedded parent field must be scrambled")
	require.NotEmpty(t, v.S)
	require.NotZero(t, v.F)
	require.True(t, v.B)
	require.NotNil(t, v.P)
	require.NotZero(t, *v.P)
	require.Len(t, v.L, 1)
	require.Len(t, v.M, 1)
}

// TestScramble_Deterministic verifies two independent instantiators produce
// identical sequences.
func TestScramble_Deterministic(t *testing.T) {
	a := mustFor(t, reflect.TypeFor[outer]())
	b := mustFor(t, reflect.TypeFor[outer]())
	va := a.Scramble(a.Instantiate()).(outer)
	vb := b.Scramble(b.Instantiate()).(outer)

	require.Equal(t, va.N, vb.N)
	require.Equal(t, va.S, vb.S)
	require.Equal(t, va.F, vb.F)
	require.Equal(t, *va.P, *vb.P)
	require.Equal(t, va.L, vb.L)
}

// TestScramble_Diverges verifies a second scramble keeps moving.
func TestScramble_Diverges(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[outer]())
	once := in.Scramble(in.Instantiate()).(outer)
	twice := in.Scramble(once).(outer)

	require.NotEqual(t, once.N, twice.N)
	require.NotEqual(t, once.S, twice.S)
}

// TestShallowScramble verifies the embedded parent's state is untouched
// while the type's own fields move.
func TestShallowScramble(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[outer]())
	base := in.Scramble(in.Instantiate()).(outer)
	shallow := in.ShallowScramble(base).(outer)

	require.Equal(t, base.N, shallow.N, "inherited field must be preserved")
	require.NotEqual(t, base.S, shallow.S)
}

// TestScramble_IgnoredFields verifies ignored fields are never perturbed.
func TestScramble_IgnoredFields(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[outer](), instantiate.WithIgnoredFields("S"))
	v := in.Scramble(in.Instantiate()).(outer)

	require.Empty(t, v.S)
	require.NotZero(t, v.N)
}

// TestCloneFrom covers same-type and subclass-to-parent cloning.
func TestCloneFrom(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[outer]())
	src := in.Scramble(in.Instantiate()).(outer)

	same, err := in.CloneFrom(src)
	require.NoError(t, err)
	require.Equal(t, src, same)

	// Extract the embedded parent state from a subclass value.
	parentIn := mustFor(t, reflect.TypeFor[inner]())
	up, err := parentIn.CloneFrom(src)
	require.NoError(t, err)
	require.Equal(t, inner{N: src.N}, up)
}

// TestCloneFrom_Unrelated verifies unrelated types cannot be cloned across.
func TestCloneFrom_Unrelated(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[outer]())
	_, err := in.CloneFrom(hashed{V: 1})
	require.ErrorIs(t, err, instantiate.ErrNotRelated)
	_, err = in.CloneFrom(nil)
	require.ErrorIs(t, err, instantiate.ErrNotRelated)
}

// TestCloneToSubclass_Declared clones into a caller-declared subclass type.
func TestCloneToSubclass_Declared(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[outer]())
	src := in.Scramble(in.Instantiate()).(outer)

	got, err := in.CloneToSubclass(src, reflect.TypeFor[declaredSub]())
	require.NoError(t, err)
	sub, ok := got.(declaredSub)
	require.True(t, ok)
	require.Equal(t, src, sub.outer)
	require.Empty(t, sub.Extra, "the subclass's own fields stay default")
}

// TestCloneToSubclass_Synthesized verifies the default factory produces a
// trivial subclass that embeds the source type and keeps its method set.
func TestCloneToSubclass_Synthesized(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[hashed]())
	got, err := in.CloneToSubclass(hashed{V: 7}, nil)
	require.NoError(t, err)

	rt := reflect.TypeOf(got)
	require.Equal(t, reflect.Struct, rt.Kind())
	require.Equal(t, 1, rt.NumField())
	require.True(t, rt.Field(0).Anonymous)

	// The parent's methods are carried over unchanged.
	hv, ok := got.(interface{ HashCode() uint64 })
	require.True(t, ok, "synthesized subclass must keep the parent's method set")
	require.Equal(t, uint64(7), hv.HashCode())
}

// TestCloneToSubclass_NotSubclass rejects targets that do not embed the type.
func TestCloneToSubclass_NotSubclass(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[outer]())
	src := in.Instantiate().(outer)
	_, err := in.CloneToSubclass(src, reflect.TypeFor[hashed]())
	require.ErrorIs(t, err, instantiate.ErrNotSubclass)
}

// TestForType verifies derived instantiators share configuration.
func TestForType(t *testing.T) {
	in := mustFor(t, reflect.TypeFor[outer](), instantiate.WithIgnoredFields("N"))
	derived, err := in.ForType(reflect.TypeFor[inner]())
	require.NoError(t, err)

	v := derived.Scramble(derived.Instantiate()).(inner)
	require.Zero(t, v.N, "ignored fields carry over to derived instantiators")
}
