package vobj_test

import (
	"reflect"
	"testing"

	"github.com/eqlaw/eqlaw/vobj"
	"github.com/stretchr/testify/require"
)

type base struct{ N int }

type middle struct {
	base
	M int
}

type top struct {
	middle
	T int
}

type flat struct{ X int }

// TestParentOf verifies the embedding chain is reported one level at a time.
func TestParentOf(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"TopToMiddle", reflect.TypeFor[top](), reflect.TypeFor[middle]()},
		{"MiddleToBase", reflect.TypeFor[middle](), reflect.TypeFor[base]()},
		{"BaseIsRoot", reflect.TypeFor[base](), nil},
		{"FlatIsRoot", reflect.TypeFor[flat](), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, vobj.ParentOf(tc.typ))
		})
	}
}

// TestParentOf_NonStruct verifies non-struct kinds have no parent.
func TestParentOf_NonStruct(t *testing.T) {
	require.Nil(t, vobj.ParentOf(reflect.TypeFor[int]()))
	require.Nil(t, vobj.ParentOf(nil))
}

// TestAs_Direct verifies the plain type assertion path.
func TestAs_Direct(t *testing.T) {
	b, ok := vobj.As[base](base{N: 7})
	require.True(t, ok)
	require.Equal(t, 7, b.N)
}

// TestAs_Embedded verifies unwrapping through one and two embedding levels.
func TestAs_Embedded(t *testing.T) {
	v := top{middle: middle{base: base{N: 1}, M: 2}, T: 3}

	m, ok := vobj.As[middle](v)
	require.True(t, ok)
	require.Equal(t, 2, m.M)

	b, ok := vobj.As[base](v)
	require.True(t, ok)
	require.Equal(t, 1, b.N)
}

// TestAs_Pointer verifies a pointer is dereferenced before unwrapping.
func TestAs_Pointer(t *testing.T) {
	v := &middle{base: base{N: 4}}
	b, ok := vobj.As[base](v)
	require.True(t, ok)
	require.Equal(t, 4, b.N)
}

// TestAs_Unrelated verifies unrelated types do not unwrap.
func TestAs_Unrelated(t *testing.T) {
	_, ok := vobj.As[base](flat{X: 9})
	require.False(t, ok)

	_, ok = vobj.As[top](middle{})
	require.False(t, ok)
}

type picky struct{}

func (p picky) CanEqual(other any) bool { _, ok := other.(picky); return ok }

// TestAccepts covers the CanEqual default and override paths.
func TestAccepts(t *testing.T) {
	// No Acceptor: accept by default.
	require.True(t, vobj.Accepts(flat{}, flat{}))
	// Acceptor present: its verdict wins.
	require.True(t, vobj.Accepts(picky{}, picky{}))
	require.False(t, vobj.Accepts(picky{}, flat{}))
}

// TestHashOf verifies equal state hashes equal and distinct state does not.
func TestHashOf(t *testing.T) {
	a := middle{base: base{N: 1}, M: 2}
	b := middle{base: base{N: 1}, M: 2}
	c := middle{base: base{N: 1}, M: 3}

	require.Equal(t, vobj.HashOf(a), vobj.HashOf(b))
	require.NotEqual(t, vobj.HashOf(a), vobj.HashOf(c))
	// Stable across calls.
	require.Equal(t, vobj.HashOf(a), vobj.HashOf(a))
}
