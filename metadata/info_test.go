package metadata_test

import (
	"reflect"
	"testing"

	"github.com/eqlaw/eqlaw/internal/marked"
	"github.com/eqlaw/eqlaw/metadata"
	"github.com/stretchr/testify/require"
)

// TestMethodIsFinal verifies the method-level finality directive round-trip.
func TestMethodIsFinal(t *testing.T) {
	info := metadata.NewInfo(reflect.TypeFor[marked.Sealed]())

	final, err := info.MethodIsFinal("Equal")
	require.NoError(t, err)
	require.True(t, final)

	final, err = info.MethodIsFinal("HashCode")
	require.NoError(t, err)
	require.True(t, final)

	open := metadata.NewInfo(reflect.TypeFor[marked.Open]())
	final, err = open.MethodIsFinal("Equal")
	require.NoError(t, err)
	require.False(t, final)
}

// TestMethodIsFinal_MissingMethod verifies a type outside the expected
// object model is a structural error.
func TestMethodIsFinal_MissingMethod(t *testing.T) {
	info := metadata.NewInfo(reflect.TypeFor[marked.Plain]())
	_, err := info.MethodIsFinal("HashCode")
	require.ErrorIs(t, err, metadata.ErrNoSuchMethod)
}

// TestTypeIsFinal verifies the type-level finality directive is absent on
// these fixtures; the hierarchy fixtures cover the positive case.
func TestTypeIsFinal(t *testing.T) {
	info := metadata.NewInfo(reflect.TypeFor[marked.Sealed]())
	final, err := info.TypeIsFinal()
	require.NoError(t, err)
	require.False(t, final)
}

// TestInfoSharesAccessor verifies annotation queries ride the same
// extraction as the finality facts.
func TestInfoSharesAccessor(t *testing.T) {
	info := metadata.NewInfo(reflect.TypeFor[marked.Frozen]())
	got, err := info.Accessor().TypeHas(metadata.Immutable)
	require.NoError(t, err)
	require.True(t, got)
}
