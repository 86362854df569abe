package eqlaw_test

import (
	"testing"

	"github.com/eqlaw/eqlaw"
	"github.com/eqlaw/eqlaw/hierarchy"
	"github.com/eqlaw/eqlaw/instantiate"
	"github.com/eqlaw/eqlaw/internal/shapes"
	"github.com/eqlaw/eqlaw/metadata"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Well-behaved types
//----------------------------------------------------------------------------//

func TestVerify_WellBehaved(t *testing.T) {
	cases := []struct {
		name   string
		verify func() error
	}{
		{"FinalValueType", func() error { return eqlaw.Verify[shapes.FinalPoint]() }},
		{"FinalMethods", func() error { return eqlaw.Verify[shapes.SealedPoint]() }},
		{"IgnoredDerivedField", func() error { return eqlaw.Verify[shapes.CachedPoint]() }},
		// ColorPoint needs no option: its polymorphic annotation enables the
		// weak inheritance check by itself.
		{"AnnotatedPolymorphic", func() error { return eqlaw.Verify[shapes.ColorPoint]() }},
		{"RedefinedSuperclass", func() error {
			return eqlaw.Verify[shapes.StrictColorPoint](
				eqlaw.WithFeature(hierarchy.RedefinedSuperclass))
		}},
		{"RedefinedSubclass", func() error {
			return eqlaw.Verify[shapes.Person](
				eqlaw.WithRedefinedSubclass[shapes.Employee]())
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.verify())
		})
	}
}

//----------------------------------------------------------------------------//
// Misbehaving types
//----------------------------------------------------------------------------//

func TestVerify_Violations(t *testing.T) {
	cases := []struct {
		name    string
		verify  func() error
		wantLaw string
	}{
		{"OpenEqualityWithoutOptOut", func() error { return eqlaw.Verify[shapes.Point]() }, "Equal is not final"},
		{"AsymmetricSubtype", func() error { return eqlaw.Verify[shapes.SnobPoint]() }, "Symmetry"},
		{"IntransitiveSubtype", func() error { return eqlaw.Verify[shapes.HalfOpenPoint]() }, "Transitivity"},
		{"HashDrift", func() error { return eqlaw.Verify[shapes.DriftPoint]() }, "hash code"},
		{"ExactTypeEquality", func() error { return eqlaw.Verify[shapes.ExactPoint]() }, "trivial subclass"},
		{"UnflaggedRedefinition", func() error { return eqlaw.Verify[shapes.StrictColorPoint]() }, "Symmetry"},
		{"IneffectiveRedefinedSubclass", func() error {
			return eqlaw.Verify[shapes.Person](
				eqlaw.WithRedefinedSubclass[shapes.LoyalEmployee]())
		}, "equals"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.verify()
			require.ErrorIs(t, err, hierarchy.ErrViolation)
			require.ErrorContains(t, err, tc.wantLaw)
		})
	}
}

//----------------------------------------------------------------------------//
// Configuration and structural errors
//----------------------------------------------------------------------------//

func TestVerify_ConfigErrors(t *testing.T) {
	t.Run("RedundantRedefinedSubclass", func(t *testing.T) {
		err := eqlaw.Verify[shapes.GuardedPoint](
			eqlaw.WithRedefinedSubclass[shapes.GuardedPointSub]())
		require.ErrorIs(t, err, hierarchy.ErrConfig)
	})
	t.Run("AnnotationConflictsWithOption", func(t *testing.T) {
		// ColorPoint's polymorphic annotation implies the weak inheritance
		// check, which cannot be combined with a redefined subclass.
		err := eqlaw.Verify[shapes.ColorPoint](
			eqlaw.WithRedefinedSubclass[shapes.Employee]())
		require.ErrorIs(t, err, hierarchy.ErrConfig)
	})
}

func TestVerify_MissingHashCode(t *testing.T) {
	err := eqlaw.Verify[shapes.NoHashPoint]()
	require.ErrorIs(t, err, hierarchy.ErrInternal)
	require.ErrorIs(t, err, metadata.ErrNoSuchMethod)
	require.NotErrorIs(t, err, hierarchy.ErrViolation)
}

// TestVerify_NonStructType verifies unsupported type shapes are rejected up
// front as errors, never panics — including named non-struct types whose
// package source would otherwise be locatable.
func TestVerify_NonStructType(t *testing.T) {
	cases := []struct {
		name   string
		verify func() error
	}{
		{"Builtin", func() error { return eqlaw.Verify[int]() }},
		{"NamedNonStruct", func() error { return eqlaw.Verify[hierarchy.Feature]() }},
		{"SliceOfStructs", func() error { return eqlaw.Verify[[]shapes.Point]() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = tc.verify() })
			require.ErrorIs(t, err, instantiate.ErrUnsupportedType)
		})
	}
}
