// Package eqlaw verifies that a value type's Equal and HashCode methods
// honor the equality laws across its embedding hierarchy.
//
// What it checks:
//
//   - Symmetry and transitivity between an instance and a same-state
//     instance of its parent type.
//   - Hash consistency: equal values one level apart must hash alike.
//   - Substitutability: a trivial subclass with equal fields must still
//     compare equal.
//   - Finality: unless the type opts out, Equal and HashCode must be
//     declared non-overridable so subclasses cannot silently break the
//     laws just demonstrated.
//
// Types participate through the vobj contract (Equal, HashCode, and the
// optional CanEqual hook) and opt in or out of individual laws with
// directive comments such as //eqlaw:final and //eqlaw:polymorphic, read
// from package source at verification time.
//
// The typical call is a one-liner in a test:
//
//	if err := eqlaw.Verify[Point](); err != nil {
//		t.Fatal(err)
//	}
//
// Errors: contract breaches unwrap to hierarchy.ErrViolation, impossible
// configurations to hierarchy.ErrConfig, and structural defects (a type
// outside the expected object model, unreadable source) surface as
// hierarchy.ErrInternal or the metadata package's sentinels.
package eqlaw
