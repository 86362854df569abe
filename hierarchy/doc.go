// Package hierarchy verifies the inheritance-sensitive part of the equality
// contract for one value type: how its Equal and HashCode behave across its
// embedding chain — against a same-state parent instance, against a trivial
// subclass, and against a deliberately redefined subclass.
//
// What:
//
//   - Feature — closed enumeration of contract relaxations
//     (WeakInheritanceCheck, RedefinedSuperclass).
//   - Checker — one verification run: synthesizes example instances through
//     a vobj.Instantiator, then executes a fixed, linear sequence of check
//     phases, each with a precomputed skip predicate, failing fast on the
//     first violated law.
//   - Violation — the contract-violation report: which law failed, with the
//     string forms of both example instances.
//
// Phase order (never revisited, no aggregation):
//
//	generate-examples → superclass → subclass → redefined-subclass → final-methods
//
// Why this order matters: superclass symmetry and transitivity failures make
// every later result meaningless, and the final-methods safety net is only
// sound once substitutability has actually been demonstrated.
//
// A Checker is built per run and discarded afterwards; it owns its example
// instances exclusively, so concurrent runs with separate checkers need no
// coordination.
//
// Errors:
//
//   - ErrConfig: contradictory setup (mutually exclusive relaxations, or a
//     redundant redefined subclass when Equal is already final). Reported at
//     construction or at the start of the relevant phase, never mid-check.
//   - ErrViolation: a law of the contract failed; match with errors.Is and
//     inspect the *Violation for diagnostics.
//   - ErrInternal: the type under test does not conform to the expected
//     object model (missing methods, unclonable hierarchy). Non-retryable.
package hierarchy
