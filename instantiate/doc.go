// Package instantiate is the reflective implementation of the
// vobj.Instantiator contract: it builds instances of a struct type, perturbs
// their field state deterministically ("scrambling"), and clones state across
// one embedding level in either direction.
//
// What:
//
//   - For(t, opts...) — an Instantiator fixed to one struct type.
//   - Instantiate — the all-default instance.
//   - Scramble / ShallowScramble — advance every settable field (or only the
//     type's own declared fields) to a new distinct value, driven by one
//     monotonic sequence per instantiator, so repeated scrambles keep
//     diverging and runs are reproducible.
//   - CloneFrom — same-type copy, or extraction of the embedded parent state
//     from a subclass value.
//   - CloneToSubclass — an instance of a subclass type carrying the source's
//     inherited state; with a nil subclass type, a trivial subclass is
//     synthesized through the SubclassFactory strategy.
//
// Why:
//
//   - The hierarchy checker needs example instances that are meaningfully
//     different from defaults and from each other, without any per-type test
//     code. Everything here is driven off reflect.
//
// Scrambling skips unexported fields (unsettable), interface, channel and
// func fields (no generic way to synthesize a value), and any field named by
// WithIgnoredFields.
//
// Errors:
//
//   - ErrUnsupportedType: For on a non-struct type.
//   - ErrNotRelated: CloneFrom across unrelated types.
//   - ErrNotSubclass: CloneToSubclass into a type that does not embed the
//     instantiator's type.
//   - ErrSubclassUnsupported: the factory cannot synthesize a subclass for
//     the type.
package instantiate
