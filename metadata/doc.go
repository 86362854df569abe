// Package metadata recovers the declaration-time facts about a type that the
// reflect API cannot see: directive comments ("annotations") attached to the
// type declaration, to its fields, and to its methods, across the whole
// embedding chain.
//
// What:
//
//   - Annotation — a logical annotation name with its alias descriptors,
//     including legacy dotted spellings from earlier directive generations.
//   - Accessor — per-type, lazily populated, memoized view answering
//     TypeHas / FieldHas / MethodHas.
//   - Info — the finality facts (eqlaw:final on a type or method) consumed
//     by the hierarchy checker.
//
// Why:
//
//   - Directives such as //eqlaw:final or //eqlaw:immutable exist only in
//     source; runtime reflection reports none of them. The accessor therefore
//     locates each type's package source (through the enclosing go.mod, with
//     a go/build fallback) and reads the declarations directly — the moral
//     equivalent of parsing a compiled class file instead of trusting the
//     live object model.
//
// Matching is deliberately loose: an annotation matches when any of its
// aliases, separator-normalized, is a substring of a stored descriptor. This
// tolerates descriptor arguments ("eqlaw:immutable since=1.2") and renamed
// directive prefixes, at the cost of a theoretical false positive between
// annotations whose identifiers overlap textually. That edge is preserved
// intentionally; see the package tests.
//
// Errors:
//
//   - ErrSourceUnavailable: a type's package source cannot be located or read.
//   - ErrUnknownField: FieldHas for a name never declared in the chain.
//   - ErrNoSuchMethod: a finality query for a method the type does not have.
//
// All three are structural, fatal, and non-retryable: they indicate caller
// bugs or unsupported type shapes, not recoverable conditions.
package metadata
