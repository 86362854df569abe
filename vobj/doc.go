// Package vobj defines the value-object model that the verification engine
// reasons about: the equality/hash surface a type must expose, the embedding
// relation that plays the role of a class hierarchy, and the acceptance hook
// that lets a subclass legitimately redefine equality.
//
// What:
//
//   - Value — the contract under verification: Equal(other) plus HashCode().
//   - Acceptor / Accepts — the CanEqual acceptance idiom for hierarchies whose
//     subclasses intentionally break substitutability.
//   - As[T] — unwraps a value to T directly or through its embedding chain,
//     so a parent's Equal can treat a same-state subclass value as equal.
//   - ParentOf — the hierarchy walk primitive: the first embedded struct
//     field is the type's parent; nil means the type is a hierarchy root.
//   - HashOf — deterministic structural hashing for HashCode implementations.
//   - Instantiator — the construction/mutation collaborator contract consumed
//     by the checker (implemented in package instantiate).
//
// Why:
//
//   - An equality relation that spans an embedding hierarchy is easy to get
//     subtly wrong (asymmetry, broken transitivity, hash drift). Fixing the
//     object model here lets package hierarchy verify those laws generically.
//
// Errors: none — vobj is purely structural; misuse surfaces in the packages
// that consume it.
package vobj
