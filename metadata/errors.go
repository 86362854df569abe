package metadata

import "errors"

var (
	// ErrSourceUnavailable indicates a type's package source could not be
	// located or parsed, so its declaration-time metadata is unrecoverable.
	ErrSourceUnavailable = errors.New("metadata: package source unavailable")
	// ErrUnknownField indicates a field-annotation query for a name that is
	// not declared anywhere in the type's embedding chain.
	ErrUnknownField = errors.New("metadata: no such field")
	// ErrNoSuchMethod indicates a finality query for a method the type does
	// not have in its method set.
	ErrNoSuchMethod = errors.New("metadata: no such method")
)
