package instantiate

import "errors"

var (
	// ErrUnsupportedType indicates an instantiator was requested for a kind
	// it cannot build (only struct types are supported).
	ErrUnsupportedType = errors.New("instantiate: unsupported type")
	// ErrNotRelated indicates a clone was requested between types that share
	// no embedding relationship.
	ErrNotRelated = errors.New("instantiate: types are not related")
	// ErrNotSubclass indicates the target of CloneToSubclass does not embed
	// the instantiator's type.
	ErrNotSubclass = errors.New("instantiate: type is not a subclass")
	// ErrSubclassUnsupported indicates the subclass factory cannot
	// synthesize a trivial subclass for the type.
	ErrSubclassUnsupported = errors.New("instantiate: cannot synthesize subclass")
)
