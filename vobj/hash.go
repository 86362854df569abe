package vobj

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// HashOf returns a deterministic structural hash of v, suitable for
// implementing Value.HashCode over a type's significant state.
//
// Equal structures hash equal; the result is stable for an unmutated value.
// HashOf panics when v contains something unhashable (channels, functions):
// that is a defect in the value type's state, not a runtime condition.
func HashOf(v any) uint64 {
	h, err := hashstructure.Hash(v, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("vobj: unhashable value of type %T: %v", v, err))
	}
	return h
}
