package hierarchy

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig indicates a contradictory verification setup; the run never
	// starts (or the offending phase aborts before asserting anything).
	ErrConfig = errors.New("hierarchy: invalid configuration")
	// ErrViolation is the base error all contract violations match.
	ErrViolation = errors.New("hierarchy: contract violation")
	// ErrInternal indicates the type under test does not conform to the
	// expected object model; the run is unrecoverable.
	ErrInternal = errors.New("hierarchy: internal error")
)

// Violation reports one failed law of the hierarchy contract. It carries the
// string forms of both generated example instances for diagnostics and
// matches ErrViolation under errors.Is.
type Violation struct {
	// Message names the failed law and the values involved.
	Message string
	// Reference and Other are the run's two example instances.
	Reference string
	Other     string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("hierarchy: %s (reference: %s; other: %s)", v.Message, v.Reference, v.Other)
}

func (v *Violation) Unwrap() error { return ErrViolation }
