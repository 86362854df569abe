package metadata

import "strings"

// Annotation is a logical annotation that may be spelled several ways in
// source. Descriptors lists every known alias: the current "eqlaw:" directive
// form plus the legacy dotted "vo." form used before the prefix rename.
type Annotation struct {
	name        string
	descriptors []string
}

// Name returns the annotation's logical name.
func (a Annotation) Name() string { return a.name }

// Descriptors returns the alias identifiers, most recent first.
func (a Annotation) Descriptors() []string { return a.descriptors }

// Built-in annotations recognized by the verifier.
var (
	// Immutable marks a type whose instances never change observable state.
	Immutable = Annotation{"Immutable", []string{"eqlaw:immutable", "vo.immutable"}}
	// NonNil marks a field that is never nil in a valid instance.
	NonNil = Annotation{"NonNil", []string{"eqlaw:nonnil", "vo.nonnil"}}
	// Ignored marks a field that does not participate in equality and must
	// not be perturbed when generating examples.
	Ignored = Annotation{"Ignored", []string{"eqlaw:ignore", "vo.ignore"}}
	// Final marks a type as non-extensible, or a method as non-overridable,
	// for the purposes of the hierarchy contract.
	Final = Annotation{"Final", []string{"eqlaw:final", "vo.final"}}
	// Polymorphic marks a type that intentionally supports polymorphic
	// equality; the façade maps it to the weak inheritance check.
	Polymorphic = Annotation{"Polymorphic", []string{"eqlaw:polymorphic", "vo.polymorphic"}}
)

// matches reports whether any alias of a, after separator normalization,
// occurs as a substring of any stored descriptor.
//
// Substring (not exact) comparison is intentional: stored descriptors may
// carry arguments ("eqlaw:immutable since=1.2"), and legacy aliases use '.'
// where directives use ':'. The looseness is a documented sharp edge.
func (a Annotation) matches(descriptors []string) bool {
	for _, alias := range a.descriptors {
		needle := strings.ReplaceAll(alias, ".", ":")
		for _, haystack := range descriptors {
			if strings.Contains(haystack, needle) {
				return true
			}
		}
	}
	return false
}
