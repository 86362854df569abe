package metadata

import (
	"fmt"
	"reflect"

	set "github.com/hashicorp/go-set/v3"

	"github.com/eqlaw/eqlaw/vobj"
)

// Accessor answers annotation queries for one type and its embedding chain.
//
// Extraction is lazy and memoized: the first query walks the chain from the
// type itself up to (but excluding) the hierarchy root, reading each type's
// package source once; the resulting descriptor sets are immutable for the
// accessor's lifetime. An Accessor is safe for concurrent reads once the
// first query has completed.
type Accessor struct {
	typ reflect.Type

	typeAnnotations   *set.Set[string]
	fieldAnnotations  map[string]*set.Set[string]
	methodAnnotations map[string]*set.Set[string]

	processed bool
}

// NewAccessor returns an accessor for t. No source is read until the first
// query.
func NewAccessor(t reflect.Type) *Accessor {
	return &Accessor{
		typ:               t,
		typeAnnotations:   set.New[string](0),
		fieldAnnotations:  make(map[string]*set.Set[string]),
		methodAnnotations: make(map[string]*set.Set[string]),
	}
}

// TypeHas reports whether the type carries ann, on its own declaration or on
// any ancestor's: ancestor annotations count as present on the type.
func (a *Accessor) TypeHas(ann Annotation) (bool, error) {
	if err := a.process(); err != nil {
		return false, err
	}
	return ann.matches(a.typeAnnotations.Slice()), nil
}

// FieldHas reports whether the named declared field carries ann. A name
// never declared anywhere in the chain is ErrUnknownField — a caller bug,
// not an absent annotation.
func (a *Accessor) FieldHas(fieldName string, ann Annotation) (bool, error) {
	if err := a.process(); err != nil {
		return false, err
	}
	descs, ok := a.fieldAnnotations[fieldName]
	if !ok {
		return false, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, a.typ, fieldName)
	}
	return ann.matches(descs.Slice()), nil
}

// MethodHas reports whether the named method, as the type sees it (the most
// derived declaration), carries ann. Unknown method names simply report
// false: promoted and interface-satisfying methods are resolved reflectively
// by Info, not here.
func (a *Accessor) MethodHas(methodName string, ann Annotation) (bool, error) {
	if err := a.process(); err != nil {
		return false, err
	}
	descs, ok := a.methodAnnotations[methodName]
	if !ok {
		return false, nil
	}
	return ann.matches(descs.Slice()), nil
}

// process performs the one-time extraction walk, derived to base.
//
// Field and method sets use first-write-wins: when a derived type shadows an
// ancestor's field or method name, the derived declaration's annotations are
// the ones recorded, and the ancestor's must not overwrite them.
func (a *Accessor) process() error {
	if a.processed {
		return nil
	}
	for t := a.typ; t != nil; t = vobj.ParentOf(t) {
		facts, err := readTypeFacts(t)
		if err != nil {
			return err
		}
		a.typeAnnotations.InsertSlice(facts.typeDescriptors)
		for name, descs := range facts.fieldDescriptors {
			if _, ok := a.fieldAnnotations[name]; ok {
				continue
			}
			s := set.New[string](len(descs))
			s.InsertSlice(descs)
			a.fieldAnnotations[name] = s
		}
		for name, descs := range facts.methodDescriptors {
			if _, ok := a.methodAnnotations[name]; ok {
				continue
			}
			s := set.New[string](len(descs))
			s.InsertSlice(descs)
			a.methodAnnotations[name] = s
		}
	}
	a.processed = true
	return nil
}
