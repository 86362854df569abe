package eqlaw

import (
	"fmt"
	"reflect"

	"github.com/eqlaw/eqlaw/hierarchy"
	"github.com/eqlaw/eqlaw/instantiate"
	"github.com/eqlaw/eqlaw/metadata"
	"github.com/eqlaw/eqlaw/vobj"
)

// config collects the per-run choices before the collaborators are built.
type config struct {
	features  []hierarchy.Feature
	redefined reflect.Type
	inst      vobj.Instantiator
}

// Option adjusts a single verification run.
type Option func(*config)

// WithFeature enables one relaxation of the hierarchy contract.
func WithFeature(f hierarchy.Feature) Option {
	return func(c *config) {
		c.features = append(c.features, f)
	}
}

// WithRedefinedSubclass supplies a subclass that intentionally redefines
// equality; the run then demands the redefinition is effective instead of
// demanding final methods.
func WithRedefinedSubclass[S any]() Option {
	return func(c *config) {
		c.redefined = reflect.TypeFor[S]()
	}
}

// WithInstantiator replaces the default example-generation strategy, for
// types whose interesting states the generic scrambler cannot reach.
func WithInstantiator(inst vobj.Instantiator) Option {
	return func(c *config) {
		c.inst = inst
	}
}

// Verify runs the full hierarchy verification for T.
func Verify[T any](opts ...Option) error {
	return VerifyType(reflect.TypeFor[T](), opts...)
}

// VerifyType is Verify for a reflected type.
//
// It derives the run's flags from t's annotations as well as the options: a
// type declared eqlaw:polymorphic gets the weak inheritance check, and
// fields declared eqlaw:ignore are withheld from example scrambling.
func VerifyType(t reflect.Type, opts ...Option) error {
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v", instantiate.ErrUnsupportedType, t)
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	info := metadata.NewInfo(t)
	acc := info.Accessor()

	features := hierarchy.Features(cfg.features...)
	polymorphic, err := acc.TypeHas(metadata.Polymorphic)
	if err != nil {
		return err
	}
	if polymorphic {
		features.Insert(hierarchy.WeakInheritanceCheck)
	}

	inst := cfg.inst
	if inst == nil {
		ignored, err := ignoredFields(t, acc)
		if err != nil {
			return err
		}
		inst, err = instantiate.For(t, instantiate.WithIgnoredFields(ignored...))
		if err != nil {
			return err
		}
	}

	chk, err := hierarchy.NewChecker(inst, info, features, cfg.redefined)
	if err != nil {
		return err
	}
	return chk.Check()
}

// ignoredFields collects t's own fields annotated eqlaw:ignore. Embedded
// parent fields are not candidates: they are hierarchy links, not state.
func ignoredFields(t reflect.Type, acc *metadata.Accessor) ([]string, error) {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			continue
		}
		ignored, err := acc.FieldHas(f.Name, metadata.Ignored)
		if err != nil {
			return nil, err
		}
		if ignored {
			names = append(names, f.Name)
		}
	}
	return names, nil
}
