package hierarchy

import (
	"errors"
	"fmt"
	"reflect"

	set "github.com/hashicorp/go-set/v3"

	"github.com/eqlaw/eqlaw/vobj"
)

// Checker drives one hierarchy verification run for one type under one
// configuration. Construct with NewChecker, run Check once, discard.
type Checker struct {
	typ               reflect.Type
	inst              vobj.Instantiator
	info              TypeInfo
	features          *set.Set[Feature]
	redefinedSubclass reflect.Type
	typeIsFinal       bool

	reference any
	other     any
}

// NewChecker validates the configuration and captures the type's finality.
//
// WeakInheritanceCheck and a redefined subclass are two different
// philosophies for relaxing the subclass check; requesting both is ErrConfig,
// reported here, before any example is generated.
func NewChecker(inst vobj.Instantiator, info TypeInfo, features *set.Set[Feature], redefinedSubclass reflect.Type) (*Checker, error) {
	if inst == nil || info == nil {
		return nil, fmt.Errorf("%w: instantiator and type info are required", ErrConfig)
	}
	if features == nil {
		features = set.New[Feature](0)
	}
	if features.Contains(WeakInheritanceCheck) && redefinedSubclass != nil {
		return nil, fmt.Errorf("%w: a redefined subclass and WeakInheritanceCheck are mutually exclusive", ErrConfig)
	}
	final, err := info.TypeIsFinal()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return &Checker{
		typ:               inst.Type(),
		inst:              inst,
		info:              info,
		features:          features.Copy(),
		redefinedSubclass: redefinedSubclass,
		typeIsFinal:       final,
	}, nil
}

// phase is one named step of the fixed verification sequence.
type phase struct {
	name string
	skip func() bool
	run  func() error
}

// Check runs the whole sequence once: it either completes, or returns the
// first configuration error, contract violation, or structural error
// encountered. There is no retry and no aggregation of failures.
func (c *Checker) Check() error {
	phases := []phase{
		{"generate-examples", nil, c.generateExamples},
		{"superclass", c.skipSuperclass, c.checkSuperclass},
		{"subclass", c.skipSubclass, c.checkSubclass},
		{"redefined-subclass", c.skipRedefinedSubclass, c.checkRedefinedSubclass},
		{"final-methods", c.skipFinalMethods, c.checkFinalMethods},
	}
	for _, p := range phases {
		if p.skip != nil && p.skip() {
			continue
		}
		if err := p.run(); err != nil {
			if errors.Is(err, ErrViolation) || errors.Is(err, ErrConfig) {
				return err
			}
			return fmt.Errorf("%s phase: %w", p.name, err)
		}
	}
	return nil
}

// generateExamples builds the run's two example instances. The asymmetric
// scrambling (once vs. twice) guarantees "other" differs both from a fresh
// default instance and from "reference".
func (c *Checker) generateExamples() error {
	c.reference = c.inst.Scramble(c.inst.Instantiate())
	c.other = c.inst.Scramble(c.inst.Scramble(c.inst.Instantiate()))
	return nil
}

func (c *Checker) skipSuperclass() bool {
	return c.redefinedSubclass != nil || vobj.ParentOf(c.typ) == nil
}

// checkSuperclass verifies the reference against a same-state instance one
// level up the hierarchy.
func (c *Checker) checkSuperclass() error {
	superInst, err := c.inst.ForType(vobj.ParentOf(c.typ))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	equalSuper, err := superInst.CloneFrom(c.reference)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	if c.features.Contains(RedefinedSuperclass) {
		eq, err := c.equals(c.reference, equalSuper)
		if err != nil {
			return err
		}
		return c.assertFalse(fmt.Sprintf("Redefined superclass: %s may not equal %s, but it does",
			describe(c.reference), describe(equalSuper)), eq)
	}

	refSuper, err := c.equals(c.reference, equalSuper)
	if err != nil {
		return err
	}
	superRef, err := c.equals(equalSuper, c.reference)
	if err != nil {
		return err
	}
	if err := c.assertTrue(fmt.Sprintf("Symmetry: %s does not equal %s",
		describe(c.reference), describe(equalSuper)), refSuper && superRef); err != nil {
		return err
	}

	shallow, err := c.inst.CloneFrom(c.reference)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	shallow = c.inst.ShallowScramble(shallow)
	refShallow, err := c.equals(c.reference, shallow)
	if err != nil {
		return err
	}
	superShallow, err := c.equals(equalSuper, shallow)
	if err != nil {
		return err
	}
	if err := c.assertTrue(fmt.Sprintf("Transitivity: %s and %s both equal %s, which implies they equal each other",
		describe(c.reference), describe(shallow), describe(equalSuper)),
		refShallow || refSuper != superShallow); err != nil {
		return err
	}

	refHash, err := c.hashCode(c.reference)
	if err != nil {
		return err
	}
	superHash, err := c.hashCode(equalSuper)
	if err != nil {
		return err
	}
	return c.assertTrue(fmt.Sprintf("Superclass: hash code for %s should be equal to hash code for %s",
		describe(c.reference), describe(equalSuper)), refHash == superHash)
}

func (c *Checker) skipSubclass() bool {
	return c.typeIsFinal
}

// checkSubclass verifies substitutability: a trivial subclass instance with
// equal fields must still be equal.
func (c *Checker) checkSubclass() error {
	equalSub, err := c.inst.CloneToSubclass(c.reference, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	eq, err := c.equals(c.reference, equalSub)
	if err != nil {
		return err
	}
	return c.assertTrue(fmt.Sprintf("Subclass: %s is not equal to an instance of a trivial subclass with equal fields; consider declaring the type eqlaw:final",
		describe(c.reference)), eq)
}

func (c *Checker) skipRedefinedSubclass() bool {
	return c.typeIsFinal || c.redefinedSubclass == nil
}

// checkRedefinedSubclass verifies the supplied subclass actually redefines
// equality in practice, not just on paper.
func (c *Checker) checkRedefinedSubclass() error {
	finalEqual, err := c.info.MethodIsFinal(equalMethod)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if finalEqual {
		return fmt.Errorf("%w: %s has a final Equal method; a redefined subclass is redundant", ErrConfig, c.typ)
	}
	redefinedSub, err := c.inst.CloneToSubclass(c.reference, c.redefinedSubclass)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	eq, err := c.equals(c.reference, redefinedSub)
	if err != nil {
		return err
	}
	return c.assertFalse(fmt.Sprintf("Subclass: %s equals %s",
		describe(c.reference), describe(redefinedSub)), eq)
}

func (c *Checker) skipFinalMethods() bool {
	return c.typeIsFinal || c.redefinedSubclass != nil || c.features.Contains(WeakInheritanceCheck)
}

// checkFinalMethods is the default safety net: without it, arbitrary
// subclasses could silently break the substitutability just demonstrated.
func (c *Checker) checkFinalMethods() error {
	finalEqual, err := c.info.MethodIsFinal(equalMethod)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if err := c.assertTrue("Subclass: Equal is not final; mark it eqlaw:final, or supply a redefined subclass if Equal cannot be final", finalEqual); err != nil {
		return err
	}
	finalHash, err := c.info.MethodIsFinal(hashMethod)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return c.assertTrue("Subclass: HashCode is not final; mark it eqlaw:final, or supply a redefined subclass if HashCode cannot be final", finalHash)
}

// equals applies the contract under test. A value without an Equal method
// is outside the expected object model.
func (c *Checker) equals(v, other any) (bool, error) {
	val, ok := v.(vobj.Equaler)
	if !ok {
		return false, fmt.Errorf("%w: %T does not implement vobj.Equaler", ErrInternal, v)
	}
	return val.Equal(other), nil
}

func (c *Checker) hashCode(v any) (uint64, error) {
	val, ok := v.(vobj.Hasher)
	if !ok {
		return 0, fmt.Errorf("%w: %T does not implement vobj.Hasher", ErrInternal, v)
	}
	return val.HashCode(), nil
}
