package hierarchy

import "fmt"

// Reporting contract: each assertion either passes silently or produces a
// *Violation carrying the failed law and both example instances.

func (c *Checker) assertTrue(message string, condition bool) error {
	if condition {
		return nil
	}
	return &Violation{
		Message:   message,
		Reference: describe(c.reference),
		Other:     describe(c.other),
	}
}

func (c *Checker) assertFalse(message string, condition bool) error {
	return c.assertTrue(message, !condition)
}

// describe renders an example instance for diagnostics.
func describe(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T%+v", v, v)
}
