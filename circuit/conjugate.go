// SPDX-License-Identifier: MIT

package circuit

import "fmt"

// Conjugate appends prefix, runs body, then appends the inverse of prefix,
// as a single unit: either all three parts land in the circuit or none do.
//
// Behavior highlights:
//   - The inverse is computed before anything is appended, so an
//     irreversible prefix (ErrIrreversible) changes nothing.
//   - If body returns an error or panics, the circuit is rolled back to the
//     state before the call; a panic is re-raised after the rollback.
//   - Nesting is allowed; each level restores only its own ops.
func (c *Circuit) Conjugate(prefix []Op, body func(*Circuit) error) (err error) {
	undo, err := Inverse(prefix)
	if err != nil {
		return fmt.Errorf("Conjugate: %w", err)
	}
	cp := c.Checkpoint()
	committed := false
	defer func() {
		if !committed {
			c.Rollback(cp)
		}
	}()

	c.Append(prefix...)
	if err = body(c); err != nil {
		return err
	}
	c.Append(undo...)
	committed = true

	return nil
}

// WithFlipped conjugates body with X on each of qubits.
func (c *Circuit) WithFlipped(qubits []int, body func(*Circuit) error) error {
	return c.Conjugate(XOps(qubits...), body)
}
