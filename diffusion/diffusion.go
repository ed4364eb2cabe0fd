// SPDX-License-Identifier: MIT

// Package diffusion emits the inversion-about-the-mean step of amplitude
// amplification on a qubit register.
//
// The operator is data-independent and its own inverse:
//
//	H(all) · X(all) · H(last) · MCX(rest → last) · H(last) · X(all) · H(all)
//
// Up to a global phase it equals 2|s⟩⟨s| − I with |s⟩ the uniform superposition.
package diffusion

import (
	"fmt"

	"github.com/katalvlaran/lightsout"
	"github.com/katalvlaran/lightsout/circuit"
)

// ErrRegister indicates a register the operator cannot act on.
var ErrRegister = fmt.Errorf("diffusion: register must be quantum with at least 2 qubits: %w", lightsout.ErrConfiguration)

// Apply appends the diffusion operator on reg, followed by a barrier
// when barrier is true.
func Apply(c *circuit.Circuit, reg circuit.Register, barrier bool) error {
	if reg.Classical || reg.Size < 2 {
		return fmt.Errorf("Apply(%s): %w", reg.Name, ErrRegister)
	}
	all := reg.All()
	last := reg.Last()

	c.H(all...)
	c.X(all...)
	c.H(last)
	c.MCX(reg.Slice(0, reg.Size-1), last)
	c.H(last)
	c.X(all...)
	c.H(all...)
	if barrier {
		c.Barrier()
	}

	return nil
}
