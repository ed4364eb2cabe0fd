// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"

	"github.com/katalvlaran/lightsout/circuit"
	"github.com/katalvlaran/lightsout/matrix"
)

// Registers names the wires an oracle acts on. Address is the zero Register
// in single-instance mode.
type Registers struct {
	Solution circuit.Register
	Ancilla  circuit.Register
	Address  circuit.Register
}

// Options configures a Constructor.
type Options struct {
	// Barriers inserts a barrier after each bias block, each accumulation
	// row and each mark.
	Barriers bool
}

// Option mutates Options.
type Option func(*Options)

// WithBarriers toggles barrier emission.
func WithBarriers(on bool) Option {
	return func(o *Options) {
		o.Barriers = on
	}
}

// DefaultOptions returns barriers enabled.
func DefaultOptions() Options {
	return Options{Barriers: true}
}

// Constructor emits oracle pieces for one register layout and toggle matrix.
// It holds no per-instance state; every instance is passed explicitly.
type Constructor struct {
	regs Registers
	opts Options
	rows [][]int // rows[i]: buttons that flip cell i
}

// New validates the layout: Solution and Ancilla must both have
// toggles.Size() qubits, with at least two. Returns ErrRegisters otherwise.
func New(regs Registers, toggles *matrix.Binary, opts ...Option) (*Constructor, error) {
	if toggles == nil {
		return nil, fmt.Errorf("oracle.New: toggle matrix is nil: %w", ErrRegisters)
	}
	n := toggles.Size()
	if n < 2 || regs.Solution.Size != n || regs.Ancilla.Size != n {
		return nil, fmt.Errorf("oracle.New: solution=%d ancilla=%d toggles=%d: %w",
			regs.Solution.Size, regs.Ancilla.Size, n, ErrRegisters)
	}
	if regs.Solution.Classical || regs.Ancilla.Classical || regs.Address.Classical {
		return nil, fmt.Errorf("oracle.New: classical register given: %w", ErrRegisters)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rows := make([][]int, n)
	for i := range rows {
		ones, err := toggles.Ones(i)
		if err != nil {
			return nil, err
		}
		rows[i] = ones
	}

	return &Constructor{regs: regs, opts: o, rows: rows}, nil
}

// Registers returns the layout the constructor was built for.
func (o *Constructor) Registers() Registers {
	return o.regs
}

// Bias sets Ancilla[i] for every cell of inst that is initially off.
//
// Single mode: one X per off cell. Batched mode: the address positions coded
// '0' are flipped, each off cell gets MCX(Address → Ancilla[i]), and the same
// positions are flipped back. The block is appended atomically: on error the
// circuit is left untouched.
//
// Returns ErrSizeMismatch if the puzzle does not fit the registers and
// ErrCodeWidth if the code does not fit the address register.
func (o *Constructor) Bias(c *circuit.Circuit, inst Instance) error {
	if inst.Puzzle == nil {
		return fmt.Errorf("Bias: instance %d: %w", inst.Index, ErrNilPuzzle)
	}
	if inst.Puzzle.LayoutLength() != o.regs.Ancilla.Size {
		return fmt.Errorf("Bias: instance %d has %d cells, registers hold %d: %w",
			inst.Index, inst.Puzzle.LayoutLength(), o.regs.Ancilla.Size, ErrSizeMismatch)
	}
	if inst.Code.Width() != o.regs.Address.Size {
		return fmt.Errorf("Bias: instance %d code %q, address register has %d qubits: %w",
			inst.Index, inst.Code, o.regs.Address.Size, ErrCodeWidth)
	}
	off := inst.Puzzle.Off()

	if o.regs.Address.Empty() {
		for _, i := range off {
			c.X(o.regs.Ancilla.At(i))
		}
		o.barrier(c)
		return nil
	}

	flips := make([]int, 0, inst.Code.Width())
	for _, j := range inst.Code.ZeroPositions() {
		flips = append(flips, o.regs.Address.At(j))
	}
	controls := o.regs.Address.All()
	err := c.WithFlipped(flips, func(c *circuit.Circuit) error {
		for _, i := range off {
			c.MCX(controls, o.regs.Ancilla.At(i))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("Bias: instance %d: %w", inst.Index, err)
	}
	o.barrier(c)

	return nil
}

// Accumulate XORs, into each Ancilla[i], the press bits of every button
// that flips cell i. It is its own inverse.
func (o *Constructor) Accumulate(c *circuit.Circuit) {
	for i, buttons := range o.rows {
		for _, j := range buttons {
			c.CX(o.regs.Solution.At(j), o.regs.Ancilla.At(i))
		}
		o.barrier(c)
	}
}

// Mark flips the phase of branches whose ancilla flags are all 1:
// H on the last flag, MCX from the others onto it, H again.
func (o *Constructor) Mark(c *circuit.Circuit) {
	last := o.regs.Ancilla.Last()
	c.H(last)
	c.MCX(o.regs.Ancilla.Slice(0, o.regs.Ancilla.Size-1), last)
	c.H(last)
	o.barrier(c)
}

// Apply is one oracle call: Accumulate, Mark, then Accumulate again to
// return the ancilla to its bias.
func (o *Constructor) Apply(c *circuit.Circuit) {
	o.Accumulate(c)
	o.Mark(c)
	o.Accumulate(c)
}

func (o *Constructor) barrier(c *circuit.Circuit) {
	if o.opts.Barriers {
		c.Barrier()
	}
}
