// SPDX-License-Identifier: MIT

package circuit

import "fmt"

// Circuit is an append-only list of operations over declared registers.
// It is not safe for concurrent use; op order is significant.
type Circuit struct {
	qregs     []Register
	cregs     []Register
	numQubits int
	numClbits int
	ops       []Op
}

// New returns an empty circuit with no registers.
func New() *Circuit {
	return &Circuit{}
}

// AddQubits declares a quantum register of size qubits after the existing ones.
// Returns ErrBadSize, ErrBadName or ErrDuplicateRegister.
func (c *Circuit) AddQubits(name string, size int) (Register, error) {
	if err := c.checkDecl(name, size); err != nil {
		return Register{}, fmt.Errorf("AddQubits(%q, %d): %w", name, size, err)
	}
	r := Register{Name: name, Offset: c.numQubits, Size: size}
	c.qregs = append(c.qregs, r)
	c.numQubits += size

	return r, nil
}

// AddClbits declares a classical register of size bits after the existing ones.
func (c *Circuit) AddClbits(name string, size int) (Register, error) {
	if err := c.checkDecl(name, size); err != nil {
		return Register{}, fmt.Errorf("AddClbits(%q, %d): %w", name, size, err)
	}
	r := Register{Name: name, Offset: c.numClbits, Size: size, Classical: true}
	c.cregs = append(c.cregs, r)
	c.numClbits += size

	return r, nil
}

func (c *Circuit) checkDecl(name string, size int) error {
	if size <= 0 {
		return ErrBadSize
	}
	if !validName(name) {
		return ErrBadName
	}
	if _, ok := c.Register(name); ok {
		return ErrDuplicateRegister
	}

	return nil
}

// validName accepts lower-case identifiers: [a-z_][a-z0-9_]*.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch == '_' || (ch >= 'a' && ch <= 'z'):
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// Register looks up a quantum or classical register by name.
func (c *Circuit) Register(name string) (Register, bool) {
	for _, r := range c.qregs {
		if r.Name == name {
			return r, true
		}
	}
	for _, r := range c.cregs {
		if r.Name == name {
			return r, true
		}
	}

	return Register{}, false
}

// QubitRegisters returns the quantum registers in declaration order.
func (c *Circuit) QubitRegisters() []Register {
	return append([]Register(nil), c.qregs...)
}

// ClbitRegisters returns the classical registers in declaration order.
func (c *Circuit) ClbitRegisters() []Register {
	return append([]Register(nil), c.cregs...)
}

// NumQubits returns the total qubit count.
func (c *Circuit) NumQubits() int { return c.numQubits }

// NumClbits returns the total classical bit count.
func (c *Circuit) NumClbits() int { return c.numClbits }

// Len returns the number of ops appended so far.
func (c *Circuit) Len() int { return len(c.ops) }

// Ops returns a copy of the op list.
func (c *Circuit) Ops() []Op {
	out := make([]Op, len(c.ops))
	for i, op := range c.ops {
		out[i] = op.clone()
	}

	return out
}

// H appends a Hadamard on each qubit, in order.
func (c *Circuit) H(qubits ...int) {
	for _, q := range qubits {
		c.Append(Op{Kind: KindH, Target: q, Clbit: -1})
	}
}

// X appends a bit flip on each qubit, in order.
func (c *Circuit) X(qubits ...int) {
	c.Append(XOps(qubits...)...)
}

// CX appends a controlled flip of target by control.
func (c *Circuit) CX(control, target int) {
	c.Append(Op{Kind: KindCX, Controls: []int{control}, Target: target, Clbit: -1})
}

// MCX appends a flip of target conditioned on every control being 1.
// With no controls it degenerates to X, with one to CX.
func (c *Circuit) MCX(controls []int, target int) {
	switch len(controls) {
	case 0:
		c.X(target)
	case 1:
		c.CX(controls[0], target)
	default:
		c.Append(Op{Kind: KindMCX, Controls: append([]int(nil), controls...), Target: target, Clbit: -1})
	}
}

// Barrier appends a fence over qubits, or over every qubit when none are given.
func (c *Circuit) Barrier(qubits ...int) {
	if len(qubits) == 0 {
		qubits = make([]int, c.numQubits)
		for i := range qubits {
			qubits[i] = i
		}
	}
	c.Append(Op{Kind: KindBarrier, Qubits: append([]int(nil), qubits...), Target: -1, Clbit: -1})
}

// Measure appends a readout of qubit into clbit.
func (c *Circuit) Measure(qubit, clbit int) {
	c.Append(Op{Kind: KindMeasure, Target: qubit, Clbit: clbit})
}

// MeasureRegister measures q[i] into b[i] for every i.
// It panics if the registers differ in size.
func (c *Circuit) MeasureRegister(q, b Register) {
	if q.Size != b.Size || q.Classical || !b.Classical {
		panic(fmt.Sprintf("circuit: cannot measure %s (%d) into %s (%d)", q.Name, q.Size, b.Name, b.Size))
	}
	for i := 0; i < q.Size; i++ {
		c.Measure(q.At(i), b.At(i))
	}
}

// Append validates and appends ops verbatim.
// It panics on indices outside the declared registers or a CX/MCX whose
// target is among its controls.
func (c *Circuit) Append(ops ...Op) {
	for _, op := range ops {
		if err := c.check(op); err != nil {
			panic(err.Error())
		}
		c.ops = append(c.ops, op.clone())
	}
}

func (c *Circuit) check(op Op) error {
	inQ := func(q int) bool { return q >= 0 && q < c.numQubits }
	switch op.Kind {
	case KindBarrier:
		for _, q := range op.Qubits {
			if !inQ(q) {
				return fmt.Errorf("circuit: %s: qubit %d: %w", op, q, ErrUnknownQubit)
			}
		}
		return nil
	case KindMeasure:
		if !inQ(op.Target) || op.Clbit < 0 || op.Clbit >= c.numClbits {
			return fmt.Errorf("circuit: %s: %w", op, ErrUnknownQubit)
		}
		return nil
	}
	if !inQ(op.Target) {
		return fmt.Errorf("circuit: %s: target %d: %w", op, op.Target, ErrUnknownQubit)
	}
	seen := make(map[int]bool, len(op.Controls))
	for _, q := range op.Controls {
		if !inQ(q) {
			return fmt.Errorf("circuit: %s: control %d: %w", op, q, ErrUnknownQubit)
		}
		if q == op.Target || seen[q] {
			return fmt.Errorf("circuit: %s: control %d repeats a wire", op, q)
		}
		seen[q] = true
	}

	return nil
}

// Checkpoint returns a marker for Rollback.
func (c *Circuit) Checkpoint() int {
	return len(c.ops)
}

// Rollback discards every op appended after checkpoint cp.
func (c *Circuit) Rollback(cp int) {
	if cp < 0 || cp > len(c.ops) {
		panic(fmt.Sprintf("circuit: rollback to %d outside [0,%d]", cp, len(c.ops)))
	}
	clear(c.ops[cp:])
	c.ops = c.ops[:cp]
}
