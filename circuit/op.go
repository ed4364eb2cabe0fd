// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"
)

// Kind identifies an operation.
type Kind uint8

const (
	// KindH is the Hadamard gate, the superposition-inducing step.
	KindH Kind = iota
	// KindX is the bit flip.
	KindX
	// KindCX flips Target when the single control is 1.
	KindCX
	// KindMCX flips Target when every control is 1 (multi-input AND).
	KindMCX
	// KindBarrier is a scheduling fence over Qubits; it has no effect on state.
	KindBarrier
	// KindMeasure samples qubit Target into classical bit Clbit.
	KindMeasure
)

var kindNames = [...]string{
	KindH:       "h",
	KindX:       "x",
	KindCX:      "cx",
	KindMCX:     "mcx",
	KindBarrier: "barrier",
	KindMeasure: "measure",
}

// String returns the lower-case gate name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("kind(%d)", k)
}

// Op is one operation. Fields not used by Kind hold their zero/-1 values:
//   - H, X:    Target.
//   - CX, MCX: Controls, Target.
//   - Barrier: Qubits, Target = -1.
//   - Measure: Target, Clbit.
type Op struct {
	Kind     Kind
	Controls []int
	Target   int
	Qubits   []int
	Clbit    int
}

// Reversible reports whether the op has an inverse. Every gate here is
// self-inverse; only Measure is irreversible.
func (o Op) Reversible() bool {
	return o.Kind != KindMeasure
}


// String renders the op with global indices, e.g. "mcx q[0],q[1] -> q[5]".
func (o Op) String() string {
	switch o.Kind {
	case KindBarrier:
		return "barrier " + joinQubits(o.Qubits)
	case KindMeasure:
		return fmt.Sprintf("measure q[%d] -> c[%d]", o.Target, o.Clbit)
	case KindCX, KindMCX:
		return fmt.Sprintf("%s %s -> q[%d]", o.Kind, joinQubits(o.Controls), o.Target)
	default:
		return fmt.Sprintf("%s q[%d]", o.Kind, o.Target)
	}
}

func joinQubits(qs []int) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = fmt.Sprintf("q[%d]", q)
	}

	return strings.Join(parts, ",")
}

// Inverse returns the ops that undo ops: the reversed sequence, since every
// reversible op here is its own inverse.
// Returns ErrIrreversible if ops contains a Measure.
func Inverse(ops []Op) ([]Op, error) {
	out := make([]Op, len(ops))
	for i, op := range ops {
		if !op.Reversible() {
			return nil, fmt.Errorf("Inverse: op %d (%s): %w", i, op, ErrIrreversible)
		}
		out[len(ops)-1-i] = op.clone()
	}

	return out, nil
}

// XOps returns one X op per qubit, in order.
func XOps(qubits ...int) []Op {
	out := make([]Op, len(qubits))
	for i, q := range qubits {
		out[i] = Op{Kind: KindX, Target: q, Clbit: -1}
	}

	return out
}

func (o Op) clone() Op {
	c := o
	if o.Controls != nil {
		c.Controls = append([]int(nil), o.Controls...)
	}
	if o.Qubits != nil {
		c.Qubits = append([]int(nil), o.Qubits...)
	}

	return c
}
