// Package statevec evaluates circuit op lists on a dense state vector.
//
// It exists so tests can check amplitude-level properties (marking,
// involution, address isolation) of the circuits this module builds. It is
// deliberately small: H, X, CX and MCX kernels, barriers as no-ops, and no
// measurement sampling. Qubit q is bit q of a basis index.
package statevec

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lightsout/circuit"
)

// MaxQubits bounds the simulated register (2^24 amplitudes).
const MaxQubits = 24

var (
	// ErrTooManyQubits indicates a request beyond MaxQubits.
	ErrTooManyQubits = errors.New("statevec: too many qubits")
	// ErrMeasurement indicates a Measure op, which this evaluator does not sample.
	ErrMeasurement = errors.New("statevec: measurement is not simulated")
	// ErrQubitRange indicates an op touching a qubit outside the state.
	ErrQubitRange = errors.New("statevec: qubit out of range")
)

// State is a normalised vector of 2^n complex amplitudes.
type State struct {
	n    int
	amps []complex128
}

// New returns |0…0⟩ on n qubits.
func New(n int) (*State, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("New(%d): %w", n, ErrTooManyQubits)
	}
	amps := make([]complex128, 1<<n)
	amps[0] = 1

	return &State{n: n, amps: amps}, nil
}

// Basis returns the basis state |idx⟩ on n qubits.
func Basis(n, idx int) (*State, error) {
	s, err := New(n)
	if err != nil {
		return nil, err
	}
	s.amps[0] = 0
	s.amps[idx] = 1

	return s, nil
}

// NumQubits returns n.
func (s *State) NumQubits() int { return s.n }

// Amplitude returns the amplitude of basis state idx.
func (s *State) Amplitude(idx int) complex128 { return s.amps[idx] }

// Probability returns |amplitude|² of basis state idx.
func (s *State) Probability(idx int) float64 {
	a := s.amps[idx]
	return real(a)*real(a) + imag(a)*imag(a)
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	return &State{n: s.n, amps: append([]complex128(nil), s.amps...)}
}

// Equal reports whether every amplitude differs by at most eps.
func (s *State) Equal(o *State, eps float64) bool {
	if s.n != o.n {
		return false
	}
	for i := range s.amps {
		if cmplx.Abs(s.amps[i]-o.amps[i]) > eps {
			return false
		}
	}

	return true
}

// Run applies ops in order.
func (s *State) Run(ops []circuit.Op) error {
	for i, op := range ops {
		if err := s.Apply(op); err != nil {
			return fmt.Errorf("Run: op %d (%s): %w", i, op, err)
		}
	}

	return nil
}

// Apply applies one op.
func (s *State) Apply(op circuit.Op) error {
	switch op.Kind {
	case circuit.KindBarrier:
		return nil
	case circuit.KindMeasure:
		return ErrMeasurement
	}
	if op.Target < 0 || op.Target >= s.n {
		return ErrQubitRange
	}
	var ctrl int
	for _, q := range op.Controls {
		if q < 0 || q >= s.n {
			return ErrQubitRange
		}
		ctrl |= 1 << q
	}
	t := 1 << op.Target

	switch op.Kind {
	case circuit.KindH:
		h := complex(1/math.Sqrt2, 0)
		for i := range s.amps {
			if i&t != 0 {
				continue
			}
			a, b := s.amps[i], s.amps[i|t]
			s.amps[i], s.amps[i|t] = h*(a+b), h*(a-b)
		}
	case circuit.KindX, circuit.KindCX, circuit.KindMCX:
		for i := range s.amps {
			if i&t != 0 || i&ctrl != ctrl {
				continue
			}
			s.amps[i], s.amps[i|t] = s.amps[i|t], s.amps[i]
		}
	default:
		return fmt.Errorf("unsupported op kind %s", op.Kind)
	}

	return nil
}

// Marginal returns the probability of each value of the given qubits,
// indexed by Σ bit(qubits[k])·2^k.
func (s *State) Marginal(qubits []int) []float64 {
	out := make([]float64, 1<<len(qubits))
	for i := range s.amps {
		p := s.Probability(i)
		if p == 0 {
			continue
		}
		out[Extract(i, qubits)] += p
	}

	return out
}

// Extract packs the bits of idx at positions qubits into Σ bit·2^k.
func Extract(idx int, qubits []int) int {
	v := 0
	for k, q := range qubits {
		if idx>>q&1 == 1 {
			v |= 1 << k
		}
	}

	return v
}
