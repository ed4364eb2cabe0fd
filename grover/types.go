// SPDX-License-Identifier: MIT

package grover

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lightsout"
)

// Sentinel errors returned by the assembler.
var (
	// ErrNegativeCells indicates a negative cell count passed to Iterations.
	ErrNegativeCells = fmt.Errorf("grover: cell count must be non-negative: %w", lightsout.ErrConfiguration)

	// ErrIterationOverflow indicates an iteration count that does not fit in an int.
	ErrIterationOverflow = errors.New("grover: iteration count overflows int")

	// ErrNegativeIterations is the panic message of WithIterations on k < 0.
	ErrNegativeIterations = errors.New("grover: iteration count must be non-negative")

	// ErrTooManyOps indicates a procedure that would exceed Options.MaxOps.
	ErrTooManyOps = fmt.Errorf("grover: procedure exceeds the op limit: %w", lightsout.ErrConfiguration)

	// ErrBadMaxOps is the panic message of WithMaxOps on n < 0.
	ErrBadMaxOps = errors.New("grover: MaxOps must be non-negative")
)

// DefaultMaxOps bounds the op list of a procedure. A 5×5 board
// (k = 5791) stays well below it; a 7×7 board does not.
const DefaultMaxOps = 1 << 24

// Register names used by Build.
const (
	RegSolution = "sol"
	RegAncilla  = "anc"
	RegAddress  = "addr"
	RegBits     = "bits"
	RegAddrBits = "addr_bits"
)

// State is a phase of assembly.
type State int

const (
	// StateInit validates input and declares registers.
	StateInit State = iota
	// StateSuperpose spreads the search registers and biases the ancilla.
	StateSuperpose
	// StateOracle applies one oracle call.
	StateOracle
	// StateDiffuse applies one diffusion.
	StateDiffuse
	// StateMeasure reads the search registers out.
	StateMeasure
	// StateDone marks a finished procedure.
	StateDone
)

var stateNames = [...]string{
	StateInit:      "INIT",
	StateSuperpose: "SUPERPOSE",
	StateOracle:    "ORACLE",
	StateDiffuse:   "DIFFUSE",
	StateMeasure:   "MEASURE",
	StateDone:      "DONE",
}

// String returns the upper-case phase name.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Options configures Build.
//
// Logger     – receives construction records; nil is replaced by a discard logger.
// Barriers   – emit barriers between phases.
// Iterations – k override; -1 means ⌊√(2^N)⌋ − 1.
// Measure    – append the MEASURE phase.
// MaxOps     – upper bound on the op count; 0 disables the check.
type Options struct {
	Logger     *slog.Logger
	Barriers   bool
	Iterations int
	Measure    bool
	MaxOps     int
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithLogger sets the construction logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithBarriers toggles barriers between phases.
func WithBarriers(on bool) Option {
	return func(o *Options) {
		o.Barriers = on
	}
}

// WithIterations fixes the number of oracle/diffusion rounds.
// Panics on k < 0.
func WithIterations(k int) Option {
	return func(o *Options) {
		if k < 0 {
			panic(ErrNegativeIterations.Error())
		}
		o.Iterations = k
	}
}

// WithoutMeasurement omits the MEASURE phase and the classical registers.
func WithoutMeasurement() Option {
	return func(o *Options) {
		o.Measure = false
	}
}

// WithMaxOps caps the op count of a procedure; 0 removes the cap.
// Panics on n < 0.
func WithMaxOps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxOps.Error())
		}
		o.MaxOps = n
	}
}

// DefaultOptions returns the defaults:
//   - Logger:     discard.
//   - Barriers:   true.
//   - Iterations: -1 (derived from the cell count).
//   - Measure:    true.
//   - MaxOps:     DefaultMaxOps.
func DefaultOptions() Options {
	return Options{
		Logger:     discardLogger(),
		Barriers:   true,
		Iterations: -1,
		Measure:    true,
		MaxOps:     DefaultMaxOps,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
