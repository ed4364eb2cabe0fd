// SPDX-License-Identifier: MIT

package grover

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lightsout/address"
	"github.com/katalvlaran/lightsout/circuit"
	"github.com/katalvlaran/lightsout/diffusion"
	"github.com/katalvlaran/lightsout/oracle"
	"github.com/katalvlaran/lightsout/puzzle"
	"github.com/katalvlaran/lightsout/toggle"
)

// Registers are the declared wires of a procedure. Address and AddrBits are
// zero Registers for a batch of one; Bits and AddrBits are zero without
// measurement.
type Registers struct {
	Solution circuit.Register
	Ancilla  circuit.Register
	Address  circuit.Register
	Bits     circuit.Register
	AddrBits circuit.Register
}

// Widths reports the size of every register.
type Widths struct {
	Solution int
	Ancilla  int
	Address  int
	Bits     int
	AddrBits int
}

// Procedure is a finished search: the circuit plus the facts needed to read
// it back. It is immutable once returned.
type Procedure struct {
	circuit    *circuit.Circuit
	regs       Registers
	iterations int
	instances  []oracle.Instance
	book       address.Book
	trace      []State
}

// Circuit returns the assembled circuit.
func (p *Procedure) Circuit() *circuit.Circuit { return p.circuit }

// Ops returns a copy of the ordered operations.
func (p *Procedure) Ops() []circuit.Op { return p.circuit.Ops() }

// Registers returns the declared registers.
func (p *Procedure) Registers() Registers { return p.regs }

// Widths returns the register sizes.
func (p *Procedure) Widths() Widths {
	return Widths{
		Solution: p.regs.Solution.Size,
		Ancilla:  p.regs.Ancilla.Size,
		Address:  p.regs.Address.Size,
		Bits:     p.regs.Bits.Size,
		AddrBits: p.regs.AddrBits.Size,
	}
}

// Iterations returns the number of oracle/diffusion rounds.
func (p *Procedure) Iterations() int { return p.iterations }

// InstanceCount returns the batch size.
func (p *Procedure) InstanceCount() int { return len(p.instances) }

// Instances returns a copy of the per-puzzle contexts.
func (p *Procedure) Instances() []oracle.Instance {
	return append([]oracle.Instance(nil), p.instances...)
}

// Book returns the address codes of the batch.
func (p *Procedure) Book() address.Book { return p.book }

// Trace returns the phases entered during assembly, in order.
func (p *Procedure) Trace() []State {
	return append([]State(nil), p.trace...)
}

// Solver builds procedures with a fixed set of options. It holds no
// per-build state and may be shared.
type Solver struct {
	opts Options
}

// NewSolver applies opts over DefaultOptions.
func NewSolver(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}

	return &Solver{opts: o}
}

// Options returns the solver's effective options.
func (s *Solver) Options() Options { return s.opts }

// Build is NewSolver(opts...).Build(batch).
func Build(batch []*puzzle.Puzzle, opts ...Option) (*Procedure, error) {
	return NewSolver(opts...).Build(batch)
}

// assembly carries one Build through its phases.
type assembly struct {
	log   *slog.Logger
	opts  Options
	c     *circuit.Circuit
	proc  *Procedure
	orc   *oracle.Constructor
	state State
}

func (a *assembly) enter(s State) {
	a.state = s
	a.proc.trace = append(a.proc.trace, s)
	a.log.Debug("grover: phase", slog.String("state", s.String()), slog.Int("ops", a.c.Len()))
}

// Build assembles the search procedure for batch.
//
// Returns oracle.ErrEmptyBatch, oracle.ErrNilPuzzle or oracle.ErrSizeMismatch
// (all lightsout.ErrConfiguration) for an unusable batch,
// ErrIterationOverflow when the derived k does not fit in an int, and
// ErrTooManyOps when k rounds would exceed MaxOps.
// Complexity: O(k·N) ops for k iterations over N cells, plus O(B·N) bias ops.
func (s *Solver) Build(batch []*puzzle.Puzzle) (*Procedure, error) {
	a := &assembly{
		log:  s.opts.Logger,
		opts: s.opts,
		c:    circuit.New(),
		proc: &Procedure{},
	}
	a.proc.circuit = a.c

	if err := a.init(batch); err != nil {
		a.log.Warn("grover: build rejected", slog.String("state", a.state.String()), slog.Any("error", err))
		return nil, fmt.Errorf("Build: %w", err)
	}
	if err := a.superpose(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for i := 0; i < a.proc.iterations; i++ {
		start := a.c.Len()
		a.enter(StateOracle)
		a.orc.Apply(a.c)
		a.enter(StateDiffuse)
		if err := diffusion.Apply(a.c, a.proc.regs.Solution, a.opts.Barriers); err != nil {
			return nil, fmt.Errorf("Build: iteration %d: %w", i, err)
		}
		if i == 0 {
			if err := a.checkBudget(a.c.Len() - start); err != nil {
				a.log.Warn("grover: build rejected", slog.String("state", a.state.String()), slog.Any("error", err))
				return nil, fmt.Errorf("Build: %w", err)
			}
		}
	}
	if a.opts.Measure {
		a.enter(StateMeasure)
		a.c.MeasureRegister(a.proc.regs.Solution, a.proc.regs.Bits)
		if !a.proc.regs.Address.Empty() {
			a.c.MeasureRegister(a.proc.regs.Address, a.proc.regs.AddrBits)
		}
	}
	a.enter(StateDone)

	a.log.Info("grover: procedure built",
		slog.Int("instances", len(a.proc.instances)),
		slog.Int("qubits", a.c.NumQubits()),
		slog.Int("clbits", a.c.NumClbits()),
		slog.Int("iterations", a.proc.iterations),
		slog.Int("ops", a.c.Len()),
	)

	return a.proc, nil
}

// checkBudget projects the final op count from the cost of one round and
// rejects it when it exceeds MaxOps. The first round is already appended.
func (a *assembly) checkBudget(perRound int) error {
	limit := a.opts.MaxOps
	if limit <= 0 {
		return nil
	}
	// Ops before the first round plus the measurements.
	fixed := a.c.Len() - perRound
	if a.opts.Measure {
		fixed += a.proc.regs.Bits.Size + a.proc.regs.AddrBits.Size
	}
	k := a.proc.iterations
	if fixed > limit || k > (limit-fixed)/perRound {
		return fmt.Errorf("%d rounds of %d ops, limit %d: %w", k, perRound, limit, ErrTooManyOps)
	}

	return nil
}

// init validates the batch, derives k and declares the registers.
func (a *assembly) init(batch []*puzzle.Puzzle) error {
	a.enter(StateInit)
	insts, book, err := oracle.Instances(batch)
	if err != nil {
		return err
	}
	n := insts[0].Puzzle.LayoutLength()
	toggles, err := toggle.FromPuzzle(insts[0].Puzzle)
	if err != nil {
		return err
	}
	k := a.opts.Iterations
	if k < 0 {
		if k, err = Iterations(n); err != nil {
			return err
		}
	}

	regs, err := a.declare(n, book.Width)
	if err != nil {
		return err
	}
	orc, err := oracle.New(oracle.Registers{
		Solution: regs.Solution,
		Ancilla:  regs.Ancilla,
		Address:  regs.Address,
	}, toggles, oracle.WithBarriers(a.opts.Barriers))
	if err != nil {
		return err
	}

	a.orc = orc
	a.proc.regs = regs
	a.proc.iterations = k
	a.proc.instances = insts
	a.proc.book = book
	a.log.Debug("grover: batch accepted",
		slog.Int("cells", n),
		slog.Int("instances", len(insts)),
		slog.Int("address_width", book.Width),
		slog.Int("iterations", k),
	)

	return nil
}

func (a *assembly) declare(n, width int) (Registers, error) {
	var (
		regs Registers
		err  error
	)
	if regs.Solution, err = a.c.AddQubits(RegSolution, n); err != nil {
		return regs, err
	}
	if regs.Ancilla, err = a.c.AddQubits(RegAncilla, n); err != nil {
		return regs, err
	}
	if width > 0 {
		if regs.Address, err = a.c.AddQubits(RegAddress, width); err != nil {
			return regs, err
		}
	}
	if !a.opts.Measure {
		return regs, nil
	}
	if regs.Bits, err = a.c.AddClbits(RegBits, n); err != nil {
		return regs, err
	}
	if width > 0 {
		if regs.AddrBits, err = a.c.AddClbits(RegAddrBits, width); err != nil {
			return regs, err
		}
	}

	return regs, nil
}

// superpose spreads sol and addr, then writes every instance's bias.
func (a *assembly) superpose() error {
	a.enter(StateSuperpose)
	a.c.H(a.proc.regs.Solution.All()...)
	a.c.H(a.proc.regs.Address.All()...)
	if a.opts.Barriers {
		a.c.Barrier()
	}
	for _, inst := range a.proc.instances {
		if err := a.orc.Bias(a.c, inst); err != nil {
			return err
		}
	}

	return nil
}
