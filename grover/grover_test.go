package grover_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lightsout"
	"github.com/katalvlaran/lightsout/circuit"
	"github.com/katalvlaran/lightsout/grover"
	"github.com/katalvlaran/lightsout/oracle"
	"github.com/katalvlaran/lightsout/puzzle"
)

//----------------------------------------------------------------------------//
// Iterations
//----------------------------------------------------------------------------//

// TestIterations checks k = ⌊√(2^N)⌋ − 1 on even and odd N.
func TestIterations(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{4, 3},
		{9, 21},
		{16, 255},
		{25, 5791},
		{61, 1518500248},
	}
	for _, tc := range tests {
		got, err := grover.Iterations(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.want, got, "n=%d", tc.n)
	}

	_, err := grover.Iterations(-1)
	assert.ErrorIs(t, err, grover.ErrNegativeCells)
	assert.ErrorIs(t, err, lightsout.ErrConfiguration)

	_, err = grover.Iterations(200)
	assert.ErrorIs(t, err, grover.ErrIterationOverflow)
}

//----------------------------------------------------------------------------//
// States and options
//----------------------------------------------------------------------------//

// TestState_String covers every phase name and the fallback.
func TestState_String(t *testing.T) {
	assert.Equal(t, "INIT", grover.StateInit.String())
	assert.Equal(t, "SUPERPOSE", grover.StateSuperpose.String())
	assert.Equal(t, "ORACLE", grover.StateOracle.String())
	assert.Equal(t, "DIFFUSE", grover.StateDiffuse.String())
	assert.Equal(t, "MEASURE", grover.StateMeasure.String())
	assert.Equal(t, "DONE", grover.StateDone.String())
	assert.Equal(t, "State(42)", grover.State(42).String())
}

// TestOptions checks defaults and overrides.
func TestOptions(t *testing.T) {
	def := grover.DefaultOptions()
	assert.True(t, def.Barriers)
	assert.True(t, def.Measure)
	assert.Equal(t, -1, def.Iterations)
	assert.NotNil(t, def.Logger)

	s := grover.NewSolver(grover.WithLogger(nil), grover.WithIterations(2), grover.WithBarriers(false), grover.WithoutMeasurement())
	o := s.Options()
	assert.NotNil(t, o.Logger)
	assert.Equal(t, 2, o.Iterations)
	assert.False(t, o.Barriers)
	assert.False(t, o.Measure)

	assert.PanicsWithValue(t, grover.ErrNegativeIterations.Error(), func() {
		grover.NewSolver(grover.WithIterations(-1))
	})
}

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

// TestBuild_Errors: unusable batches are configuration errors.
func TestBuild_Errors(t *testing.T) {
	two := puzzle.MustNew([]int{1, 0, 0, 0})
	three := puzzle.MustNew(make([]int, 9))
	tests := []struct {
		name  string
		batch []*puzzle.Puzzle
		want  error
	}{
		{"empty", nil, oracle.ErrEmptyBatch},
		{"nil entry", []*puzzle.Puzzle{two, nil}, oracle.ErrNilPuzzle},
		{"mixed sizes", []*puzzle.Puzzle{two, three}, oracle.ErrSizeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			proc, err := grover.Build(tc.batch)
			require.Error(t, err)
			assert.Nil(t, proc)
			assert.True(t, errors.Is(err, tc.want))
			assert.True(t, errors.Is(err, lightsout.ErrConfiguration))
		})
	}
}

// TestBuild_Single2x2 checks registers, trace and op counts for one puzzle.
func TestBuild_Single2x2(t *testing.T) {
	proc, err := grover.Build([]*puzzle.Puzzle{puzzle.MustNew([]int{1, 0, 0, 0})})
	require.NoError(t, err)

	assert.Equal(t, grover.Widths{Solution: 4, Ancilla: 4, Bits: 4}, proc.Widths())
	assert.Equal(t, 3, proc.Iterations())
	assert.Equal(t, 1, proc.InstanceCount())
	assert.False(t, proc.Book().Batched())

	regs := proc.Registers()
	assert.Equal(t, 0, regs.Solution.Offset)
	assert.Equal(t, 4, regs.Ancilla.Offset)
	assert.True(t, regs.Address.Empty())
	assert.True(t, regs.AddrBits.Empty())

	assert.Equal(t, []grover.State{
		grover.StateInit, grover.StateSuperpose,
		grover.StateOracle, grover.StateDiffuse,
		grover.StateOracle, grover.StateDiffuse,
		grover.StateOracle, grover.StateDiffuse,
		grover.StateMeasure, grover.StateDone,
	}, proc.Trace())

	st := proc.Circuit().Stats()
	assert.Equal(t, 4, st.Measures)
	// Bias: 3 X. Diffusion: 8 X per round.
	assert.Equal(t, 3+3*8, st.X)
	// Accumulate twice per oracle, 12 CX each.
	assert.Equal(t, 3*2*12, st.CX)
	// Mark and diffusion each use one MCX per round.
	assert.Equal(t, 3*2, st.MCX)
	assert.Equal(t, 3, st.MaxControls)

	ops := proc.Ops()
	last := ops[len(ops)-1]
	assert.Equal(t, circuit.KindMeasure, last.Kind)
	assert.Equal(t, 3, last.Target)
	assert.Equal(t, 3, last.Clbit)
}

// TestBuild_Batched declares the address register and measures it.
func TestBuild_Batched(t *testing.T) {
	batch := []*puzzle.Puzzle{
		puzzle.MustNew([]int{1, 0, 0, 0}),
		puzzle.MustNew([]int{1, 1, 1, 1}),
		puzzle.MustNew([]int{0, 0, 0, 0}),
	}
	proc, err := grover.Build(batch)
	require.NoError(t, err)

	assert.Equal(t, grover.Widths{Solution: 4, Ancilla: 4, Address: 2, Bits: 4, AddrBits: 2}, proc.Widths())
	regs := proc.Registers()
	assert.Equal(t, 8, regs.Address.Offset)
	assert.Equal(t, 4, regs.AddrBits.Offset)
	assert.Equal(t, 3, proc.InstanceCount())
	for i, inst := range proc.Instances() {
		assert.Equal(t, proc.Book().Codes[i], inst.Code)
	}
	assert.Equal(t, 6, proc.Circuit().Stats().Measures)
}

// TestBuild_ZeroIterations: superposition, bias, then measurement only.
func TestBuild_ZeroIterations(t *testing.T) {
	proc, err := grover.Build(
		[]*puzzle.Puzzle{puzzle.MustNew([]int{0, 1, 1, 1})},
		grover.WithIterations(0),
		grover.WithBarriers(false),
	)
	require.NoError(t, err)
	assert.Equal(t, []grover.State{
		grover.StateInit, grover.StateSuperpose, grover.StateMeasure, grover.StateDone,
	}, proc.Trace())

	st := proc.Circuit().Stats()
	assert.Equal(t, 4, st.H)
	assert.Equal(t, 1, st.X)
	assert.Equal(t, 4, st.Measures)
	assert.Equal(t, 0, st.Barriers)
	assert.Equal(t, 9, st.Ops)
}

// TestBuild_WithoutMeasurement drops the classical registers.
func TestBuild_WithoutMeasurement(t *testing.T) {
	proc, err := grover.Build([]*puzzle.Puzzle{puzzle.MustNew([]int{1, 1, 1, 1})}, grover.WithoutMeasurement())
	require.NoError(t, err)
	assert.Equal(t, 0, proc.Circuit().NumClbits())
	assert.Equal(t, 0, proc.Circuit().Stats().Measures)
	assert.Equal(t, grover.StateDone, proc.Trace()[len(proc.Trace())-1])
	assert.NotContains(t, proc.Trace(), grover.StateMeasure)
}

// TestBuild_Deterministic: same input, same ops.
func TestBuild_Deterministic(t *testing.T) {
	batch := []*puzzle.Puzzle{puzzle.MustNew([]int{1, 0, 1, 0, 1, 0, 1, 0, 1})}
	a, err := grover.Build(batch, grover.WithIterations(2))
	require.NoError(t, err)
	b, err := grover.Build(batch, grover.WithIterations(2))
	require.NoError(t, err)
	assert.Equal(t, a.Ops(), b.Ops())
}

// TestBuild_Logging emits one Info record with the summary attributes.
func TestBuild_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	_, err := grover.Build([]*puzzle.Puzzle{puzzle.MustNew([]int{1, 0, 0, 0})}, grover.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "grover: procedure built")
	assert.Contains(t, out, "iterations=3")
	assert.Contains(t, out, "qubits=8")
	assert.Contains(t, out, "instances=1")
	assert.NotContains(t, out, "grover: phase")
}

// TestBuild_QASM exports the procedure.
func TestBuild_QASM(t *testing.T) {
	proc, err := grover.Build([]*puzzle.Puzzle{puzzle.MustNew([]int{1, 0, 0, 0}), puzzle.MustNew([]int{0, 0, 0, 0})})
	require.NoError(t, err)
	text, err := proc.Circuit().QASM()
	require.NoError(t, err)
	assert.Contains(t, text, "qubit[4] sol;")
	assert.Contains(t, text, "qubit[4] anc;")
	assert.Contains(t, text, "qubit[1] addr;")
	assert.Contains(t, text, "bit[4] bits;")
	assert.Contains(t, text, "bit[1] addr_bits;")
	assert.Contains(t, text, "ctrl(3) @ x anc[0], anc[1], anc[2], anc[3];")
	assert.Contains(t, text, "addr_bits[0] = measure addr[0];")
}

// TestBuild_MaxOps rejects procedures whose projected size exceeds the cap
// after building only the first round.
func TestBuild_MaxOps(t *testing.T) {
	assert.Equal(t, grover.DefaultMaxOps, grover.DefaultOptions().MaxOps)

	// 7x7: k ≈ 2.4·10⁷ rounds, far above the default cap.
	big := puzzle.MustNew(make([]int, 49))
	proc, err := grover.Build([]*puzzle.Puzzle{big})
	require.Error(t, err)
	assert.Nil(t, proc)
	assert.ErrorIs(t, err, grover.ErrTooManyOps)
	assert.ErrorIs(t, err, lightsout.ErrConfiguration)

	// A tight cap trips on a small board; an exact one does not.
	small := []*puzzle.Puzzle{puzzle.MustNew([]int{1, 0, 0, 0})}
	ref, err := grover.Build(small)
	require.NoError(t, err)
	total := ref.Circuit().Len()

	_, err = grover.Build(small, grover.WithMaxOps(total-1))
	assert.ErrorIs(t, err, grover.ErrTooManyOps)
	_, err = grover.Build(small, grover.WithMaxOps(total))
	assert.NoError(t, err)
	_, err = grover.Build(small, grover.WithMaxOps(0), grover.WithIterations(10))
	assert.NoError(t, err)

	assert.PanicsWithValue(t, grover.ErrBadMaxOps.Error(), func() {
		grover.NewSolver(grover.WithMaxOps(-1))
	})
}
