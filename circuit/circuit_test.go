package circuit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lightsout/circuit"
)

//----------------------------------------------------------------------------//
// Registers
//----------------------------------------------------------------------------//

// TestRegisters checks layout, lookups and declaration errors.
func TestRegisters(t *testing.T) {
	c := circuit.New()
	sol, err := c.AddQubits("sol", 4)
	require.NoError(t, err)
	anc, err := c.AddQubits("anc", 4)
	require.NoError(t, err)
	bits, err := c.AddClbits("bits", 4)
	require.NoError(t, err)

	assert.Equal(t, 0, sol.Offset)
	assert.Equal(t, 4, anc.Offset)
	assert.Equal(t, 0, bits.Offset)
	assert.True(t, bits.Classical)
	assert.Equal(t, 8, c.NumQubits())
	assert.Equal(t, 4, c.NumClbits())
	assert.Equal(t, []int{4, 5, 6, 7}, anc.All())
	assert.Equal(t, []int{4, 5, 6}, anc.Slice(0, 3))
	assert.Equal(t, 7, anc.Last())
	assert.True(t, anc.Contains(5))
	assert.False(t, anc.Contains(3))
	assert.True(t, circuit.Register{}.Empty())

	got, ok := c.Register("anc")
	require.True(t, ok)
	assert.Equal(t, anc, got)
	assert.Len(t, c.QubitRegisters(), 2)
	assert.Len(t, c.ClbitRegisters(), 1)

	_, err = c.AddQubits("sol", 1)
	require.ErrorIs(t, err, circuit.ErrDuplicateRegister)
	_, err = c.AddClbits("anc", 1)
	require.ErrorIs(t, err, circuit.ErrDuplicateRegister)
	_, err = c.AddQubits("extra", 0)
	require.ErrorIs(t, err, circuit.ErrBadSize)
	_, err = c.AddQubits("1bad", 1)
	require.ErrorIs(t, err, circuit.ErrBadName)
	_, err = c.AddQubits("", 1)
	require.ErrorIs(t, err, circuit.ErrBadName)

	require.Panics(t, func() { sol.At(4) })
	require.Panics(t, func() { sol.Slice(2, 5) })
}

//----------------------------------------------------------------------------//
// Gate emission
//----------------------------------------------------------------------------//

// TestGates verifies op shapes, MCX degeneration and index validation.
func TestGates(t *testing.T) {
	c := circuit.New()
	q, err := c.AddQubits("q", 4)
	require.NoError(t, err)
	b, err := c.AddClbits("c", 4)
	require.NoError(t, err)

	c.H(q.All()...)
	c.MCX(nil, 0)
	c.MCX([]int{0}, 1)
	c.MCX([]int{0, 1, 2}, 3)
	c.Barrier()
	c.MeasureRegister(q, b)

	ops := c.Ops()
	require.Len(t, ops, 4+1+1+1+1+4)
	assert.Equal(t, circuit.KindX, ops[4].Kind)
	assert.Equal(t, circuit.KindCX, ops[5].Kind)
	assert.Equal(t, circuit.KindMCX, ops[6].Kind)
	assert.Equal(t, []int{0, 1, 2}, ops[6].Controls)
	assert.Equal(t, []int{0, 1, 2, 3}, ops[7].Qubits)
	assert.Equal(t, "mcx q[0],q[1],q[2] -> q[3]", ops[6].String())
	assert.Equal(t, "measure q[3] -> c[3]", ops[11].String())

	ops[6].Controls[0] = 3
	assert.Equal(t, 0, c.Ops()[6].Controls[0], "Ops must return copies")

	require.Panics(t, func() { c.H(4) })
	require.Panics(t, func() { c.CX(1, 1) })
	require.Panics(t, func() { c.MCX([]int{0, 0}, 2) })
	require.Panics(t, func() { c.Measure(0, 4) })
	require.Panics(t, func() { c.MeasureRegister(q, circuit.Register{Name: "x", Size: 2, Classical: true}) })
}

// TestStats counts a small mixed circuit.
func TestStats(t *testing.T) {
	c := circuit.New()
	_, err := c.AddQubits("q", 5)
	require.NoError(t, err)
	_, err = c.AddClbits("c", 1)
	require.NoError(t, err)
	c.H(0, 1)
	c.X(2)
	c.CX(0, 2)
	c.MCX([]int{0, 1, 2, 3}, 4)
	c.Barrier(0, 1)
	c.Measure(4, 0)

	s := c.Stats()
	assert.Equal(t, circuit.Stats{
		Ops: 7, Gates: 5, H: 2, X: 1, CX: 1, MCX: 1, Barriers: 1, Measures: 1, MaxControls: 4,
	}, s)
}

//----------------------------------------------------------------------------//
// Conjugate sandwiches
//----------------------------------------------------------------------------//

// TestConjugate_Commit appends prefix, body and reversed prefix.
func TestConjugate_Commit(t *testing.T) {
	c := circuit.New()
	_, err := c.AddQubits("q", 3)
	require.NoError(t, err)

	prefix := []circuit.Op{
		{Kind: circuit.KindX, Target: 0, Clbit: -1},
		{Kind: circuit.KindH, Target: 1, Clbit: -1},
	}
	err = c.Conjugate(prefix, func(c *circuit.Circuit) error {
		c.MCX([]int{0, 1}, 2)
		return nil
	})
	require.NoError(t, err)

	ops := c.Ops()
	require.Len(t, ops, 5)
	kinds := []circuit.Kind{ops[0].Kind, ops[1].Kind, ops[2].Kind, ops[3].Kind, ops[4].Kind}
	assert.Equal(t, []circuit.Kind{circuit.KindX, circuit.KindH, circuit.KindMCX, circuit.KindH, circuit.KindX}, kinds)
	assert.Equal(t, 1, ops[3].Target)
	assert.Equal(t, 0, ops[4].Target)
}

// TestConjugate_RollbackOnError leaves no half sandwich behind.
func TestConjugate_RollbackOnError(t *testing.T) {
	c := circuit.New()
	_, err := c.AddQubits("q", 3)
	require.NoError(t, err)
	c.H(0)
	before := c.Ops()

	boom := errors.New("boom")
	err = c.WithFlipped([]int{1, 2}, func(c *circuit.Circuit) error {
		c.CX(1, 0)
		return c.WithFlipped([]int{0}, func(c *circuit.Circuit) error {
			c.CX(0, 2)
			return boom
		})
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, before, c.Ops())
}

// TestConjugate_RollbackOnPanic restores the circuit and re-raises.
func TestConjugate_RollbackOnPanic(t *testing.T) {
	c := circuit.New()
	_, err := c.AddQubits("q", 2)
	require.NoError(t, err)

	require.Panics(t, func() {
		_ = c.WithFlipped([]int{0}, func(c *circuit.Circuit) error {
			c.H(1)
			c.H(7) // out of range
			return nil
		})
	})
	require.Zero(t, c.Len())
}

// TestConjugate_Irreversible rejects a measuring prefix up front.
func TestConjugate_Irreversible(t *testing.T) {
	c := circuit.New()
	_, err := c.AddQubits("q", 1)
	require.NoError(t, err)
	_, err = c.AddClbits("c", 1)
	require.NoError(t, err)

	called := false
	err = c.Conjugate([]circuit.Op{{Kind: circuit.KindMeasure, Target: 0, Clbit: 0}}, func(*circuit.Circuit) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, circuit.ErrIrreversible)
	require.False(t, called)
	require.Zero(t, c.Len())
}

// TestRollback truncates to a checkpoint.
func TestRollback(t *testing.T) {
	c := circuit.New()
	_, err := c.AddQubits("q", 1)
	require.NoError(t, err)
	c.H(0)
	cp := c.Checkpoint()
	c.X(0)
	c.X(0)
	c.Rollback(cp)
	require.Equal(t, 1, c.Len())
	require.Panics(t, func() { c.Rollback(5) })
}
