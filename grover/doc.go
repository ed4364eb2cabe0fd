// Package grover assembles the complete amplitude-amplification procedure
// that searches for Lights Out press vectors, for one puzzle or a batch.
//
// Assembly runs through a fixed sequence of phases:
//
//	INIT → SUPERPOSE → (ORACLE → DIFFUSE)×k → MEASURE → DONE
//
//	– INIT:      validate the batch, derive address codes and the toggle matrix,
//	             declare the registers.
//	– SUPERPOSE: H on every solution qubit (and address qubit), then the
//	             oracle bias of every instance.
//	– ORACLE:    one oracle.Constructor.Apply.
//	– DIFFUSE:   diffusion on the solution register.
//	– MEASURE:   solution → "bits", address → "addr_bits".
//
// The iteration count is k = ⌊√(2^N)⌋ − 1 for N cells, computed exactly with
// math/big. k = 0 is legal and yields superposition followed by measurement.
//
// Registers (global indices):
//
//	sol  [0, N)       anc  [N, 2N)       addr [2N, 2N+w)
//	bits [0, N)       addr_bits [N, N+w)
//
// Options:
//
//	– WithLogger:         structured construction log (default: discarded).
//	– WithBarriers:       barriers between phases (default: on).
//	– WithIterations:     override k (must be ≥ 0).
//	– WithoutMeasurement: stop after the last diffusion, for simulation.
//	– WithMaxOps:         cap on the op count (default DefaultMaxOps).
//
// k grows as 2^(N/2): a 5×5 board needs 5791 rounds, a 7×7 board about
// 2.4·10⁷. Build checks the projected size after the first round and fails
// with ErrTooManyOps instead of exhausting memory.
//
// Errors (sentinel):
//
//	– ErrNegativeCells     if Iterations is asked about fewer than zero cells.
//	– ErrIterationOverflow if k does not fit in an int.
//	– ErrTooManyOps        if the procedure would exceed MaxOps.
//	– oracle.ErrEmptyBatch, oracle.ErrNilPuzzle, oracle.ErrSizeMismatch from Build.
//
// Every configuration error wraps lightsout.ErrConfiguration.
//
// Example usage:
//
//	proc, err := grover.Build([]*puzzle.Puzzle{p})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, _ := proc.Circuit().QASM()
package grover
