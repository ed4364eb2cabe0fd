// Package address computes the fixed-width binary codes that select one
// puzzle instance inside a batched search.
//
// For a batch of B > 1 puzzles the address register holds w qubits, where w
// is the bit length of B−1, and instance i is addressed by the zero-padded
// binary string of i. Character j of a code drives address qubit j. A batch
// of one needs no address register at all.
//
// Errors:
//
//   - ErrEmptyBatch: B = 0 (a lightsout.ErrConfiguration).
package address
