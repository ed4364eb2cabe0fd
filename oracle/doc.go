// Package oracle builds the reversible marking logic that flags press
// vectors solving a Lights Out puzzle.
//
// Registers:
//
//   - Solution (N qubits): candidate press vector x.
//   - Ancilla  (N qubits): one satisfaction flag per cell.
//   - Address  (w qubits, batched only): which instance a branch belongs to.
//
// Construction:
//
//   - Bias: flip Ancilla[i] for every cell that is initially off. In batched
//     mode each flip is an MCX controlled by the address register, wrapped in
//     X flips on the positions coded '0' so it only fires on the instance's
//     own address branch. The sandwich is appended atomically.
//   - Accumulate: Ancilla[i] ^= ⊕_j T[i][j]·x[j] via CX gates. After bias and
//     accumulation, Ancilla[i] = 1 exactly when cell i ends up off.
//   - Mark: phase flip on the all-ones Ancilla (H, MCX, H on the last flag).
//   - Apply: Accumulate, Mark, Accumulate; the second accumulation restores
//     the ancilla to its bias.
//
// Errors:
//
//   - ErrEmptyBatch, ErrSizeMismatch, ErrNilPuzzle, ErrRegisters, ErrCodeWidth wrap
//     lightsout.ErrConfiguration.
package oracle
