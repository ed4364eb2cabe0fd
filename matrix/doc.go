// Package matrix provides a square binary matrix with GF(2) arithmetic,
// used to hold Lights Out toggle matrices and to solve press systems
// classically.
//
// The matrix package provides:
//
//   - Binary: an n×n 0/1 matrix in row-major storage with O(1) At/Set.
//   - Structural checks (IsSymmetric, DiagonalOnes, RowSum) used by the
//     toggle-matrix guarantees.
//   - MulVec: matrix–vector product over GF(2) (XOR of selected rows).
//   - Solve: Gauss–Jordan elimination over GF(2) returning every solution
//     of A·x = b, used as the classical reference the oracle is checked against.
//
// Binary matrices are dense; memory is O(n²) bytes.
package matrix
