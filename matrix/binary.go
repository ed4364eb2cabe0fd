// SPDX-License-Identifier: MIT

// Package matrix - Binary storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Return errors from public indexers instead of panicking.
//   - Fixed loop orders only, so every derived result is deterministic.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxToggle = "Toggle"
	ctxRow    = "Row"
)

// binaryErrorf wraps an error with a uniform Binary context and callsite indices.
func binaryErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Binary.%s(%d,%d): %w", method, row, col, err)
}

// Binary is a square 0/1 matrix.
//   - n is the row and column count.
//   - data holds n*n entries in row-major order (offset = i*n + j).
type Binary struct {
	n    int
	data []uint8
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Binary)(nil)

// NewBinary creates an n×n zero matrix.
// Returns ErrInvalidDimensions if n <= 0.
// Complexity: O(n²) time and memory.
func NewBinary(n int) (*Binary, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Binary{n: n, data: make([]uint8, n*n)}, nil
}

// FromRows builds a Binary from equal-length rows of 0/1 values.
// Returns ErrInvalidDimensions, ErrDimensionMismatch or ErrNonBinary.
func FromRows(rows [][]uint8) (*Binary, error) {
	m, err := NewBinary(len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.n {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), m.n, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Size returns n, the number of rows (and columns).
func (m *Binary) Size() int {
	return m.n
}

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Binary) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, binaryErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At returns the entry at (row, col).
// Complexity: O(1).
func (m *Binary) At(row, col int) (uint8, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v (0 or 1) at (row, col).
// Returns ErrOutOfRange or ErrNonBinary.
func (m *Binary) Set(row, col int, v uint8) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if v > 1 {
		return binaryErrorf(ctxSet, row, col, ErrNonBinary)
	}
	m.data[idx] = v

	return nil
}

// Toggle flips the entry at (row, col).
func (m *Binary) Toggle(row, col int) error {
	idx, err := m.indexOf(ctxToggle, row, col)
	if err != nil {
		return err
	}
	m.data[idx] ^= 1

	return nil
}

// Row returns a copy of row i.
func (m *Binary) Row(i int) ([]uint8, error) {
	if i < 0 || i >= m.n {
		return nil, binaryErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]uint8, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Ones returns the column indices of the 1 entries in row i, ascending.
func (m *Binary) Ones(i int) ([]int, error) {
	if i < 0 || i >= m.n {
		return nil, binaryErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	var out []int
	base := i * m.n
	for j := 0; j < m.n; j++ {
		if m.data[base+j] == 1 {
			out = append(out, j)
		}
	}

	return out, nil
}

// RowSum returns the number of 1 entries in row i.
func (m *Binary) RowSum(i int) (int, error) {
	ones, err := m.Ones(i)
	if err != nil {
		return 0, err
	}

	return len(ones), nil
}

// IsSymmetric reports whether m[i][j] == m[j][i] for all i, j.
// Complexity: O(n²).
func (m *Binary) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// DiagonalOnes reports whether every diagonal entry is 1.
func (m *Binary) DiagonalOnes() bool {
	for i := 0; i < m.n; i++ {
		if m.data[i*m.n+i] != 1 {
			return false
		}
	}

	return true
}

// Equal reports whether both matrices have the same size and entries.
func (m *Binary) Equal(o *Binary) bool {
	if m == nil || o == nil || m.n != o.n {
		return m == o
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders one row per line with space-separated entries.
func (m *Binary) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + m.data[i*m.n+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
