// SPDX-License-Identifier: MIT

// Package matrix - arithmetic over GF(2).
//
// Addition is XOR and multiplication is AND. A Lights Out press vector x
// switches every light off exactly when T·x = layout, so Solve on the toggle
// matrix is the classical counterpart of the search oracle.

package matrix

import (
	"fmt"
	"slices"
)

// MaxFreeVariables bounds the null-space dimension Solve will enumerate.
const MaxFreeVariables = 20

// MulVec returns m·x over GF(2).
// Returns ErrDimensionMismatch if len(x) != Size(), ErrNonBinary for entries > 1.
// Complexity: O(n²).
func (m *Binary) MulVec(x []uint8) ([]uint8, error) {
	if err := m.checkVector("MulVec", x); err != nil {
		return nil, err
	}
	out := make([]uint8, m.n)
	for i := 0; i < m.n; i++ {
		var acc uint8
		base := i * m.n
		for j := 0; j < m.n; j++ {
			acc ^= m.data[base+j] & x[j]
		}
		out[i] = acc
	}

	return out, nil
}

// Rank returns the rank of m over GF(2).
func (m *Binary) Rank() int {
	rows := m.augment(make([]uint8, m.n))
	pivots := eliminate(rows, m.n)

	return len(pivots)
}

// Solve returns every x with m·x = b over GF(2), ordered by the integer
// value Σ x[i]·2^i ascending.
//
// Implementation:
//   - Stage 1: Gauss–Jordan elimination on [m | b] to reduced row echelon form.
//   - Stage 2: reject inconsistent rows (0 = 1) with ErrInconsistent.
//   - Stage 3: enumerate all assignments of the free columns and back-fill pivots.
//
// Errors: ErrDimensionMismatch, ErrNonBinary, ErrInconsistent,
// ErrTooManySolutions (more than MaxFreeVariables free columns).
//
// Complexity: O(n³ + 2^f·n²) for f free columns.
func (m *Binary) Solve(b []uint8) ([][]uint8, error) {
	if err := m.checkVector("Solve", b); err != nil {
		return nil, err
	}
	n := m.n
	rows := m.augment(b)
	pivots := eliminate(rows, n)

	for i := len(pivots); i < n; i++ {
		if rows[i][n] == 1 {
			return nil, fmt.Errorf("Solve: row %d reduces to 0 = 1: %w", i, ErrInconsistent)
		}
	}

	isPivot := make([]bool, n)
	for _, col := range pivots {
		isPivot[col] = true
	}
	var free []int
	for col := 0; col < n; col++ {
		if !isPivot[col] {
			free = append(free, col)
		}
	}
	if len(free) > MaxFreeVariables {
		return nil, fmt.Errorf("Solve: %d free variables: %w", len(free), ErrTooManySolutions)
	}

	total := 1 << len(free)
	out := make([][]uint8, 0, total)
	for mask := 0; mask < total; mask++ {
		x := make([]uint8, n)
		for k, col := range free {
			x[col] = uint8((mask >> k) & 1)
		}
		for i, col := range pivots {
			v := rows[i][n]
			for _, f := range free {
				v ^= rows[i][f] & x[f]
			}
			x[col] = v
		}
		out = append(out, x)
	}
	slices.SortFunc(out, compareLittleEndian)

	return out, nil
}

// checkVector validates length and 0/1 entries of an operand vector.
func (m *Binary) checkVector(method string, v []uint8) error {
	if len(v) != m.n {
		return fmt.Errorf("%s: vector length %d, want %d: %w", method, len(v), m.n, ErrDimensionMismatch)
	}
	for i, x := range v {
		if x > 1 {
			return fmt.Errorf("%s: entry %d = %d: %w", method, i, x, ErrNonBinary)
		}
	}

	return nil
}

// augment copies m into n rows of width n+1 with b as the last column.
func (m *Binary) augment(b []uint8) [][]uint8 {
	rows := make([][]uint8, m.n)
	for i := range rows {
		row := make([]uint8, m.n+1)
		copy(row, m.data[i*m.n:(i+1)*m.n])
		row[m.n] = b[i]
		rows[i] = row
	}

	return rows
}

// eliminate reduces rows (width cols+1) to RREF in place and returns the
// pivot column of each leading row, in row order.
func eliminate(rows [][]uint8, cols int) []int {
	var pivots []int
	r := 0
	for col := 0; col < cols && r < len(rows); col++ {
		p := -1
		for i := r; i < len(rows); i++ {
			if rows[i][col] == 1 {
				p = i
				break
			}
		}
		if p < 0 {
			continue // free column
		}
		rows[r], rows[p] = rows[p], rows[r]
		for i := range rows {
			if i == r || rows[i][col] == 0 {
				continue
			}
			for j := col; j <= cols; j++ {
				rows[i][j] ^= rows[r][j]
			}
		}
		pivots = append(pivots, col)
		r++
	}

	return pivots
}

// compareLittleEndian orders vectors by Σ v[i]·2^i without overflow.
func compareLittleEndian(a, b []uint8) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}

	return 0
}
