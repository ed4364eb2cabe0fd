// SPDX-License-Identifier: MIT

package gridgraph

import "fmt"

// NewGrid returns the geometry of a side×side board.
// Returns ErrSideTooSmall if side < MinSide.
func NewGrid(side int) (*Grid, error) {
	if side < MinSide {
		return nil, fmt.Errorf("NewGrid(%d): %w", side, ErrSideTooSmall)
	}

	return &Grid{Side: side}, nil
}

// SideOf returns s such that s*s == cells, requiring s ≥ MinSide.
// Returns ErrNotSquare otherwise.
// Complexity: O(log cells).
func SideOf(cells int) (int, error) {
	if cells < MinSide*MinSide {
		return 0, fmt.Errorf("SideOf(%d): %w", cells, ErrNotSquare)
	}
	// Integer Newton iteration; avoids float rounding for large counts.
	x := cells
	y := x/2 + 1
	for y < x {
		x = y
		y = (x + cells/x) / 2
	}
	if x*x != cells {
		return 0, fmt.Errorf("SideOf(%d): %w", cells, ErrNotSquare)
	}

	return x, nil
}

// FromCells is NewGrid(SideOf(cells)).
func FromCells(cells int) (*Grid, error) {
	side, err := SideOf(cells)
	if err != nil {
		return nil, err
	}

	return NewGrid(side)
}

// Cells returns the number of cells, Side².
func (g *Grid) Cells() int {
	return g.Side * g.Side
}

// InBounds reports whether (r,c) lies on the board.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Side && c >= 0 && c < g.Side
}

// Index maps (r,c) to the row-major index r*Side + c.
// The result is meaningless when InBounds(r,c) is false.
func (g *Grid) Index(r, c int) int {
	return r*g.Side + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.Side, idx % g.Side
}

// Neighbors returns the flat indices of the orthogonal neighbours of idx,
// in N, E, S, W order, skipping those off the board.
// Returns ErrCellIndex if idx is outside the grid.
func (g *Grid) Neighbors(idx int) ([]int, error) {
	if idx < 0 || idx >= g.Cells() {
		return nil, fmt.Errorf("Neighbors(%d): %w", idx, ErrCellIndex)
	}
	r, c := g.Coordinate(idx)
	out := make([]int, 0, len(conn4))
	for _, d := range conn4 {
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		out = append(out, g.Index(nr, nc))
	}

	return out, nil
}

// Kind classifies idx by the number of borders it touches.
// Returns ErrCellIndex if idx is outside the grid.
func (g *Grid) Kind(idx int) (CellKind, error) {
	if idx < 0 || idx >= g.Cells() {
		return 0, fmt.Errorf("Kind(%d): %w", idx, ErrCellIndex)
	}
	r, c := g.Coordinate(idx)
	last := g.Side - 1
	borders := 0
	if r == 0 || r == last {
		borders++
	}
	if c == 0 || c == last {
		borders++
	}
	switch borders {
	case 2:
		return Corner, nil
	case 1:
		return Edge, nil
	default:
		return Interior, nil
	}
}

// Degree returns the neighbour count of idx: 2, 3 or 4.
func (g *Grid) Degree(idx int) (int, error) {
	k, err := g.Kind(idx)
	if err != nil {
		return 0, err
	}

	return int(k) + 2, nil
}
