// SPDX-License-Identifier: MIT

package puzzle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lightsout/gridgraph"
)

const (
	methodNew      = "New"
	methodFromGrid = "FromGrid"
)

// Puzzle is an immutable Lights Out layout.
type Puzzle struct {
	layout []uint8
	grid   *gridgraph.Grid
}

// New validates layout and returns a Puzzle holding a private copy of it.
// Returns ErrNilLayout, ErrInvalidLight or gridgraph.ErrNotSquare.
// Complexity: O(N).
func New(layout []int) (*Puzzle, error) {
	if layout == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilLayout)
	}
	grid, err := gridgraph.FromCells(len(layout))
	if err != nil {
		return nil, fmt.Errorf("%s: layout length %d: %w", methodNew, len(layout), err)
	}
	cells := make([]uint8, len(layout))
	for i, v := range layout {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%s: cell %d = %d: %w", methodNew, i, v, ErrInvalidLight)
		}
		cells[i] = uint8(v)
	}

	return &Puzzle{layout: cells, grid: grid}, nil
}

// FromGrid flattens rows in row-major order and calls New.
// Rows of differing lengths fail the perfect-square check or produce a
// non-square board, which is rejected.
func FromGrid(rows [][]int) (*Puzzle, error) {
	flat := make([]int, 0, len(rows)*len(rows))
	for r, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				methodFromGrid, r, len(row), len(rows), gridgraph.ErrNotSquare)
		}
		flat = append(flat, row...)
	}

	return New(flat)
}

// MustNew is New that panics on error. Intended for fixtures and examples.
func MustNew(layout []int) *Puzzle {
	p, err := New(layout)
	if err != nil {
		panic(err)
	}

	return p
}

// Layout returns a copy of the light states.
func (p *Puzzle) Layout() []uint8 {
	out := make([]uint8, len(p.layout))
	copy(out, p.layout)

	return out
}

// LayoutLength returns N, the number of cells.
func (p *Puzzle) LayoutLength() int {
	return len(p.layout)
}

// Side returns the board side length s, where N = s².
func (p *Puzzle) Side() int {
	return p.grid.Side
}

// Grid returns the board geometry.
func (p *Puzzle) Grid() *gridgraph.Grid {
	return p.grid
}

// At returns the light state of cell i.
// Returns ErrCellIndex if i is outside [0, N).
func (p *Puzzle) At(i int) (uint8, error) {
	if i < 0 || i >= len(p.layout) {
		return 0, fmt.Errorf("At(%d): %w", i, ErrCellIndex)
	}

	return p.layout[i], nil
}

// Off returns the indices of lights that are initially off, ascending.
func (p *Puzzle) Off() []int {
	var out []int
	for i, v := range p.layout {
		if v == 0 {
			out = append(out, i)
		}
	}

	return out
}

// Solved reports whether every light is already off.
func (p *Puzzle) Solved() bool {
	for _, v := range p.layout {
		if v != 0 {
			return false
		}
	}

	return true
}

// String renders the board one row per line, '1' for on and '0' for off.
func (p *Puzzle) String() string {
	var sb strings.Builder
	s := p.grid.Side
	for r := 0; r < s; r++ {
		for c := 0; c < s; c++ {
			sb.WriteByte('0' + p.layout[p.grid.Index(r, c)])
		}
		if r < s-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
