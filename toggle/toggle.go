// SPDX-License-Identifier: MIT

package toggle

import (
	"fmt"

	"github.com/katalvlaran/lightsout/gridgraph"
	"github.com/katalvlaran/lightsout/matrix"
	"github.com/katalvlaran/lightsout/puzzle"
)

const (
	methodBuild      = "Build"
	methodFromLength = "FromLength"
)

// Build returns the toggle matrix of a side×side board.
// Returns gridgraph.ErrSideTooSmall (a lightsout.ErrConfiguration) for side < 2.
//
// Every side length, 2 included, goes through the same neighbour rule;
// on a 2×2 board all four cells are corners with two neighbours each.
func Build(side int) (*matrix.Binary, error) {
	grid, err := gridgraph.NewGrid(side)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return fromGrid(grid)
}

// FromLength returns the toggle matrix for a layout of n cells.
// Returns gridgraph.ErrNotSquare if n is not s² with s ≥ 2.
func FromLength(n int) (*matrix.Binary, error) {
	grid, err := gridgraph.FromCells(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromLength, err)
	}

	return fromGrid(grid)
}

// FromPuzzle returns the toggle matrix for p's board.
func FromPuzzle(p *puzzle.Puzzle) (*matrix.Binary, error) {
	return fromGrid(p.Grid())
}

// fromGrid sets, for every button in row-major order, its own bit and the
// bit of each in-bounds orthogonal neighbour.
func fromGrid(grid *gridgraph.Grid) (*matrix.Binary, error) {
	n := grid.Cells()
	m, err := matrix.NewBinary(n)
	if err != nil {
		return nil, err
	}
	for button := 0; button < n; button++ {
		if err = m.Set(button, button, 1); err != nil {
			return nil, err
		}
		nbrs, err := grid.Neighbors(button)
		if err != nil {
			return nil, err
		}
		for _, cell := range nbrs {
			if err = m.Set(button, cell, 1); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Press applies the press vector x to layout and returns the resulting
// lights, i.e. layout XOR T·x over GF(2).
func Press(t *matrix.Binary, layout, x []uint8) ([]uint8, error) {
	flipped, err := t.MulVec(x)
	if err != nil {
		return nil, err
	}
	if len(layout) != len(flipped) {
		return nil, fmt.Errorf("Press: layout length %d, want %d: %w", len(layout), len(flipped), matrix.ErrDimensionMismatch)
	}
	out := make([]uint8, len(layout))
	for i := range out {
		out[i] = layout[i] ^ flipped[i]
	}

	return out, nil
}

// Solutions returns every press vector that turns p's lights off, ordered
// by Σ x[i]·2^i ascending. It is the classical reference for the oracle.
func Solutions(p *puzzle.Puzzle) ([][]uint8, error) {
	t, err := FromPuzzle(p)
	if err != nil {
		return nil, err
	}

	return t.Solve(p.Layout())
}
