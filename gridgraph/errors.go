package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lightsout"
)

var (
	// ErrSideTooSmall indicates a side length below MinSide.
	ErrSideTooSmall = fmt.Errorf("gridgraph: side length must be at least %d: %w", MinSide, lightsout.ErrConfiguration)
	// ErrNotSquare indicates a cell count that is not the square of a valid side.
	ErrNotSquare = fmt.Errorf("gridgraph: cell count is not a perfect square: %w", lightsout.ErrConfiguration)
	// ErrCellIndex indicates a flat cell index outside the grid.
	ErrCellIndex = errors.New("gridgraph: cell index out of range")
)
