package puzzle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lightsout"
)

var (
	// ErrNilLayout indicates a nil layout slice.
	ErrNilLayout = fmt.Errorf("puzzle: layout is nil: %w", lightsout.ErrConfiguration)
	// ErrInvalidLight indicates a light value other than 0 or 1.
	ErrInvalidLight = fmt.Errorf("puzzle: light values must be 0 or 1: %w", lightsout.ErrConfiguration)
	// ErrCellIndex indicates a cell index outside the layout.
	ErrCellIndex = errors.New("puzzle: cell index out of range")
)
