package oracle

import (
	"fmt"

	"github.com/katalvlaran/lightsout"
)

var (
	// ErrEmptyBatch indicates a batch with no puzzles.
	ErrEmptyBatch = fmt.Errorf("oracle: batch is empty: %w", lightsout.ErrConfiguration)
	// ErrNilPuzzle indicates a nil entry in a batch.
	ErrNilPuzzle = fmt.Errorf("oracle: puzzle is nil: %w", lightsout.ErrConfiguration)
	// ErrSizeMismatch indicates puzzles of different cell counts in one batch,
	// or a puzzle that does not match the registers.
	ErrSizeMismatch = fmt.Errorf("oracle: cell count mismatch: %w", lightsout.ErrConfiguration)
	// ErrRegisters indicates registers or a toggle matrix of inconsistent sizes.
	ErrRegisters = fmt.Errorf("oracle: inconsistent registers: %w", lightsout.ErrConfiguration)
	// ErrCodeWidth indicates an address code whose width differs from the address register.
	ErrCodeWidth = fmt.Errorf("oracle: address code width mismatch: %w", lightsout.ErrConfiguration)
)
