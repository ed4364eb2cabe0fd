// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"

	"github.com/katalvlaran/lightsout/address"
	"github.com/katalvlaran/lightsout/puzzle"
)

// Instance is the explicit context for one puzzle of a batch: its position,
// its layout and the address code that selects it.
type Instance struct {
	Index  int
	Puzzle *puzzle.Puzzle
	Code   address.Code
}

// Instances validates a batch and pairs every puzzle with its address code.
// All puzzles must share the first puzzle's cell count.
// Returns ErrEmptyBatch, ErrNilPuzzle or ErrSizeMismatch.
func Instances(batch []*puzzle.Puzzle) ([]Instance, address.Book, error) {
	if len(batch) == 0 {
		return nil, address.Book{}, fmt.Errorf("Instances: %w", ErrEmptyBatch)
	}
	for i, p := range batch {
		if p == nil {
			return nil, address.Book{}, fmt.Errorf("Instances: puzzle %d: %w", i, ErrNilPuzzle)
		}
	}
	n := batch[0].LayoutLength()
	for i, p := range batch[1:] {
		if p.LayoutLength() != n {
			return nil, address.Book{}, fmt.Errorf("Instances: puzzle %d has %d cells, puzzle 0 has %d: %w",
				i+1, p.LayoutLength(), n, ErrSizeMismatch)
		}
	}
	book, err := address.Encode(len(batch))
	if err != nil {
		return nil, address.Book{}, err
	}
	out := make([]Instance, len(batch))
	for i, p := range batch {
		out[i] = Instance{Index: i, Puzzle: p, Code: book.Codes[i]}
	}

	return out, book, nil
}
