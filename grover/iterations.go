// SPDX-License-Identifier: MIT

package grover

import (
	"fmt"
	"math"
	"math/big"
)

// Iterations returns k = ⌊√(2^n)⌋ − 1, the number of oracle/diffusion rounds
// for an n-cell search space. The square root is exact for every n.
// Returns ErrNegativeCells for n < 0 and ErrIterationOverflow when k exceeds
// math.MaxInt. Long before that the op count becomes impractical; see
// WithMaxOps.
func Iterations(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("Iterations(%d): %w", n, ErrNegativeCells)
	}
	space := new(big.Int).Lsh(big.NewInt(1), uint(n))
	root := new(big.Int).Sqrt(space)
	k := root.Sub(root, big.NewInt(1))
	if !k.IsInt64() || k.Int64() > math.MaxInt {
		return 0, fmt.Errorf("Iterations(%d): %w", n, ErrIterationOverflow)
	}

	return int(k.Int64()), nil
}
