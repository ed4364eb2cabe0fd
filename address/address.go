// SPDX-License-Identifier: MIT

package address

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/lightsout"
)

// ErrEmptyBatch indicates a batch with no instances.
var ErrEmptyBatch = fmt.Errorf("address: batch is empty: %w", lightsout.ErrConfiguration)

// Code is the address of one instance: a string of '0'/'1' characters of
// the book's width. The empty code addresses the only instance of a batch of one.
type Code string

// String returns the code text.
func (c Code) String() string {
	return string(c)
}

// Width returns the number of address qubits the code drives.
func (c Code) Width() int {
	return len(c)
}

// ZeroPositions returns the positions coded '0'. These are the address qubits
// flipped before, and unflipped after, the instance's controlled marking.
func (c Code) ZeroPositions() []int {
	var out []int
	for j := 0; j < len(c); j++ {
		if c[j] == '0' {
			out = append(out, j)
		}
	}

	return out
}

// Value returns the basis-state value the code selects on the address
// register: Σ bit_j·2^j, with qubit j as bit j.
func (c Code) Value() int {
	v := 0
	for j := 0; j < len(c); j++ {
		if c[j] == '1' {
			v |= 1 << j
		}
	}

	return v
}

// Book holds the codes of every instance in a batch.
type Book struct {
	// Width is the address register size; 0 for a batch of one.
	Width int
	// Codes[i] addresses instance i.
	Codes []Code
}

// Batched reports whether the batch needs an address register.
func (b Book) Batched() bool {
	return b.Width > 0
}

// Encode returns the codes for a batch of size n.
// n = 1 yields Width 0 and one empty code; n > 1 yields width bits.Len(n−1)
// and zero-padded binary codes. Returns ErrEmptyBatch for n <= 0.
// Complexity: O(n·w).
func Encode(n int) (Book, error) {
	if n <= 0 {
		return Book{}, fmt.Errorf("Encode(%d): %w", n, ErrEmptyBatch)
	}
	if n == 1 {
		return Book{Width: 0, Codes: []Code{""}}, nil
	}
	width := bits.Len(uint(n - 1))
	codes := make([]Code, n)
	for i := range codes {
		raw := strconv.FormatInt(int64(i), 2)
		codes[i] = Code(strings.Repeat("0", width-len(raw)) + raw)
	}

	return Book{Width: width, Codes: codes}, nil
}
