// SPDX-License-Identifier: MIT

package circuit

import "fmt"

// Register is a named block of consecutive global indices.
// The zero Register (Size 0) stands for "absent".
type Register struct {
	Name      string
	Offset    int
	Size      int
	Classical bool
}

// At returns the global index of element i.
// It panics if i is outside [0, Size).
func (r Register) At(i int) int {
	if i < 0 || i >= r.Size {
		panic(fmt.Sprintf("circuit: %s[%d] out of range (size %d)", r.Name, i, r.Size))
	}

	return r.Offset + i
}

// Last returns the global index of the final element.
func (r Register) Last() int {
	return r.At(r.Size - 1)
}

// All returns every global index of the register, ascending.
func (r Register) All() []int {
	out := make([]int, r.Size)
	for i := range out {
		out[i] = r.Offset + i
	}

	return out
}

// Slice returns the global indices of elements [from, to).
func (r Register) Slice(from, to int) []int {
	if from < 0 || to > r.Size || from > to {
		panic(fmt.Sprintf("circuit: %s[%d:%d] out of range (size %d)", r.Name, from, to, r.Size))
	}
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, r.Offset+i)
	}

	return out
}

// Contains reports whether global index q belongs to the register.
func (r Register) Contains(q int) bool {
	return q >= r.Offset && q < r.Offset+r.Size
}

// Empty reports whether the register is absent.
func (r Register) Empty() bool {
	return r.Size == 0
}
