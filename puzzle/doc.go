// Package puzzle holds the read-only Lights Out layout consumed by the
// search builder (the PuzzleView collaborator).
//
// A Puzzle stores an ordered sequence of 0/1 light states for an s×s board
// (s ≥ 2), indexed row-major: cell i is (i / s, i % s). It validates its
// input once at construction and never changes afterwards.
//
// Errors:
//
//   - ErrNilLayout:     layout slice is nil.
//   - ErrInvalidLight:  a value other than 0 or 1.
//   - gridgraph.ErrNotSquare: length is not the square of a side ≥ 2.
//
// All of them match lightsout.ErrConfiguration under errors.Is.
package puzzle
