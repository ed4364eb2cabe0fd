// Package toggle derives the Lights Out toggle (adjacency) matrix.
//
// Row i of the N×N matrix is the set of cells flipped by pressing button i:
// the cell itself plus its orthogonal neighbours. The matrix depends only on
// the board side, never on light values, so one matrix serves every puzzle
// of that size.
//
// Guarantees:
//
//   - symmetric (if i flips j, j flips i);
//   - diagonal all ones;
//   - row sum = 1 + degree(i): 3 for corners, 4 for edges, 5 for interior cells.
//
// Complexity: O(N) entries set, O(N²) memory for the dense result.
package toggle
