// Package gridgraph treats a square Lights Out board as a graph of cells,
// providing the geometry every other package builds on.
//
// What:
//
//   - Grid describes an s×s board (s ≥ 2) with row-major cell numbering.
//   - Index/Coordinate convert between (r,c) pairs and flat indices in O(1).
//   - Neighbors lists the orthogonal (4-connected) neighbours of a cell.
//   - Kind classifies a cell as Corner, Edge or Interior.
//
// Why:
//
//   - Toggle matrices need each button's neighbourhood without scanning
//     all coordinates to recover flat indices.
//   - Boundary handling (corner 2, edge 3, interior 4 neighbours) lives in
//     exactly one place.
//
// Complexity:
//
//   - NewGrid, SideOf: O(1) (SideOf is O(log n) for the integer root).
//   - Index, Coordinate, InBounds, Kind, Degree: O(1).
//   - Neighbors: O(1), at most 4 results.
//
// Errors:
//
//   - ErrSideTooSmall: side length below 2.
//   - ErrNotSquare: cell count is not a perfect square of a side ≥ 2.
//   - ErrCellIndex: flat index outside [0, s²).
package gridgraph
