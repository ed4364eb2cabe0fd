package gridgraph

// MinSide is the smallest board the puzzle supports.
const MinSide = 2

// CellKind classifies a cell by how many orthogonal neighbours it has.
type CellKind int

const (
	// Corner cells sit on two borders and have 2 neighbours.
	Corner CellKind = iota
	// Edge cells sit on one border and have 3 neighbours.
	Edge
	// Interior cells have all 4 neighbours.
	Interior
)

// String returns the lower-case kind name.
func (k CellKind) String() string {
	switch k {
	case Corner:
		return "corner"
	case Edge:
		return "edge"
	case Interior:
		return "interior"
	default:
		return "unknown"
	}
}

// conn4 lists orthogonal offsets as (dr, dc) in N, E, S, W order.
var conn4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an immutable s×s board. Cell (r,c) has flat index r*Side + c.
type Grid struct {
	Side int
}
