package circuit

// Stats summarises a circuit's op list.
type Stats struct {
	Ops         int // every op, barriers included
	Gates       int // H, X, CX and MCX
	H           int
	X           int
	CX          int
	MCX         int
	Barriers    int
	Measures    int
	MaxControls int // widest control set of any CX/MCX
}

// Stats counts ops by kind.
// Complexity: O(len(ops)).
func (c *Circuit) Stats() Stats {
	var s Stats
	for _, op := range c.ops {
		s.Ops++
		switch op.Kind {
		case KindH:
			s.H++
		case KindX:
			s.X++
		case KindCX:
			s.CX++
		case KindMCX:
			s.MCX++
		case KindBarrier:
			s.Barriers++
		case KindMeasure:
			s.Measures++
		}
		s.MaxControls = max(s.MaxControls, len(op.Controls))
	}
	s.Gates = s.H + s.X + s.CX + s.MCX

	return s
}
