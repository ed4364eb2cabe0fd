// Package lightsout builds amplitude-amplification (Grover) search circuits
// that solve the Lights Out puzzle on square grids.
//
// What is lightsout?
//
//	A pure, deterministic circuit builder that turns one or more puzzle
//	layouts into an ordered list of reversible operations:
//		• Grid topology:   row-major cell geometry with 4-neighbour adjacency
//		• Toggle matrix:   which cells flip when a given button is pressed
//		• Address codes:   fixed-width binary indices for batched instances
//		• Oracle:          marks press vectors that switch every light off
//		• Diffusion:       inversion about the mean over the solution register
//		• Search assembly: superposition, k oracle/diffusion rounds, readout
//
// Under the hood, everything is organized under small subpackages:
//
//	puzzle/     immutable layout container (PuzzleView)
//	gridgraph/  square-grid geometry and neighbour lookup
//	matrix/     binary N×N matrices with GF(2) helpers
//	toggle/     toggle (adjacency) matrix construction
//	address/    address codes for batched search
//	circuit/    registers, reversible ops, conjugate sandwiches, OpenQASM 3 export
//	oracle/     solution-marking oracle
//	diffusion/  inversion-about-the-mean reflection
//	grover/     search procedure assembly
//	cmd/lightsout  command-line front end (build, matrix, solve)
//
// Quick ASCII example (2×2 grid, pressing the top-left button):
//
//	    ●───●        ○───○
//	    │   │  ──►   │   │
//	    ●───○        ○───○
//
// The assembled procedure is never executed here; hand it to a simulator or
// device through Procedure.Ops or the OpenQASM 3 text.
package lightsout
