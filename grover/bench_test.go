package grover_test

import (
	"testing"

	"github.com/katalvlaran/lightsout/grover"
	"github.com/katalvlaran/lightsout/puzzle"
)

// BenchmarkBuild5x5 measures assembly of a 25-cell search (k = 5791).
func BenchmarkBuild5x5(b *testing.B) {
	layout := make([]int, 25)
	for i := range layout {
		layout[i] = i % 2
	}
	batch := []*puzzle.Puzzle{puzzle.MustNew(layout)}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grover.Build(batch, grover.WithBarriers(false)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuildBatch4x4 measures a batch of eight 16-cell puzzles.
func BenchmarkBuildBatch4x4(b *testing.B) {
	batch := make([]*puzzle.Puzzle, 8)
	for i := range batch {
		layout := make([]int, 16)
		layout[i] = 1
		batch[i] = puzzle.MustNew(layout)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grover.Build(batch); err != nil {
			b.Fatal(err)
		}
	}
}
