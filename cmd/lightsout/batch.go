package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lightsout/puzzle"
)

// batchFile is the YAML batch format:
//
//	puzzles:
//	  - layout: [1, 0, 0, 0]
//	  - grid:
//	      - [1, 1]
//	      - [1, 1]
type batchFile struct {
	Puzzles []batchEntry `yaml:"puzzles"`
}

type batchEntry struct {
	Layout []int   `yaml:"layout"`
	Grid   [][]int `yaml:"grid"`
}

// loadBatch reads puzzles from a YAML file.
func loadBatch(path string) ([]*puzzle.Puzzle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	var bf batchFile
	if err := yaml.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("parse batch %s: %w", path, err)
	}
	out := make([]*puzzle.Puzzle, 0, len(bf.Puzzles))
	for i, e := range bf.Puzzles {
		p, err := e.puzzle()
		if err != nil {
			return nil, fmt.Errorf("%s: puzzle %d: %w", path, i, err)
		}
		out = append(out, p)
	}

	return out, nil
}

func (e batchEntry) puzzle() (*puzzle.Puzzle, error) {
	switch {
	case e.Layout != nil && e.Grid != nil:
		return nil, fmt.Errorf("set layout or grid, not both")
	case e.Grid != nil:
		return puzzle.FromGrid(e.Grid)
	default:
		return puzzle.New(e.Layout)
	}
}

// parseLayout reads "1000", "1,0,0,0" or "10/00" into a puzzle.
// Commas, spaces, underscores and slashes are ignored.
func parseLayout(s string) (*puzzle.Puzzle, error) {
	layout := make([]int, 0, len(s))
	for _, r := range s {
		switch r {
		case '0':
			layout = append(layout, 0)
		case '1':
			layout = append(layout, 1)
		case ',', ' ', '_', '/':
		default:
			return nil, fmt.Errorf("layout %q: unexpected %q", s, r)
		}
	}

	return puzzle.New(layout)
}

// gatherBatch combines --file and --layout inputs, file entries first.
func gatherBatch(file string, layouts []string) ([]*puzzle.Puzzle, error) {
	var batch []*puzzle.Puzzle
	if file != "" {
		ps, err := loadBatch(file)
		if err != nil {
			return nil, err
		}
		batch = append(batch, ps...)
	}
	for _, l := range layouts {
		p, err := parseLayout(l)
		if err != nil {
			return nil, err
		}
		batch = append(batch, p)
	}
	if len(batch) == 0 {
		return nil, errors.New("no puzzles: use --file or --layout")
	}

	return batch, nil
}
