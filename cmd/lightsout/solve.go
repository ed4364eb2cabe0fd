package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lightsout/matrix"
	"github.com/katalvlaran/lightsout/puzzle"
	"github.com/katalvlaran/lightsout/toggle"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		file    string
		layouts []string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "List every press vector that solves each puzzle (classical reference)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			batch, err := gatherBatch(file, layouts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, p := range batch {
				sols, err := toggle.Solutions(p)
				if errors.Is(err, matrix.ErrInconsistent) {
					sols, err = nil, nil
				}
				if err != nil {
					return fmt.Errorf("puzzle %d: %w", i, err)
				}
				a.logger.Debug("solved", "puzzle", i, "solutions", len(sols))
				if err := writeSolutions(w, p, sols); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML batch file")
	cmd.Flags().StringArrayVarP(&layouts, "layout", "l", nil, "puzzle layout such as 1000 (repeatable)")

	return cmd
}

// writeSolutions prints a header line for p, marked when every light is
// already off, followed by one indented press vector per line.
func writeSolutions(w io.Writer, p *puzzle.Puzzle, sols [][]uint8) error {
	note := ""
	if p.Solved() {
		note = " (already solved)"
	}
	if _, err := fmt.Fprintf(w, "%s: %d solution(s)%s\n", compactLayout(p), len(sols), note); err != nil {
		return err
	}
	for _, x := range sols {
		if _, err := fmt.Fprintf(w, "  %s\n", bitString(x)); err != nil {
			return err
		}
	}

	return nil
}

func bitString(x []uint8) string {
	b := make([]byte, len(x))
	for i, v := range x {
		b[i] = '0' + v
	}

	return string(b)
}
