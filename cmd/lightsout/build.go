package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lightsout/grover"
	"github.com/katalvlaran/lightsout/puzzle"
)

type buildFlags struct {
	file       string
	layouts    []string
	format     string
	out        string
	iterations int
	noBarriers bool
	noMeasure  bool
}

func newBuildCmd(a *app) *cobra.Command {
	f := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the search circuit for one puzzle or a batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBuild(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "YAML batch file")
	fl.StringArrayVarP(&f.layouts, "layout", "l", nil, "puzzle layout such as 1000 (repeatable)")
	fl.StringVar(&f.format, "format", "qasm", "output format: qasm or summary")
	fl.StringVarP(&f.out, "out", "o", "", "write output to this file instead of stdout")
	fl.IntVar(&f.iterations, "iterations", -1, "override the iteration count (-1 derives it)")
	fl.BoolVar(&f.noBarriers, "no-barriers", false, "omit barriers between phases")
	fl.BoolVar(&f.noMeasure, "no-measure", false, "omit the final measurements")

	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, f *buildFlags) error {
	if f.format != "qasm" && f.format != "summary" {
		return fmt.Errorf("unknown format %q", f.format)
	}
	if f.iterations < -1 {
		return fmt.Errorf("--iterations must be -1 or non-negative, got %d", f.iterations)
	}
	batch, err := gatherBatch(f.file, f.layouts)
	if err != nil {
		return err
	}

	opts := []grover.Option{
		grover.WithLogger(a.logger),
		grover.WithBarriers(!f.noBarriers),
	}
	if f.iterations >= 0 {
		opts = append(opts, grover.WithIterations(f.iterations))
	}
	if f.noMeasure {
		opts = append(opts, grover.WithoutMeasurement())
	}
	proc, err := grover.Build(batch, opts...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if f.out != "" {
		file, err := os.Create(f.out)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	if f.format == "summary" {
		return writeSummary(w, a.runID, proc)
	}
	comments := []string{"lightsout run " + a.runID}
	for _, inst := range proc.Instances() {
		comments = append(comments, fmt.Sprintf("instance %d code %q layout %s",
			inst.Index, inst.Code.String(), compactLayout(inst.Puzzle)))
	}
	if err := proc.Circuit().WriteQASM(w, comments...); err != nil {
		return err
	}
	a.logger.Info("qasm written", "path", f.out, "ops", proc.Circuit().Len())

	return nil
}

func writeSummary(w io.Writer, runID string, proc *grover.Procedure) error {
	wd := proc.Widths()
	st := proc.Circuit().Stats()
	_, err := fmt.Fprintf(w,
		"run:        %s\ninstances:  %d\niterations: %d\nregisters:  sol=%d anc=%d addr=%d bits=%d addr_bits=%d\nops:        %d (gates %d: h=%d x=%d cx=%d mcx=%d; barriers %d; measures %d)\n",
		runID, proc.InstanceCount(), proc.Iterations(),
		wd.Solution, wd.Ancilla, wd.Address, wd.Bits, wd.AddrBits,
		st.Ops, st.Gates, st.H, st.X, st.CX, st.MCX, st.Barriers, st.Measures,
	)
	if err != nil {
		return err
	}
	for _, inst := range proc.Instances() {
		if _, err := fmt.Fprintf(w, "  [%d] code=%q layout=%s\n",
			inst.Index, inst.Code.String(), compactLayout(inst.Puzzle)); err != nil {
			return err
		}
	}

	return nil
}

// compactLayout renders the layout as a digit string such as "1000".
func compactLayout(p *puzzle.Puzzle) string {
	b := make([]byte, 0, p.LayoutLength())
	for _, v := range p.Layout() {
		b = append(b, '0'+v)
	}

	return string(b)
}
