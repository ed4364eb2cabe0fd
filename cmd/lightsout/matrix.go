package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lightsout/toggle"
)

func newMatrixCmd(a *app) *cobra.Command {
	var side int
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the toggle matrix of a side×side grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := toggle.Build(side)
			if err != nil {
				return err
			}
			a.logger.Debug("toggle matrix built", "side", side, "cells", t.Size())
			_, err = fmt.Fprint(cmd.OutOrStdout(), t.String())
			return err
		},
	}
	cmd.Flags().IntVarP(&side, "side", "s", 2, "grid side length")

	return cmd
}
