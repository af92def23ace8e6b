// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/matrixio"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Print the result kind of Add for every operand pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			colorize, err := useColor(cmd)
			if err != nil {
				return err
			}
			return matrixio.NewRenderer(colorize).RenderKindTable(cmd.OutOrStdout())
		},
	}
}
