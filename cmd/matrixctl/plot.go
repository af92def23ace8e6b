// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvmatrix/matrixio"
)

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot [flags] snapshot.msgpack",
		Short: "Draw a snapshot as a heatmap",
		Long:  `Plot renders a snapshot as a heatmap image; the --out extension selects the format (png, svg, pdf, ...)`,
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	cmd.Flags().String("out", "", "output image path (defaults to the snapshot name with .png)")
	cmd.Flags().Float64("size", 12, "image side length in centimeters")

	return cmd
}

func runPlot(cmd *cobra.Command, args []string) error {
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	size, err := cmd.Flags().GetFloat64("size")
	if err != nil {
		return fmt.Errorf("failed to get size flag: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("--size must be > 0, got %v", size)
	}
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
	}

	snap, err := matrixio.ReadSnapshotFile(args[0])
	if err != nil {
		return err
	}
	m, err := snap.Matrix()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	side := vg.Length(size) * vg.Centimeter
	if err = matrixio.SaveHeatmap(out, filepath.Base(args[0]), m, side, side); err != nil {
		return fmt.Errorf("failed to draw heatmap: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)

	return nil
}
