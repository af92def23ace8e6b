// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/matrixio"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show snapshot.msgpack",
		Short: "Print a matrix snapshot",
		Long:  `Show decodes a snapshot, re-validates its variant and prints it with its digest`,
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	colorize, err := useColor(cmd)
	if err != nil {
		return err
	}
	snap, err := matrixio.ReadSnapshotFile(args[0])
	if err != nil {
		return err
	}
	m, err := snap.Matrix()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	digest, err := snap.Digest()
	if err != nil {
		return err
	}

	if err = matrixio.NewRenderer(colorize).Render(cmd.OutOrStdout(), filepath.Base(args[0]), m); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "digest: %s\n", digest)

	return nil
}
