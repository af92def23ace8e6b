// SPDX-License-Identifier: MIT

// Command matrixctl evaluates matrix job files, inspects snapshots and draws
// heatmaps.
//
//	matrixctl add jobs.toml [--job NAME] [--out result.msgpack]
//	matrixctl show result.msgpack
//	matrixctl plot result.msgpack --out heat.png
//	matrixctl kinds
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newRootCmd wires the command tree. A fresh tree per call keeps flag state
// out of package globals.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "matrixctl",
		Short:         "Structural matrix toolkit",
		Long:          `matrixctl adds structured matrices (rectangular, square, symmetric, diagonal) declared in TOML job files`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cmd.Flags().GetString("trace")
			if err != nil {
				return fmt.Errorf("failed to get trace flag: %w", err)
			}
			return setupTracing(cmd.ErrOrStderr(), level)
		},
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("trace", "", "trace level (error|info|debug); empty disables tracing")

	root.AddCommand(newAddCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newPlotCmd())
	root.AddCommand(newKindsCmd())

	return root
}

// main executes the command tree and exits with status 1 on any error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		errColor := color.New(color.FgRed, color.Bold)
		if !isTerminal(os.Stderr) {
			errColor.DisableColor()
		}
		errColor.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the command's output writer.
func useColor(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(mode) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return writerIsTerminal(cmd.OutOrStdout()), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (must be auto, on or off)", mode)
	}
}

// writerIsTerminal reports whether w is a terminal-backed file.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
