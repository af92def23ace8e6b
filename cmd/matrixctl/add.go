// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/matrixio"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [flags] jobs.toml",
		Short: "Evaluate the Add jobs of a TOML document",
		Long:  `Add builds the matrices declared in a TOML document, runs its jobs and prints each result with its variant`,
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}
	cmd.Flags().String("job", "", "run only the named job")
	cmd.Flags().String("out", "", "write the result as a msgpack snapshot (needs a single job)")
	cmd.Flags().Int("parallel", 0, "maximum jobs in flight (0 = GOMAXPROCS)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	jobName, err := cmd.Flags().GetString("job")
	if err != nil {
		return fmt.Errorf("failed to get job flag: %w", err)
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	parallel, err := cmd.Flags().GetInt("parallel")
	if err != nil {
		return fmt.Errorf("failed to get parallel flag: %w", err)
	}
	colorize, err := useColor(cmd)
	if err != nil {
		return err
	}

	doc, err := matrixio.LoadDocument(args[0])
	if err != nil {
		return err
	}

	var results []matrixio.Result
	if jobName != "" {
		j, err := doc.Job(jobName)
		if err != nil {
			return err
		}
		r, err := doc.RunJob(j)
		if err != nil {
			return err
		}
		results = []matrixio.Result{r}
	} else {
		results, err = matrixio.Evaluate(cmd.Context(), doc, parallel)
		if err != nil {
			return err
		}
	}
	if len(results) == 0 {
		return fmt.Errorf("%s: no jobs to run", args[0])
	}

	rend := matrixio.NewRenderer(colorize)
	for _, r := range results {
		if err = rend.Render(cmd.OutOrStdout(), r.Job.Name, r.Matrix); err != nil {
			return err
		}
	}

	if out == "" {
		return nil
	}
	if len(results) != 1 {
		return fmt.Errorf("--out needs exactly one result, got %d (use --job)", len(results))
	}
	snap, err := matrixio.SnapshotOf(results[0].Matrix)
	if err != nil {
		return err
	}
	if err = matrixio.WriteSnapshotFile(out, snap); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	digest, err := snap.Digest()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", out, digest)

	return nil
}
