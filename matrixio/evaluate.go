// SPDX-License-Identifier: MIT

package matrixio

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Result is the outcome of one job.
type Result struct {
	Job    Job
	Matrix matrix.Matrix[float64]
}

// RunJob builds both operands of j afresh and adds them.
func (d *Document) RunJob(j Job) (Result, error) {
	combine, err := CombinerByName(j.Op)
	if err != nil {
		return Result{}, fmt.Errorf("job %q: %w", j.Name, err)
	}
	left, err := d.Build(j.Left)
	if err != nil {
		return Result{}, fmt.Errorf("job %q: %w", j.Name, err)
	}
	right, err := d.Build(j.Right)
	if err != nil {
		return Result{}, fmt.Errorf("job %q: %w", j.Name, err)
	}
	m, err := matrix.Add[float64](left, right, combine, d.Options()...)
	if err != nil {
		return Result{}, fmt.Errorf("job %q: %w", j.Name, err)
	}
	tracer().Infof("job %q: %v %s %v -> %v", j.Name, left.Kind(), j.Op, right.Kind(), m.Kind())

	return Result{Job: j, Matrix: m}, nil
}

// Evaluate runs every job of d with at most parallel jobs in flight
// (GOMAXPROCS when parallel <= 0). Results come back in document order.
// The first failing job cancels the rest and its error is returned.
//
// Jobs share no mutable state: each one builds its own operands, and the
// matrix package is not safe for concurrent use of a single instance.
func Evaluate(ctx context.Context, d *Document, parallel int) ([]Result, error) {
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(d.Jobs))
	if len(d.Jobs) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(parallel, len(d.Jobs)))
	for i, j := range d.Jobs {
		i, j := i, j
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			r, err := d.RunJob(j)
			if err != nil {
				return err
			}
			results[i] = r // each goroutine owns its index

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
