// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// heatmapColors is the number of palette steps.
const heatmapColors = 16

// matrixGrid adapts a matrix to plotter.GridXYZ. Grid row 0 is the bottom
// of the plot, so rows are flipped to keep matrix row 0 on top.
type matrixGrid struct {
	cells [][]float64
}

func (g matrixGrid) Dims() (c, r int) { return len(g.cells[0]), len(g.cells) }
func (g matrixGrid) Z(c, r int) float64 { return g.cells[len(g.cells)-1-r][c] }
func (g matrixGrid) X(c int) float64 { return float64(c) }
func (g matrixGrid) Y(r int) float64 { return float64(r) }

// newHeatmapPlot prepares a titled heatmap of m.
func newHeatmapPlot(title string, m matrix.Matrix[float64]) (*plot.Plot, error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, err
	}
	hm := plotter.NewHeatMap(matrixGrid{cells: rows}, palette.Heat(heatmapColors, 1))
	if hm.Min == hm.Max {
		hm.Max = hm.Min + 1 // constant input: avoid a zero palette scale
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%v %dx%d)", title, m.Kind(), m.Rows(), m.Cols())
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row (flipped)"
	p.Add(hm)

	return p, nil
}

// WriteHeatmap draws m to w in the given image format ("png", "svg", "pdf", ...).
func WriteHeatmap(w io.Writer, title string, m matrix.Matrix[float64], format string, width, height vg.Length) error {
	p, err := newHeatmapPlot(title, m)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("heatmap: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// SaveHeatmap draws m to path; the extension selects the format.
func SaveHeatmap(path, title string, m matrix.Matrix[float64], width, height vg.Length) error {
	p, err := newHeatmapPlot(title, m)
	if err != nil {
		return err
	}
	tracer().Debugf("heatmap: %s -> %s", title, path)

	return p.Save(width, height, path)
}
