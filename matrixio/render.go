// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Renderer prints matrices as aligned text tables.
//   - The title line names the matrix, its kind and shape.
//   - Diagonal cells are highlighted on square kinds.
//   - Off-diagonal cells of a Diagonal matrix are dimmed: they have no storage.
//
// Colours are fixed per Renderer, independent of color.NoColor.
type Renderer struct {
	title *color.Color
	kind  *color.Color
	diag  *color.Color
	dim   *color.Color
}

// NewRenderer returns a Renderer that emits ANSI colours when colorize is set.
func NewRenderer(colorize bool) *Renderer {
	r := &Renderer{
		title: color.New(color.Bold),
		kind:  color.New(color.FgCyan),
		diag:  color.New(color.FgYellow, color.Bold),
		dim:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.title, r.kind, r.diag, r.dim} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return r
}

// formatCell renders one element in its shortest exact form.
func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Render writes name, kind and the rows of m to w.
//
//	sum: symmetric 3x3
//	   2   2   3
//	   2  12   0
//	   3   0  22
func (r *Renderer) Render(w io.Writer, name string, m matrix.Matrix[float64]) error {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return err
	}

	width := 1
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = formatCell(v)
			width = max(width, len(cells[i][j]))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s %dx%d\n", r.title.Sprint(name), r.kind.Sprint(m.Kind()), m.Rows(), m.Cols())
	square := m.Kind() != matrix.KindRectangular
	for i, row := range cells {
		for j, cell := range row {
			padded := fmt.Sprintf("%*s", width+2, cell)
			switch {
			case square && i == j:
				padded = r.diag.Sprint(padded)
			case m.Kind() == matrix.KindDiagonal:
				padded = r.dim.Sprint(padded)
			}
			sb.WriteString(padded)
		}
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(w, sb.String())

	return err
}

// RenderKindTable writes the Add combination table for every pair of kinds.
func (r *Renderer) RenderKindTable(w io.Writer) error {
	kinds := matrix.Kinds()
	width := len("A \\ B")
	for _, k := range kinds {
		width = max(width, len(k.String()))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-*s", width+2, "A \\ B")
	for _, b := range kinds {
		sb.WriteString(r.title.Sprintf("%-*s", width+2, b))
	}
	sb.WriteByte('\n')
	for _, a := range kinds {
		sb.WriteString(r.title.Sprintf("%-*s", width+2, a))
		for _, b := range kinds {
			sb.WriteString(r.kind.Sprintf("%-*s", width+2, matrix.ResultKind(a, b)))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
