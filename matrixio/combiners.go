// SPDX-License-Identifier: MIT

package matrixio

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Combiner merges the two elements found at the same position of the Add
// operands. The first argument comes from the left operand.
type Combiner func(x, y float64) float64

var combiners = map[string]Combiner{
	"sum":  func(x, y float64) float64 { return x + y },
	"diff": func(x, y float64) float64 { return x - y },
	"mul":  func(x, y float64) float64 { return x * y },
	"max":  math.Max,
	"min":  math.Min,
}

// CombinerByName resolves a job's op. The empty name means "sum".
func CombinerByName(name string) (Combiner, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "sum"
	}
	c, ok := combiners[key]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownOp, name, strings.Join(CombinerNames(), ", "))
	}

	return c, nil
}

// CombinerNames lists the known combiner names, sorted.
func CombinerNames() []string {
	names := make([]string, 0, len(combiners))
	for n := range combiners {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
