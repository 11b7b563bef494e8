package palette

import (
	"errors"

	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/cost"
)

// maxCombinations bounds how many C(n, k) combinations SelectSubset will
// try before giving up: beyond this the exhaustive search is no longer a
// reasonable preprocessing step.
const maxCombinations = 2_000_000

// ErrTooManyCombinations is returned when C(len(colors), k) exceeds
// maxCombinations.
var ErrTooManyCombinations = errors.New("palette: too many combinations to search exhaustively")

// ErrSubsetTooLarge is returned when k exceeds len(colors).
var ErrSubsetTooLarge = errors.New("palette: requested subset size exceeds the available colors")

// Selection is the outcome of an exhaustive subset search.
type Selection struct {
	// Indices are the chosen colors' positions in the input slice, in
	// ascending order.
	Indices []int

	// Cost is the total per-pixel minimum quantization cost achieved by
	// this subset, ignoring fabrication constraints and error diffusion.
	Cost float64
}

// SelectSubset exhaustively searches every k-element subset of colors
// and returns the one minimizing the sum, over every pixel, of that
// pixel's cost to its nearest color in the subset.
func SelectSubset(colors []color.Linear, pixels []color.Linear, k int, diff cost.Difference) (Selection, error) {
	n := len(colors)
	if k > n {
		return Selection{}, ErrSubsetTooLarge
	}
	if k == n {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		return Selection{Indices: indices, Cost: totalCost(colors, pixels, indices, diff)}, nil
	}

	combos, ok := choose(n, k)
	if !ok || combos > maxCombinations {
		return Selection{}, ErrTooManyCombinations
	}

	// Precompute every color's cost against every pixel once, exactly as
	// the reference implementation does, so each combination's score is
	// just a column-wise minimum lookup.
	costs := make([][]float64, n)
	for y := 0; y < n; y++ {
		row := make([]float64, len(pixels))
		for p, px := range pixels {
			row[p] = diff.Cost(px, colors[y])
		}
		costs[y] = row
	}

	best := Selection{Cost: -1}
	combo := make([]int, k)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == k {
			total := 0.0
			for p := range pixels {
				min := costs[combo[0]][p]
				for i := 1; i < k; i++ {
					if v := costs[combo[i]][p]; v < min {
						min = v
					}
				}
				total += min
			}
			if best.Cost < 0 || total < best.Cost {
				best.Cost = total
				best.Indices = append([]int(nil), combo...)
			}
			return
		}
		for y := start; y <= n-(k-depth); y++ {
			combo[depth] = y
			recurse(y+1, depth+1)
		}
	}
	recurse(0, 0)

	return best, nil
}

func totalCost(colors, pixels []color.Linear, indices []int, diff cost.Difference) float64 {
	total := 0.0
	for _, px := range pixels {
		min := diff.Cost(px, colors[indices[0]])
		for _, idx := range indices[1:] {
			if v := diff.Cost(px, colors[idx]); v < min {
				min = v
			}
		}
		total += min
	}
	return total
}

// choose computes C(n, k), reporting overflow via the second return value.
func choose(n, k int) (uint64, bool) {
	if k < 0 || k > n {
		return 0, true
	}
	if k > n-k {
		k = n - k
	}
	result := uint64(1)
	for i := 0; i < k; i++ {
		prevResult := result
		result = result * uint64(n-i) / uint64(i+1)
		if result < prevResult && i > 0 {
			return 0, false
		}
	}
	return result, true
}
