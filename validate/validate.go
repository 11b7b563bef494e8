package validate

import (
	"errors"
	"fmt"

	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/cost"
)

// ErrUseWithinViolated is the sentinel wrapped by the detailed error
// CheckRow returns when a use_within window is missing a yarn.
var ErrUseWithinViolated = errors.New("validate: use_within window missing a yarn")

// ErrCrossWithinViolated is the sentinel wrapped by the detailed error
// CheckRow returns when a cross_within window has no crossing.
var ErrCrossWithinViolated = errors.New("validate: cross_within window has no crossing")

// CheckRow independently re-derives, directly from the definitions of
// use_within and cross_within (not from any shared state machine),
// whether a placed row of yarn indices is a valid dither. yarns holds one
// palette index per column; k is the palette size.
func CheckRow(yarns []uint8, k, useWithin, crossWithin int) error {
	width := len(yarns)

	if useWithin > 0 && width >= useWithin {
		for start := 0; start+useWithin <= width; start++ {
			seen := make([]bool, k)
			count := 0
			for _, y := range yarns[start : start+useWithin] {
				if !seen[y] {
					seen[y] = true
					count++
				}
			}
			if count < k {
				return fmt.Errorf("%w: columns [%d, %d) use only %d of %d yarns", ErrUseWithinViolated, start, start+useWithin, count, k)
			}
		}
	}

	if crossWithin > 0 && width >= crossWithin {
		crossingAt := make([]bool, width)
		for p := 0; p < width; p++ {
			for d := 1; d <= p; d += 2 {
				if yarns[p] == yarns[p-d] {
					crossingAt[p] = true
					break
				}
			}
		}
		for start := 0; start+crossWithin <= width; start++ {
			found := false
			for _, c := range crossingAt[start : start+crossWithin] {
				if c {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("%w: columns [%d, %d) contain no crossing", ErrCrossWithinViolated, start, start+crossWithin)
			}
		}
	}

	return nil
}

// CheckCost independently recomputes the total cost of a placed row
// against the given (possibly diffusion-adjusted) pixel colors and
// palette, using diff as the cost metric.
func CheckCost(yarns []uint8, pixels []color.Linear, palette []color.Linear, diff cost.Difference) float64 {
	total := 0.0
	for x, y := range yarns {
		total += diff.Cost(pixels[x], palette[y])
	}
	return total
}
