package optimalsolve

import (
	"errors"
	"math"

	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/cost"
	"github.com/knitloom/knitdither/table"
	"github.com/knitloom/knitdither/tiebreak"
	"github.com/knitloom/knitdither/workerpool"
)

// Sentinel errors returned by Row.
var (
	// ErrInfeasibleRow is returned when no valid path exists across the
	// whole row: the terminal column has no reachable states, or none
	// reachable at a finite cost.
	ErrInfeasibleRow = errors.New("optimalsolve: no valid dither exists for this row")

	// ErrCostMismatch is returned when the reconstructed path's summed
	// cost does not exactly match the forward pass's minimum, which
	// would indicate a bug in either pass (the two must add the same
	// floating point terms in the same order).
	ErrCostMismatch = errors.New("optimalsolve: reconstructed path cost does not match forward minimum")
)

// Result is one row's solved yarn assignment plus diagnostics.
type Result struct {
	// Yarns holds, for each column, the index into the palette of the
	// yarn placed there.
	Yarns []uint8

	// Cost is the total cost of the placed row.
	Cost float64

	// Ties is how many times backward reconstruction had more than one
	// equally-costed option to choose from.
	Ties uint64
}

// Row solves one row of width columns exactly, given the (possibly
// truncated and steady-state-saturated) table stack for this row's
// constraints, the per-pixel colors for this row (length == width,
// already including any error diffused in from prior rows), the palette
// of yarn colors, a cost metric, a pull-relaxation worker pool, and a
// tiebreak.Chooser for this row.
//
// pool may be nil, in which case the forward pass runs sequentially.
func Row(tables []*table.Table, pixels []color.Linear, yarns []color.Linear, diff cost.Difference, pool *workerpool.Pool, chooser *tiebreak.Chooser) (Result, error) {
	width := len(pixels)
	if width == 0 {
		return Result{}, nil
	}

	minCosts := make([][]float64, width+1)
	minCosts[0] = make([]float64, len(table.Saturate(tables, 0).States))
	for x := 1; x <= width; x++ {
		next := table.Saturate(tables, x)
		row := make([]float64, len(next.States))
		for i := range row {
			row[i] = math.Inf(1)
		}
		minCosts[x] = row
	}

	for x := 0; x < width; x++ {
		yarnCosts := make([]float64, len(yarns))
		for y, yc := range yarns {
			yarnCosts[y] = diff.Cost(pixels[x], yc)
		}

		prevCosts := minCosts[x]
		nextCosts := minCosts[x+1]
		next := table.Saturate(tables, x+1)

		pullCosts := func(toBegin, toEnd int) {
			for to := toBegin; to < toEnd; to++ {
				begin := next.FirstFrom[to]
				end := next.FirstFrom[to+1]
				best := nextCosts[to]
				for _, edge := range next.Froms[begin:end] {
					y, from := table.Unpack(edge)
					test := prevCosts[from] + yarnCosts[y]
					if test < best {
						best = test
					}
				}
				nextCosts[to] = best
			}
		}

		if pool == nil || len(next.WorkerSlices) <= 2 {
			pullCosts(0, len(nextCosts))
		} else {
			for w := 1; w < len(next.WorkerSlices); w++ {
				begin, end := int(next.WorkerSlices[w-1]), int(next.WorkerSlices[w])
				pool.Run(func() { pullCosts(begin, end) })
			}
			pool.Wait()
		}
	}

	terminal := minCosts[width]
	if len(terminal) == 0 {
		return Result{}, ErrInfeasibleRow
	}

	lowestCost := terminal[0]
	possibleLowest := []int{0}
	for s := 1; s < len(terminal); s++ {
		switch {
		case terminal[s] < lowestCost:
			lowestCost = terminal[s]
			possibleLowest = []int{s}
		case terminal[s] == lowestCost:
			possibleLowest = append(possibleLowest, s)
		}
	}
	if math.IsInf(lowestCost, 1) {
		return Result{}, ErrInfeasibleRow
	}

	tiesBefore := chooser.Ties()
	lowest := possibleLowest[chooser.Choose(len(possibleLowest))]

	path := make([]int, width+1)
	path[width] = lowest
	for x := width - 1; x >= 0; x-- {
		next := table.Saturate(tables, x+1)
		prevX := minCosts[x]

		begin := next.FirstFrom[path[x+1]]
		end := next.FirstFrom[path[x+1]+1]

		best := math.Inf(1)
		var bestFroms []int
		for _, edge := range next.Froms[begin:end] {
			_, from := table.Unpack(edge)
			test := prevX[from]
			switch {
			case test < best:
				best = test
				bestFroms = []int{int(from)}
			case test == best:
				bestFroms = append(bestFroms, int(from))
			}
		}
		path[x] = bestFroms[chooser.Choose(len(bestFroms))]
	}

	yarnsOut := make([]uint8, width)
	checkCost := 0.0
	for x := 0; x < width; x++ {
		next := table.Saturate(tables, x+1)

		// The placed yarn at x is recovered directly from the edge that
		// connects path[x] to path[x+1]: since next_states only ever
		// produces one yarn per (from, to) pair, the edge is unambiguous.
		begin := next.FirstFrom[path[x+1]]
		end := next.FirstFrom[path[x+1]+1]
		found := false
		for _, edge := range next.Froms[begin:end] {
			y, from := table.Unpack(edge)
			if int(from) == path[x] {
				yarnsOut[x] = y
				found = true
				break
			}
		}
		if !found {
			return Result{}, ErrCostMismatch
		}

		checkCost += diff.Cost(pixels[x], yarns[yarnsOut[x]])
	}

	if checkCost != lowestCost {
		return Result{}, ErrCostMismatch
	}

	return Result{Yarns: yarnsOut, Cost: lowestCost, Ties: chooser.Ties() - tiesBefore}, nil
}
