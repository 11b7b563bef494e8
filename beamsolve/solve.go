package beamsolve

import (
	"errors"
	"math"
	"sort"

	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/cost"
	"github.com/knitloom/knitdither/state"
	"github.com/knitloom/knitdither/tiebreak"
)

// block caps how many states of a layer are expanded in one pass: only
// the block cheapest (by running cost, ties broken by State's natural
// array ordering) are carried forward each time a layer is visited.
const block = 200

// ErrInfeasibleRow is returned when the search reaches no state at the
// final column: no dither exists for this row under the given constraints.
var ErrInfeasibleRow = errors.New("beamsolve: no valid dither exists for this row")

// Result is one row's approximately-solved yarn assignment.
type Result struct {
	// Yarns holds, for each column, the index into the palette of the
	// yarn placed there.
	Yarns []uint8

	// Cost is the total cost of the placed row.
	Cost float64

	// Optimal reports whether the beam search swept the entire row
	// before the width bound ever had to truncate a layer: true means
	// this result is exact, not merely an approximation.
	Optimal bool
}

type layer struct {
	visited  map[state.State]float64
	toExpand map[state.State]struct{}
}

func newLayer() layer {
	return layer{visited: make(map[state.State]float64), toExpand: make(map[state.State]struct{})}
}

// Row runs the anytime beam search for one row of width columns, widening
// its frontier until at least beamWidth distinct states have arrived at
// the final column (or the whole row has been swept exactly). chooser
// breaks ties among equally-costed final states and, during backward
// reconstruction, among equally-costed predecessors.
func Row(c state.Constraints, width int, pixels []color.Linear, yarns []color.Linear, diff cost.Difference, beamWidth int, chooser *tiebreak.Chooser) (Result, error) {
	if width == 0 {
		return Result{}, nil
	}
	if beamWidth < 1 {
		beamWidth = 1
	}

	yarnCosts := make([][]float64, width)
	for x := 0; x < width; x++ {
		row := make([]float64, len(yarns))
		for y, yc := range yarns {
			row[y] = diff.Cost(pixels[x], yc)
		}
		yarnCosts[x] = row
	}

	layers := make([]layer, width+1)
	for i := range layers {
		layers[i] = newLayer()
	}
	init := state.Initial(c.K)
	layers[0].visited[init] = 0
	layers[0].toExpand[init] = struct{}{}

	optimal := false
	for len(layers[width].visited) < beamWidth {
		x := 0
		for x < width && len(layers[x].toExpand) == 0 {
			x++
		}
		if x == width {
			optimal = true
			break
		}

		for ; x < width; x++ {
			prev := &layers[x]
			next := &layers[x+1]
			if len(prev.toExpand) == 0 {
				break
			}

			toExpand := make([]state.State, 0, len(prev.toExpand))
			for s := range prev.toExpand {
				toExpand = append(toExpand, s)
			}
			sort.Slice(toExpand, func(i, j int) bool {
				ci, cj := prev.visited[toExpand[i]], prev.visited[toExpand[j]]
				if ci != cj {
					return ci < cj
				}
				return lessState(toExpand[i], toExpand[j])
			})
			if len(toExpand) > block {
				toExpand = toExpand[:block]
			}

			for _, s := range toExpand {
				baseCost := prev.visited[s]
				for _, tr := range state.Next(s, x, c) {
					if c.UseWithin != 0 && !withinDeadline(tr.Next, x, width, c) {
						continue
					}
					nextCost := baseCost + yarnCosts[x][tr.Yarn]
					if existing, ok := next.visited[tr.Next]; !ok || existing > nextCost {
						next.visited[tr.Next] = nextCost
						next.toExpand[tr.Next] = struct{}{}
					}
				}
				delete(prev.toExpand, s)
			}
		}
	}

	if len(layers[width].visited) == 0 {
		return Result{}, ErrInfeasibleRow
	}

	finalStates := make([]state.State, 0, len(layers[width].visited))
	lowestCost := math.Inf(1)
	for s, cst := range layers[width].visited {
		if cst < lowestCost {
			lowestCost = cst
		}
		finalStates = append(finalStates, s)
	}
	var lowestCandidates []state.State
	for _, s := range finalStates {
		if layers[width].visited[s] == lowestCost {
			lowestCandidates = append(lowestCandidates, s)
		}
	}
	path := make([]state.State, width+1)
	path[width] = lowestCandidates[chooser.Choose(len(lowestCandidates))]

	yarnsOut := make([]uint8, width)
	for x := width - 1; x >= 0; x-- {
		prev := &layers[x]

		best := math.Inf(1)
		var bestFrom []state.State
		var bestYarn []uint8
		for fromState, fromCost := range prev.visited {
			for _, tr := range state.Next(fromState, x, c) {
				if tr.Next != path[x+1] {
					continue
				}
				candidate := fromCost + yarnCosts[x][tr.Yarn]
				switch {
				case candidate < best:
					best = candidate
					bestFrom = []state.State{fromState}
					bestYarn = []uint8{tr.Yarn}
				case candidate == best:
					bestFrom = append(bestFrom, fromState)
					bestYarn = append(bestYarn, tr.Yarn)
				}
			}
		}
		if len(bestFrom) == 0 {
			return Result{}, ErrInfeasibleRow
		}
		pick := chooser.Choose(len(bestFrom))
		path[x] = bestFrom[pick]
		yarnsOut[x] = bestYarn[pick]
	}

	return Result{Yarns: yarnsOut, Cost: lowestCost, Optimal: optimal}, nil
}

// withinDeadline applies the use-within-only look-ahead prune: it checks
// whether there is enough room left in the row for every yarn that is
// "due" to be used again before the row ends. It never considers
// cross_within, matching the reference implementation's asymmetric
// pruning.
func withinDeadline(s state.State, x, width int, c state.Constraints) bool {
	within := make([]int, 0, c.K)
	for i := 0; i < c.K; i++ {
		lu := s.LastUsed[i]
		var w int
		if lu == 0 {
			w = c.UseWithin - (x + 1)
		} else {
			w = 1 + c.UseWithin - int(lu)
		}
		within = append(within, w)
	}
	sort.Ints(within)
	for i, w := range within {
		if x+i+1 > width {
			break
		}
		if w < i+1 {
			return false
		}
	}
	return true
}

// lessState provides a total order over states for deterministic
// tie-breaking in the cost sort: states with equal running cost compare
// by their raw byte layout.
func lessState(a, b state.State) bool {
	for i := range a.LastUsed {
		if a.LastUsed[i] != b.LastUsed[i] {
			return a.LastUsed[i] < b.LastUsed[i]
		}
	}
	return a.LastCross < b.LastCross
}
