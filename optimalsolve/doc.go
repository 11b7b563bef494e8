// Package optimalsolve implements the exact, globally-optimal row solver:
// a dynamic program over the state-transition tables built by package
// table, with parallel forward pull relaxation and sequential backward
// reconstruction.
//
// For each row, the solver computes, for every state reachable at every
// column, the minimum total cost of any valid path from the row's start
// to that state (min_costs[x][state]). This "pull" formulation lets each
// destination state's minimum be computed independently of every other
// destination state at the same column, so the relaxation is
// embarrassingly parallel: the table's CSR destination range is
// partitioned into disjoint worker slices (table.PrepareWorkers) and
// handed to a workerpool.Pool.
//
// Backward reconstruction walks from a minimum-cost terminal state back
// to the start, breaking ties among equally-costed predecessors with a
// tiebreak.Chooser, and re-derives the placed yarn at each column by
// finding which successor of the predecessor state matches the chosen
// state. As a numerical sanity check, the solver re-sums the cost of the
// reconstructed path and requires it to equal the forward pass's minimum
// exactly: the same floating point additions in the same order must
// produce bit-identical totals.
package optimalsolve
