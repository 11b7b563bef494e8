// Package beamsolve implements the anytime beam-search row solver: an
// approximate alternative to package optimalsolve that trades exactness
// for speed by tracking only a bounded frontier of the best partial
// paths, widening that frontier only as far as needed to reach the end
// of the row.
//
// Each column x holds a Layer: a map from reachable State to the lowest
// cost seen so far for reaching it (visited), and the subset of those
// states not yet expanded into column x+1 (toExpand). Expansion proceeds
// layer by layer, left to right, until the final layer accumulates at
// least BeamWidth distinct terminal states (or the whole row has been
// swept through with no layer left unexpanded, in which case the search
// was exact despite the bound never binding).
//
// Two pruning/tie-breaking behaviors are carried over unchanged from the
// reference implementation, even though they read as asymmetric or
// non-deterministic:
//
//   - The "can this state still be completed" deadline pruning only
//     checks the use_within window, never cross_within. A state that is
//     about to violate its crossing window is still expanded; it is
//     simply never found valid by state.Next and so produces no
//     successors. This asymmetry is intentional here, not a bug: see
//     DESIGN.md.
//   - Final-state and backtrack tie-breaking picks whichever candidate a
//     Go map happens to yield first during iteration, which varies from
//     run to run (Go deliberately randomizes map iteration order). The
//     reference implementation exhibits the same property for the same
//     reason: it is driven by an unordered container's implementation-
//     defined iteration order, never specified as meaningfully
//     deterministic. Callers who need reproducible beam output should
//     prefer optimalsolve, or treat beamsolve's tie-breaks as arbitrary.
package beamsolve
