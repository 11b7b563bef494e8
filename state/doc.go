// Package state models the sliding-window history needed to decide, at any
// column of a row, whether placing a given yarn keeps both fabrication
// constraints satisfiable:
//
//   - use_within: every window of UseWithin consecutive stitches must use
//     every yarn at least once.
//   - cross_within: every window of CrossWithin consecutive stitches must
//     contain a crossing (two uses of the same yarn separated by an odd
//     number of stitches).
//
// A State is the minimal summary of the last max(UseWithin, CrossWithin)
// stitches sufficient to decide the validity of any future stitch. It is a
// small, fixed-size, comparable value — not a slice — so it can be used
// directly as a Go map key, the same role a custom std::hash<State>
// specialization plays in the C++ original.
package state
