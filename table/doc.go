// Package table builds the per-column state-transition table consumed by
// the optimal row solver: for each column x, the set of reachable, valid
// states entering column x, and a CSR-encoded (destination -> edges) map
// from states[x] to states[x+1].
//
// Edges pack (yarn index, predecessor state index) into a single uint32:
// the high 5 bits hold the yarn index (so K <= KMax == 31) and the low 27
// bits hold the predecessor index (so a column may have up to 2^27
// reachable states). This is a hard compile-time contract, checked by
// init().
//
// Table construction detects a steady-state fixed point: once the set of
// states entering column x+1 equals the set entering column x, the table
// is re-indexed to match exactly and reused for every later column,
// bounding the table stack's length independent of image width.
package table
