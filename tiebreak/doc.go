// Package tiebreak resolves ties among equally-costed candidates during
// backward reconstruction of a solved row. A Chooser wraps one
// deterministic selection policy, keyed by a seed with three distinct
// behaviors:
//
//	seed == 0: always pick the first candidate (fully deterministic,
//	           reproducible, and biased).
//	seed == 1: pick candidate (row mod n) (deterministic but varies by
//	           row, spreading the bias across the image).
//	seed >= 2: draw from a PRNG stream seeded by seed (not exactly
//	           uniform, but close enough for this application; see
//	           DESIGN.md for why math/rand stands in for the reference
//	           implementation's Mersenne Twister).
//
// A Chooser also counts how many times it was asked to break an actual
// tie (n > 1), which the solver surfaces as a diagnostic metric.
package tiebreak
