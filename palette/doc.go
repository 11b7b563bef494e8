// Package palette selects a fixed-size subset of a larger yarn
// collection to use as the working palette, by exhaustively trying every
// combination and keeping the one that minimizes quantization error.
//
// The estimate ignores both fabrication constraints and error diffusion:
// it is only ever used to narrow down a large yarn collection before the
// real solve, not as a substitute for it. Because it is exhaustive (every
// C(n, k) combination is scored against every pixel), callers must keep n
// and k small; beyond maxCombinations (2,000,000) combinations SelectSubset
// returns ErrTooManyCombinations rather than silently grinding forever.
package palette
