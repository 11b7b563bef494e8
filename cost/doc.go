// Package cost defines the pluggable per-pixel, per-yarn difference
// functor consumed by the row solvers as cost(pixel, yarn) -> nonnegative
// scalar.
//
// Four implementations are provided, matching the reference tool's
// "--difference" choices: squared distance in sRGB, in linear RGB, in
// OKLab (the default, and the one that correlates best with perceived
// color difference), and a 3-bucket greyscale demo metric for black/white/
// grey yarn sets.
//
// Difference is dispatched once per (pixel, yarn) pair ahead of the hot
// per-edge relaxation loop in optimalsolve and beamsolve, never from
// inside it — see the per-row yarn-cost precompute in those packages.
package cost
