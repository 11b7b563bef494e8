// Package diffusion implements the error-diffusion step run between rows:
// the quantization error of each placed stitch (the original pixel minus
// the chosen yarn color) is spread to nearby pixels in the row below, so
// their solve sees a color nudged to compensate for upstream choices.
//
// The kernel is a symmetric, three-tap variant of Floyd-Steinberg (the
// reference implementation notes the classic asymmetric kernel was
// deliberately replaced to avoid a left/right bias in a process that
// otherwise has no inherent direction): weight 2/16 two columns to the
// left, 5/16 directly below, and 2/16 two columns to the right, all on
// the next row. Taps that fall outside the image are simply dropped; the
// kernel is not renormalized, so total injected error is always <= 9/16
// of the original.
package diffusion
