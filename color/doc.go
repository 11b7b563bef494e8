// Package color represents linear-light RGB colors and the conversions
// between sRGB-encoded and linear-light representations, plus the OKLab
// perceptual space used by the default cost function.
//
// Colors are loaded and saved as sRGB, converted to linear for processing
// (error diffusion operates on linear light), and converted to OKLab only
// when measuring perceptual difference.
//
// Values are nominally in [0,1] but are never clamped on the way in: error
// diffusion can push a component outside that range, and callers that need
// an 8-bit sRGB value back must go through ToSRGBClamped.
package color
