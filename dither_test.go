package knitdither_test

import (
	"testing"

	knitdither "github.com/knitloom/knitdither"
	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/cost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDitherUnconstrainedIsPerPixelArgMin mirrors the spec's first worked
// example: a row of pure red pixels with a {red, blue} palette and both
// windows disabled reduces to per-pixel nearest-color quantization.
func TestDitherUnconstrainedIsPerPixelArgMin(t *testing.T) {
	red := color.Linear{R: 1, G: 0, B: 0}
	blue := color.Linear{R: 0, G: 0, B: 1}
	image := []color.Linear{red, red, red, red}

	result, err := knitdither.Dither(knitdither.Params{
		Image:      image,
		Width:      4,
		Height:     1,
		Palette:    []color.Linear{red, blue},
		Difference: cost.LinearDifference{},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 0}, result.Raster)
	assert.InDelta(t, 0, result.Metrics.TotalCost, 1e-9)
}

// TestDitherUseWithinForcesAlternation mirrors the spec's second worked
// example: use_within=2 with a 2-color palette forces every 2-stitch
// window to contain both yarns.
func TestDitherUseWithinForcesAlternation(t *testing.T) {
	red := color.Linear{R: 1, G: 0, B: 0}
	blue := color.Linear{R: 0, G: 0, B: 1}
	image := []color.Linear{red, red, red, red}

	result, err := knitdither.Dither(knitdither.Params{
		Image:      image,
		Width:      4,
		Height:     1,
		Palette:    []color.Linear{red, blue},
		UseWithin:  2,
		Difference: cost.LinearDifference{},
		Seed:       0,
	})
	require.NoError(t, err)

	for x := 0; x+2 <= 4; x++ {
		window := result.Raster[x : x+2]
		assert.NotEqual(t, window[0], window[1], "window at %d must contain both yarns", x)
	}
}

// TestDitherConfigErrorUseWithinTooSmall mirrors the spec's infeasibility
// scenario: use_within nonzero but smaller than the palette size must
// fail fast, before any relaxation.
func TestDitherConfigErrorUseWithinTooSmall(t *testing.T) {
	palette := []color.Linear{{R: 0}, {R: 0.5}, {R: 1}}
	image := make([]color.Linear, 4)

	_, err := knitdither.Dither(knitdither.Params{
		Image:      image,
		Width:      4,
		Height:     1,
		Palette:    palette,
		UseWithin:  2,
		Difference: cost.LinearDifference{},
	})
	assert.ErrorIs(t, err, knitdither.ErrUseWithinTooSmall)
}

// TestDitherDimensionMismatch verifies the image/width/height contract.
func TestDitherDimensionMismatch(t *testing.T) {
	_, err := knitdither.Dither(knitdither.Params{
		Image:      make([]color.Linear, 3),
		Width:      2,
		Height:     2,
		Palette:    []color.Linear{{}, {}},
		Difference: cost.LinearDifference{},
	})
	assert.ErrorIs(t, err, knitdither.ErrDimensionMismatch)
}

// TestDitherDiffusionAffectsNextRow verifies quantization error diffused
// from row 0 nudges row 1's otherwise-exact midpoint pixels toward one
// yarn rather than the other. Row 0 is near-white (0.9), one step short
// of an exact match; row 1 sits exactly at the black/white midpoint
// (0.5), which diffusion alone should tip toward black.
func TestDitherDiffusionAffectsNextRow(t *testing.T) {
	near := color.Linear{R: 0.9, G: 0.9, B: 0.9}
	mid := color.Linear{R: 0.5, G: 0.5, B: 0.5}
	image := []color.Linear{near, near, near, mid, mid, mid}
	black := color.Linear{R: 0, G: 0, B: 0}
	white := color.Linear{R: 1, G: 1, B: 1}

	result, err := knitdither.Dither(knitdither.Params{
		Image:      image,
		Width:      3,
		Height:     2,
		Palette:    []color.Linear{black, white},
		Diffuse:    true,
		Difference: cost.LinearDifference{},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 1, 1, 0, 0, 0}, result.Raster)
}

// TestDitherBeamMethodProducesValidRaster verifies the beam solver runs
// end to end and produces a raster of the right shape.
func TestDitherBeamMethodProducesValidRaster(t *testing.T) {
	palette := []color.Linear{{R: 0}, {R: 0.5}, {R: 1}}
	image := make([]color.Linear, 20)
	for i := range image {
		image[i] = color.Linear{R: float64(i%3) / 2}
	}

	result, err := knitdither.Dither(knitdither.Params{
		Image:      image,
		Width:      20,
		Height:     1,
		Palette:    palette,
		UseWithin:  3,
		Method:     knitdither.Beam,
		BeamWidth:  30,
		Difference: cost.LinearDifference{},
	})
	require.NoError(t, err)
	assert.Len(t, result.Raster, 20)
}
