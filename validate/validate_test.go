package validate_test

import (
	"testing"

	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/cost"
	"github.com/knitloom/knitdither/validate"
	"github.com/stretchr/testify/assert"
)

func TestCheckRowAcceptsValidUseWithin(t *testing.T) {
	yarns := []uint8{0, 1, 0, 1}
	err := validate.CheckRow(yarns, 2, 2, 0)
	assert.NoError(t, err)
}

func TestCheckRowRejectsMissingYarnInWindow(t *testing.T) {
	yarns := []uint8{0, 0, 0, 1}
	err := validate.CheckRow(yarns, 2, 2, 0)
	assert.ErrorIs(t, err, validate.ErrUseWithinViolated)
}

func TestCheckRowAcceptsValidCrossWithin(t *testing.T) {
	// Same yarn at columns 0 and 3 (distance 3, odd) is a crossing
	// closing at column 3; every window of length 4 touching column 3
	// contains it.
	yarns := []uint8{0, 1, 1, 0}
	err := validate.CheckRow(yarns, 2, 0, 4)
	assert.NoError(t, err)
}

func TestCheckRowRejectsNoCrossing(t *testing.T) {
	// Alternating yarns every stitch: every gap between same-yarn uses
	// is even (2), never odd, so no crossing ever occurs.
	yarns := []uint8{0, 1, 0, 1, 0, 1}
	err := validate.CheckRow(yarns, 2, 0, 3)
	assert.ErrorIs(t, err, validate.ErrCrossWithinViolated)
}

func TestCheckRowDisabledWindowsAlwaysPass(t *testing.T) {
	yarns := []uint8{0, 0, 0, 0, 0}
	assert.NoError(t, validate.CheckRow(yarns, 1, 0, 0))
}

func TestCheckCostSumsPerColumnDifference(t *testing.T) {
	yarns := []uint8{0, 1}
	pixels := []color.Linear{{R: 0.1}, {R: 0.9}}
	palette := []color.Linear{{R: 0}, {R: 1}}
	got := validate.CheckCost(yarns, pixels, palette, cost.LinearDifference{})
	assert.Greater(t, got, 0.0)
}
