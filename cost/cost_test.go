package cost_test

import (
	"testing"

	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/cost"
	"github.com/stretchr/testify/assert"
)

func TestLinearDifferenceZeroForIdentical(t *testing.T) {
	var d cost.LinearDifference
	c := color.Linear{R: 0.3, G: 0.6, B: 0.9}
	assert.Equal(t, 0.0, d.Cost(c, c))
}

func TestSRGBDifferenceZeroForIdentical(t *testing.T) {
	var d cost.SRGBDifference
	c := color.Linear{R: 0.2, G: 0.4, B: 0.1}
	assert.Equal(t, 0.0, d.Cost(c, c))
}

func TestOKLabDifferenceZeroForIdentical(t *testing.T) {
	var d cost.OKLabDifference
	c := color.Linear{R: 0.8, G: 0.1, B: 0.5}
	assert.Equal(t, 0.0, d.Cost(c, c))
}

func TestDemoDifferenceBuckets(t *testing.T) {
	var d cost.DemoDifference
	black := color.Linear{R: 0, G: 0, B: 0}
	white := color.Linear{R: 1, G: 1, B: 1}
	mid := color.Linear{R: 0.5, G: 0.5, B: 0.5}

	assert.Equal(t, 4.0, d.Cost(black, white))
	assert.Equal(t, 1.0, d.Cost(black, mid))
	assert.Equal(t, 1.0, d.Cost(white, mid))
	assert.Equal(t, 0.0, d.Cost(black, black))
}

func TestNamesAndHelpAreDistinct(t *testing.T) {
	diffs := []cost.Difference{
		cost.SRGBDifference{},
		cost.LinearDifference{},
		cost.OKLabDifference{},
		cost.DemoDifference{},
	}
	seen := map[string]bool{}
	for _, d := range diffs {
		assert.NotEmpty(t, d.Name())
		assert.NotEmpty(t, d.Help())
		assert.False(t, seen[d.Name()], "duplicate difference name %q", d.Name())
		seen[d.Name()] = true
	}
}
