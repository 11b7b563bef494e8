package palette_test

import (
	"testing"

	"github.com/knitloom/knitdither/color"
	"github.com/knitloom/knitdither/cost"
	"github.com/knitloom/knitdither/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSubsetPicksClosestColors(t *testing.T) {
	colors := []color.Linear{
		{R: 0}, {R: 0.3}, {R: 0.6}, {R: 1},
	}
	// Pixels clustered near 0 and near 1: the best 2-subset should be
	// {0, 1}, not any pair including the middle colors.
	pixels := []color.Linear{{R: 0.02}, {R: 0}, {R: 0.98}, {R: 1}}

	sel, err := palette.SelectSubset(colors, pixels, 2, cost.LinearDifference{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 3}, sel.Indices)
}

func TestSelectSubsetFullSizeIsIdentity(t *testing.T) {
	colors := []color.Linear{{R: 0}, {R: 0.5}, {R: 1}}
	pixels := []color.Linear{{R: 0.1}, {R: 0.9}}

	sel, err := palette.SelectSubset(colors, pixels, 3, cost.LinearDifference{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2}, sel.Indices)
}

func TestSelectSubsetTooLarge(t *testing.T) {
	colors := []color.Linear{{R: 0}, {R: 1}}
	_, err := palette.SelectSubset(colors, nil, 3, cost.LinearDifference{})
	assert.ErrorIs(t, err, palette.ErrSubsetTooLarge)
}

func TestSelectSubsetTooManyCombinations(t *testing.T) {
	colors := make([]color.Linear, 60)
	_, err := palette.SelectSubset(colors, []color.Linear{{}}, 30, cost.LinearDifference{})
	assert.ErrorIs(t, err, palette.ErrTooManyCombinations)
}
