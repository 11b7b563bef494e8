package state_test

import (
	"testing"

	"github.com/knitloom/knitdither/state"
	"github.com/stretchr/testify/assert"
)

// TestInitialIsZeroState verifies the fresh-row state has no yarn used and
// no crossing.
func TestInitialIsZeroState(t *testing.T) {
	s := state.Initial(3)
	assert.Equal(t, state.State{}, s)
}

// TestNextDisabledWindows verifies that with both windows disabled, every
// yarn is always a valid successor and last_used saturates at {0,1,2}.
func TestNextDisabledWindows(t *testing.T) {
	c := state.Constraints{UseWithin: 0, CrossWithin: 0, K: 2}
	s := state.Initial(2)

	trans := state.Next(s, 0, c)
	assert.Len(t, trans, 2, "both yarns always usable when windows disabled")

	// Placing yarn 0 then yarn 1: yarn 0's last_used should saturate to 2,
	// not grow further.
	afterFirst := trans[0].Next
	assert.Equal(t, uint8(1), afterFirst.LastUsed[0])
	assert.Equal(t, uint8(0), afterFirst.LastUsed[1])

	trans2 := state.Next(afterFirst, 1, c)
	assert.Len(t, trans2, 2)
	var placedOther state.State
	for _, tr := range trans2 {
		if tr.Yarn == 1 {
			placedOther = tr.Next
		}
	}
	assert.Equal(t, uint8(2), placedOther.LastUsed[0], "previous use saturates at 2, never grows")
	assert.Equal(t, uint8(1), placedOther.LastUsed[1])
}

// TestNextUseWithinRejectsRepeat verifies that with use_within=2 and K=2,
// using the same yarn twice in a row is invalid (the other yarn would be
// starved).
func TestNextUseWithinRejectsRepeat(t *testing.T) {
	c := state.Constraints{UseWithin: 2, CrossWithin: 0, K: 2}
	s := state.Initial(2)

	trans := state.Next(s, 0, c)
	assert.Len(t, trans, 2)

	// After placing yarn 0 at x=0, at x=1 only yarn 1 should be valid
	// (yarn 0 was just used, and the window length is 2).
	var afterYarn0 state.State
	for _, tr := range trans {
		if tr.Yarn == 0 {
			afterYarn0 = tr.Next
		}
	}
	trans2 := state.Next(afterYarn0, 1, c)
	assert.Len(t, trans2, 1)
	assert.Equal(t, uint8(1), trans2[0].Yarn)
}

// TestNextCrossWithinRequiresOddGap verifies a crossing is only registered
// when the same yarn is reused an odd number of stitches later.
func TestNextCrossWithinRequiresOddGap(t *testing.T) {
	c := state.Constraints{UseWithin: 0, CrossWithin: 4, K: 1}
	s := state.Initial(1)

	// x=0: place yarn 0.
	t1 := state.Next(s, 0, c)
	assert.Len(t, t1, 1)
	s1 := t1[0].Next
	assert.Equal(t, uint8(0), s1.LastCross)

	// x=1: place yarn 0 again (gap of 1, odd) -> crossing at distance 2.
	t2 := state.Next(s1, 1, c)
	assert.Len(t, t2, 1)
	s2 := t2[0].Next
	assert.Equal(t, uint8(2), s2.LastCross)
}

// TestNextAscendingYarnOrder verifies successors are emitted in ascending
// yarn order.
func TestNextAscendingYarnOrder(t *testing.T) {
	c := state.Constraints{UseWithin: 0, CrossWithin: 0, K: 4}
	s := state.Initial(4)
	trans := state.Next(s, 0, c)
	for i, tr := range trans {
		assert.Equal(t, uint8(i), tr.Yarn)
	}
}

// TestNextSingleYarnUseWithinOneHasSuccessor verifies a palette of 1 yarn
// with use_within equal to the palette size still has a valid successor:
// placing the only yarn satisfies a window of one stitch.
func TestNextSingleYarnUseWithinOneHasSuccessor(t *testing.T) {
	c := state.Constraints{UseWithin: 1, CrossWithin: 0, K: 1}
	s := state.Initial(1)
	trans := state.Next(s, 0, c)
	assert.Len(t, trans, 1, "single yarn, window of 1, is trivially satisfiable every stitch")
}
