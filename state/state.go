package state

// MaxYarns is the largest palette size this package (and the table edge
// packing built on top of it) supports: yarn indices must fit in 5 bits, so
// K <= MaxYarns. See table.KMax, which is defined as an alias of this
// constant so the two packages cannot drift apart.
const MaxYarns = 31

// Constraints bundles the parameters that govern state validity and
// successor enumeration: the palette size K and the two fabrication
// windows. CrossWithin == 0 disables crossing tracking; UseWithin == 0
// disables the float-length bound.
type Constraints struct {
	UseWithin   int
	CrossWithin int
	K           int
}

// State is a compact summary of a row's sliding-window history as of some
// column: for each yarn, how many stitches ago it was last used (0 meaning
// "never, this row"), and how many stitches ago the most recent crossing
// started (0 meaning "no crossing yet").
//
// State is deliberately a plain comparable value (a fixed array, not a
// slice) so it can be used directly as a map key.
type State struct {
	LastUsed  [MaxYarns]uint8
	LastCross uint8
}

// Initial returns the "start of row" state for a palette of size k: no
// yarn has been used yet, and no crossing has happened.
func Initial(k int) State {
	return State{}
}

// Transition is one successor edge out of a state: placing Yarn at the
// current column leads to Next.
type Transition struct {
	Yarn uint8
	Next State
}

// Next enumerates, in ascending yarn order, every (yarn, successor) pair
// reachable from s by placing one more stitch at column x (0-based). The
// enumeration is pure and deterministic.
func Next(s State, x int, c Constraints) []Transition {
	out := make([]Transition, 0, c.K)
	for y := 0; y < c.K; y++ {
		next := s

		// 1) Advance every nonzero last_used counter by one stitch, and
		// advance last_cross if a crossing is already pending.
		if c.CrossWithin != 0 && next.LastCross != 0 {
			next.LastCross++
		}
		for i := 0; i < c.K; i++ {
			if next.LastUsed[i] == 0 {
				continue
			}
			next.LastUsed[i]++
			if c.UseWithin == 0 {
				if c.CrossWithin == 0 {
					// Neither window tracked: only "never / just-used /
					// used-before" distinctions matter.
					next.LastUsed[i] = 2
				} else if int(next.LastUsed[i]) > c.CrossWithin+1 {
					next.LastUsed[i] = uint8(c.CrossWithin + 1)
				}
			}
		}

		// 2) Detect a crossing: yarn y is about to be used an odd number
		// of stitches after some use that is currently an even number of
		// stitches ago.
		if c.CrossWithin != 0 && next.LastUsed[y] != 0 && next.LastUsed[y]%2 == 0 {
			if next.LastCross == 0 || int(next.LastCross) > int(next.LastUsed[y]) {
				next.LastCross = next.LastUsed[y]
			}
		}

		// 3) Mark the yarn used.
		next.LastUsed[y] = 1

		// 4) Validate against both windows.
		if !valid(next, x, c) {
			continue
		}

		out = append(out, Transition{Yarn: uint8(y), Next: next})
	}
	return out
}

func valid(s State, x int, c Constraints) bool {
	if c.UseWithin != 0 {
		for i := 0; i < c.K; i++ {
			if s.LastUsed[i] == 0 {
				// Never used yet: treat as if last used just left of x=0,
				// i.e. it has UseWithin-x-1 stitches left to be used in.
				if x+2 > c.UseWithin {
					return false
				}
			} else if int(s.LastUsed[i]) > c.UseWithin {
				return false
			}
		}
	}
	if c.CrossWithin != 0 {
		if s.LastCross == 0 {
			if x+2 > c.CrossWithin {
				return false
			}
		} else if int(s.LastCross) > c.CrossWithin {
			return false
		}
	}
	return true
}
