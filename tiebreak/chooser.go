package tiebreak

import "math/rand"

// Chooser selects among a set of equally-costed candidates during
// backward reconstruction. A Chooser is not safe for concurrent use: the
// reconstruction it serves is itself single-threaded, one row at a time.
type Chooser struct {
	seed uint32
	row  uint32
	rng  *rand.Rand
	ties uint64
}

// NewChooser returns a Chooser implementing the seed-keyed policy
// described in the package doc. The PRNG stream (used only when
// seed >= 2) is seeded once, at construction, and advances across the
// whole image: this matches the reference implementation's single
// mt19937 instance shared by every row.
func NewChooser(seed uint32) *Chooser {
	c := &Chooser{seed: seed}
	if seed >= 2 {
		c.rng = rand.New(rand.NewSource(int64(seed)))
	}
	return c
}

// SetRow tells the Chooser which row is about to be reconstructed; it
// only affects the seed == 1 policy (row mod n).
func (c *Chooser) SetRow(row int) {
	c.row = uint32(row)
}

// Choose returns an index in [0, n) selecting among n equally-costed
// candidates. Choose panics if n <= 0: callers must never offer an empty
// candidate set.
func (c *Chooser) Choose(n int) int {
	if n <= 0 {
		panic("tiebreak: Choose called with n <= 0")
	}
	if n > 1 {
		c.ties++
	}
	switch {
	case c.seed == 0:
		return 0
	case c.seed == 1:
		return int(c.row % uint32(n))
	default:
		return c.rng.Intn(n)
	}
}

// Ties returns how many times Choose was asked to break an actual tie
// (n > 1), across the lifetime of this Chooser.
func (c *Chooser) Ties() uint64 {
	return c.ties
}
