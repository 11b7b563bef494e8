package table

import (
	"errors"

	"github.com/knitloom/knitdither/state"
)

// KMax is the largest palette size the edge packing format supports. It is
// defined as an alias of state.MaxYarns so the two packages cannot drift
// apart: a yarn index must fit in the high 5 bits of a packed edge.
const KMax = state.MaxYarns

// YarnShift is the bit offset of the yarn index within a packed edge.
const YarnShift = 27

// StateMask selects the predecessor-state-index bits of a packed edge.
const StateMask = 1<<YarnShift - 1

func init() {
	// Compile-time-checkable contract: the yarn shift and state mask must
	// partition a uint32 exactly, and KMax yarns (5 bits) must fit above
	// the mask.
	if ^uint32(KMax<<YarnShift) != StateMask {
		panic("table: yarn shift does not avoid state mask perfectly")
	}
}

// Sentinel errors for table construction.
var (
	// ErrPaletteTooLarge indicates a palette size exceeding KMax.
	ErrPaletteTooLarge = errors.New("table: palette size exceeds KMax")

	// ErrNoValidStates indicates that, under the given constraints, a
	// column has no reachable valid state at all: no dither can exist.
	ErrNoValidStates = errors.New("table: no valid states reachable under the given constraints")
)

// Table holds, for one column x, the set of states an incoming path may be
// in, and (if it is not the very first table) the CSR edges that reach
// each of those states from the previous column's states.
type Table struct {
	// States are the reachable, valid states entering this column, in
	// first-seen order.
	States []state.State

	// FirstFrom is CSR row-offsets into Froms, length len(States)+1.
	// FirstFrom is only meaningful for tables past the first; the first
	// table in a stack has no incoming edges.
	FirstFrom []uint32

	// Froms holds packed (yarn, predecessor) edges, grouped by
	// destination state and sorted ascending within each group.
	Froms []uint32

	// WorkerSlices partitions the destination range [0, len(States)) into
	// contiguous chunks of roughly equal edge count, for parallel pull
	// relaxation. Populated by PrepareWorkers; nil until then.
	WorkerSlices []uint32
}

// Pack combines a yarn index and predecessor state index into one edge
// word.
func Pack(yarn uint8, predecessor uint32) uint32 {
	return uint32(yarn)<<YarnShift | (predecessor & StateMask)
}

// Unpack splits a packed edge word back into its yarn index and
// predecessor state index.
func Unpack(edge uint32) (yarn uint8, predecessor uint32) {
	return uint8(edge >> YarnShift), edge & StateMask
}

// Saturate returns tables[min(x, len(tables)-1)], the index-clamping
// helper used once the steady-state table has been detected and all later
// columns reuse its slot.
func Saturate(tables []*Table, x int) *Table {
	if x >= len(tables) {
		x = len(tables) - 1
	}
	return tables[x]
}
