package table

import "github.com/knitloom/knitdither/state"

// Build constructs the transition-table stack for a row of the given
// width under constraints c. The stack is the minimal prefix plus one
// reused steady-state table: once the set of states entering column x+1
// equals the set entering column x, that table is re-indexed to match and
// reused for all subsequent columns (Saturate handles the indexing).
func Build(c state.Constraints, width int) ([]*Table, error) {
	if c.K > KMax {
		return nil, ErrPaletteTooLarge
	}

	tables := make([]*Table, 0, width+1)
	tables = append(tables, &Table{States: []state.State{state.Initial(c.K)}})

	for x := 0; x < width; x++ {
		prev := tables[x]
		next, err := buildNext(prev, x, c, false)
		if err != nil {
			return nil, err
		}
		tables = append(tables, next)

		if len(prev.States) == len(next.States) && sameStateSet(prev.States, next.States) {
			reindexed, err := reindexToMatch(prev, next, x, c)
			if err != nil {
				return nil, err
			}
			tables[x+1] = reindexed
			break
		}
	}

	return tables, nil
}

// buildNext enumerates successors of every state in prev (at column x)
// and packs them into a CSR table, assigning new states indices in
// first-seen order. The trailing bool parameter is unused; re-indexing the
// steady-state table to prev's order is done by reindexToMatch.
func buildNext(prev *Table, x int, c state.Constraints, _ bool) (*Table, error) {
	next := &Table{}
	nextIndex := make(map[state.State]uint32, len(prev.States)*4)
	var buckets [][]uint32

	for s := 0; s < len(prev.States); s++ {
		for _, tr := range state.Next(prev.States[s], x, c) {
			to, ok := nextIndex[tr.Next]
			if !ok {
				to = uint32(len(nextIndex))
				nextIndex[tr.Next] = to
				next.States = append(next.States, tr.Next)
				buckets = append(buckets, nil)
			}
			buckets[to] = append(buckets[to], Pack(tr.Yarn, uint32(s)))
		}
	}

	if len(next.States) == 0 {
		return nil, ErrNoValidStates
	}

	flattenCSR(next, buckets)
	return next, nil
}

// reindexToMatch rebuilds next so its States slice is identical (same
// order) to prev.States, then rebuilds the CSR edges against that fixed
// order. This is what lets the steady-state table reference itself.
func reindexToMatch(prev, _ *Table, x int, c state.Constraints) (*Table, error) {
	next := &Table{States: append([]state.State(nil), prev.States...)}
	index := make(map[state.State]uint32, len(next.States))
	for i, s := range next.States {
		index[s] = uint32(i)
	}

	buckets := make([][]uint32, len(next.States))
	for s := 0; s < len(prev.States); s++ {
		for _, tr := range state.Next(prev.States[s], x, c) {
			to, ok := index[tr.Next]
			if !ok {
				// The caller already verified the state sets are equal;
				// this would indicate a logic error.
				return nil, ErrNoValidStates
			}
			buckets[to] = append(buckets[to], Pack(tr.Yarn, uint32(s)))
		}
	}

	flattenCSR(next, buckets)
	return next, nil
}

func flattenCSR(t *Table, buckets [][]uint32) {
	t.FirstFrom = make([]uint32, 0, len(buckets)+1)
	total := 0
	for _, b := range buckets {
		total += len(b)
	}
	t.Froms = make([]uint32, 0, total)
	for _, b := range buckets {
		t.FirstFrom = append(t.FirstFrom, uint32(len(t.Froms)))
		t.Froms = append(t.Froms, b...)
	}
	t.FirstFrom = append(t.FirstFrom, uint32(len(t.Froms)))
}

func sameStateSet(a, b []state.State) bool {
	set := make(map[state.State]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}

// PrepareWorkers partitions each table's destination range into
// contiguous slices of roughly equal edge count, for the forward pull
// relaxation to hand out to a worker pool. The heuristic (at least ~10000
// edges per slice) matches the original reference implementation: running
// with too little work per goroutine just adds synchronization overhead.
//
// The very first table (tables[0]) has no incoming edges and is skipped.
func PrepareWorkers(tables []*Table, nWorkers int) {
	const minEdgesPerWorker = 10000

	for i := 1; i < len(tables); i++ {
		t := tables[i]
		divisions := nWorkers
		if divisions < 1 {
			divisions = 1
		}
		if byCount := len(t.Froms) / minEdgesPerWorker; byCount < divisions {
			if byCount < 1 {
				byCount = 1
			}
			divisions = byCount
		}

		t.WorkerSlices = make([]uint32, 0, divisions+1)
		t.WorkerSlices = append(t.WorkerSlices, 0)

		target := len(t.Froms) / divisions
		if target < 1 {
			target = 1
		}

		sliceFroms := 0
		for to := 0; to < len(t.States); to++ {
			begin := t.FirstFrom[to]
			end := t.FirstFrom[to+1]
			sliceFroms += int(end - begin)
			last := to+1 == len(t.States)
			if sliceFroms >= target || last {
				t.WorkerSlices = append(t.WorkerSlices, uint32(to+1))
				sliceFroms = 0
			}
		}
	}
}
