package storage

import (
	"strconv"

	"github.com/ljchuang/sweepbook/internal/api/domain"
)

// rowTable is the ordered row set with an id→position side map. The map
// is rebuilt on every structural mutation (insert, delete) so lookups
// stay O(1) while the slice remains the source of truth. Positions are
// dense, 0..n-1, and never escape this package.
type rowTable struct {
	rows  []domain.Job
	index map[string]int
}

func newRowTable(rows []domain.Job) *rowTable {
	t := &rowTable{rows: rows}
	t.rebuildIndex()
	return t
}

func (t *rowTable) rebuildIndex() {
	t.index = make(map[string]int, len(t.rows))
	for i, row := range t.rows {
		t.index[row.ID] = i
	}
}

// find returns the row position for an id.
func (t *rowTable) find(id string) (int, bool) {
	pos, ok := t.index[id]
	return pos, ok
}

// assignID derives a fresh id from a nanosecond timestamp. Collisions
// with live rows are a real possibility on fast appends, so the clock
// value advances until the id is unused.
func (t *rowTable) assignID(nowNanos int64) string {
	id := strconv.FormatInt(nowNanos, 10)
	for {
		if _, taken := t.index[id]; !taken {
			return id
		}
		nowNanos++
		id = strconv.FormatInt(nowNanos, 10)
	}
}

// append writes the job as a new row at the end and returns its position.
func (t *rowTable) append(job domain.Job) int {
	pos := len(t.rows)
	t.rows = append(t.rows, job)
	t.rebuildIndex()
	return pos
}

// applyPatch merges patch fields onto the row for id. The merged row is
// returned along with its position.
func (t *rowTable) applyPatch(id string, patch domain.Patch) (domain.Job, int, bool) {
	pos, ok := t.index[id]
	if !ok {
		return domain.Job{}, 0, false
	}
	patch.Apply(&t.rows[pos])
	return t.rows[pos], pos, true
}

// remove deletes the row for id by compaction: every subsequent row
// shifts up one position and the index is rebuilt. No tombstones, ever.
func (t *rowTable) remove(id string) (int, bool) {
	pos, ok := t.index[id]
	if !ok {
		return 0, false
	}
	t.rows = append(t.rows[:pos], t.rows[pos+1:]...)
	t.rebuildIndex()
	return pos, true
}

// snapshot copies the rows in position order.
func (t *rowTable) snapshot() []domain.Job {
	out := make([]domain.Job, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *rowTable) get(id string) (domain.Job, bool) {
	pos, ok := t.index[id]
	if !ok {
		return domain.Job{}, false
	}
	return t.rows[pos], true
}

func (t *rowTable) len() int {
	return len(t.rows)
}
