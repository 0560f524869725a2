package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljchuang/sweepbook/internal/api/domain"
)

func fixtureRows() []domain.Job {
	return []domain.Job{
		{ID: "100", Date: "2025-06-01", ClientName: "Chen", Hours: 2, HourlyRate: 300, Total: 600},
		{ID: "200", Date: "2025-06-10", ClientName: "Lin", Hours: 3, HourlyRate: 200, Total: 600},
		{ID: "300", Date: "2025-06-20", ClientName: "Wang", Hours: 1.5, HourlyRate: 400, Total: 600},
	}
}

func TestRowTable_Find(t *testing.T) {
	table := newRowTable(fixtureRows())

	pos, ok := table.find("200")
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	_, ok = table.find("999")
	assert.False(t, ok)
}

func TestRowTable_AssignID_Collision(t *testing.T) {
	table := newRowTable([]domain.Job{{ID: "1000"}, {ID: "1001"}})

	// Both candidate ids are taken; the clock value must advance past
	// them rather than reuse a live id.
	id := table.assignID(1000)
	assert.Equal(t, "1002", id)
}

func TestRowTable_Append(t *testing.T) {
	table := newRowTable(fixtureRows())

	pos := table.append(domain.Job{ID: "400", Date: "2025-06-25"})
	assert.Equal(t, 3, pos)

	found, ok := table.find("400")
	require.True(t, ok)
	assert.Equal(t, 3, found)
	assert.Equal(t, 4, table.len())
}

func TestRowTable_ApplyPatch(t *testing.T) {
	t.Run("pricing patch recomputes total from resulting values", func(t *testing.T) {
		table := newRowTable(fixtureRows())

		hours := 4.0
		merged, pos, ok := table.applyPatch("200", domain.Patch{Hours: &hours})
		require.True(t, ok)
		assert.Equal(t, 1, pos)
		assert.Equal(t, 4.0, merged.Hours)
		// Rate untouched by the patch, total uses the merged pair.
		assert.Equal(t, 200.0, merged.HourlyRate)
		assert.Equal(t, 800.0, merged.Total)
	})

	t.Run("date-only patch leaves total alone", func(t *testing.T) {
		table := newRowTable(fixtureRows())

		date := "2025-07-01"
		merged, _, ok := table.applyPatch("100", domain.Patch{Date: &date})
		require.True(t, ok)
		assert.Equal(t, "2025-07-01", merged.Date)
		assert.Equal(t, 600.0, merged.Total)
		assert.Equal(t, "100", merged.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		table := newRowTable(fixtureRows())

		_, _, ok := table.applyPatch("999", domain.Patch{})
		assert.False(t, ok)
	})
}

func TestRowTable_Remove_Compacts(t *testing.T) {
	table := newRowTable(fixtureRows())

	pos, ok := table.remove("200")
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	// The table stays dense: the row after the removed one shifted up
	// and the side map reflects the new positions.
	require.Equal(t, 2, table.len())
	p, ok := table.find("300")
	require.True(t, ok)
	assert.Equal(t, 1, p)
	p, ok = table.find("100")
	require.True(t, ok)
	assert.Equal(t, 0, p)

	_, ok = table.find("200")
	assert.False(t, ok)

	// Surviving rows keep their field values.
	job, ok := table.get("300")
	require.True(t, ok)
	assert.Equal(t, "Wang", job.ClientName)
	assert.Equal(t, 600.0, job.Total)
}

func TestRowTable_Snapshot_IsCopy(t *testing.T) {
	table := newRowTable(fixtureRows())

	snap := table.snapshot()
	snap[0].ClientName = "mutated"

	job, _ := table.get("100")
	assert.Equal(t, "Chen", job.ClientName)
}
