package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljchuang/sweepbook/internal/api/domain"
)

func TestMemory_AppendAssignsDistinctIDs(t *testing.T) {
	store := NewMemory()
	// Frozen clock: every append sees the same nanosecond, forcing the
	// collision path.
	store.now = func() time.Time { return time.Unix(0, 1700000000000000000) }
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		id, err := store.Append(ctx, domain.Job{Date: "2025-06-10", ClientName: "A"})
		require.NoError(t, err)
		require.False(t, seen[id], "id %q assigned twice", id)
		seen[id] = true
	}

	rows, err := store.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestMemory_Lifecycle(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	job := domain.Job{Date: "2025-06-10", ClientName: "A", Hours: 3, HourlyRate: 200, Total: 600}
	id, err := store.Append(ctx, job)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 600.0, got.Total)

	newDate := "2025-06-12"
	updated, err := store.Update(ctx, id, domain.Patch{Date: &newDate})
	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "2025-06-12", updated.Date)
	assert.Equal(t, 600.0, updated.Total)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
	err = store.Delete(ctx, id)
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestMemory_NotFound(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	_, err := store.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	_, err = store.Update(ctx, "nope", domain.Patch{})
	assert.ErrorIs(t, err, domain.ErrJobNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "nope"), domain.ErrJobNotFound)
}
