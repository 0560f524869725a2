package storage

import (
	"context"
	"sync"
	"time"

	"github.com/ljchuang/sweepbook/internal/api/domain"
)

// Memory is the in-process record store used in development mode and in
// tests. Same semantics as the Postgres store, same serialization of the
// read-modify-write sequence, no durability.
type Memory struct {
	mu    sync.Mutex
	table *rowTable
	now   func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		table: newRowTable(nil),
		now:   time.Now,
	}
}

// Append assigns a fresh id, writes the job as the last row and returns
// the id.
func (m *Memory) Append(ctx context.Context, job domain.Job) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job.ID = m.table.assignID(m.now().UnixNano())
	m.table.append(job)
	return job.ID, nil
}

// Get returns the job for id, or domain.ErrJobNotFound.
func (m *Memory) Get(ctx context.Context, id string) (domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.table.get(id)
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound
	}
	return job, nil
}

// ReadAll returns every row in position order.
func (m *Memory) ReadAll(ctx context.Context) ([]domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.table.snapshot(), nil
}

// Update merges the patch onto the row for id and returns the result.
func (m *Memory) Update(ctx context.Context, id string, patch domain.Patch) (domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, _, ok := m.table.applyPatch(id, patch)
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound
	}
	return job, nil
}

// Delete removes the row for id, compacting the table.
func (m *Memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.table.remove(id); !ok {
		return domain.ErrJobNotFound
	}
	return nil
}
