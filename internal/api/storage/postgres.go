package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ljchuang/sweepbook/internal/api/domain"
	"github.com/ljchuang/sweepbook/shared/postgresql"
)

const selectJobs = `
	SELECT
		job_id, date, client_name, hours, hourly_rate,
		total, time_slot, address
	FROM jobs
`

// Postgres is the durable record store. Every write runs the same
// sequence the table model demands: read all rows, mutate the in-memory
// table, write the change back. The mutex serializes that sequence per
// store instance so two writes cannot interleave on stale reads.
type Postgres struct {
	db     *sqlx.DB
	logger *slog.Logger
	mu     sync.Mutex
	now    func() time.Time
}

// NewPostgres creates a record store over an established client.
func NewPostgres(pg *postgresql.Client, logger *slog.Logger) *Postgres {
	return &Postgres{
		db:     pg.GetDB(),
		logger: logger,
		now:    time.Now,
	}
}

func (s *Postgres) load(ctx context.Context) (*rowTable, error) {
	var rows []domain.Job
	if err := s.db.SelectContext(ctx, &rows, selectJobs+" ORDER BY pos"); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return newRowTable(rows), nil
}

// Append assigns a fresh id, writes the job as the last row and returns
// the id.
func (s *Postgres) Append(ctx context.Context, job domain.Job) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load(ctx)
	if err != nil {
		return "", err
	}

	job.ID = table.assignID(s.now().UnixNano())
	pos := table.len()

	query := `
		INSERT INTO jobs (
			pos, job_id, date, client_name, hours,
			hourly_rate, total, time_slot, address
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9
		)
	`
	_, err = s.db.ExecContext(ctx, query,
		pos,
		job.ID,
		job.Date,
		job.ClientName,
		job.Hours,
		job.HourlyRate,
		job.Total,
		job.TimeSlot,
		job.Address,
	)
	if err != nil {
		return "", fmt.Errorf("failed to append row: %w", err)
	}

	s.logger.Debug("Row appended",
		slog.String("job_id", job.ID),
		slog.Int("pos", pos),
	)

	return job.ID, nil
}

// Get returns the job for id, or domain.ErrJobNotFound.
func (s *Postgres) Get(ctx context.Context, id string) (domain.Job, error) {
	table, err := s.load(ctx)
	if err != nil {
		return domain.Job{}, err
	}

	job, ok := table.get(id)
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound
	}
	return job, nil
}

// ReadAll returns every row in position order.
func (s *Postgres) ReadAll(ctx context.Context) ([]domain.Job, error) {
	table, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return table.snapshot(), nil
}

// Update merges the patch onto the row for id, recomputing the total
// when hours or hourly_rate changed, and rewrites the row.
func (s *Postgres) Update(ctx context.Context, id string, patch domain.Patch) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load(ctx)
	if err != nil {
		return domain.Job{}, err
	}

	merged, _, ok := table.applyPatch(id, patch)
	if !ok {
		return domain.Job{}, domain.ErrJobNotFound
	}

	query := `
		UPDATE jobs
		SET date = $1, client_name = $2, hours = $3, hourly_rate = $4,
			total = $5, time_slot = $6, address = $7, updated_at = NOW()
		WHERE job_id = $8
	`
	_, err = s.db.ExecContext(ctx, query,
		merged.Date,
		merged.ClientName,
		merged.Hours,
		merged.HourlyRate,
		merged.Total,
		merged.TimeSlot,
		merged.Address,
		merged.ID,
	)
	if err != nil {
		return domain.Job{}, fmt.Errorf("failed to update row: %w", err)
	}

	return merged, nil
}

// Delete removes the row for id and compacts: every later row shifts up
// one position inside a single transaction, so the table stays dense and
// readers never have to skip gaps.
func (s *Postgres) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.load(ctx)
	if err != nil {
		return err
	}

	pos, ok := table.find(id)
	if !ok {
		return domain.ErrJobNotFound
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE job_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete row: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE jobs SET pos = pos - 1 WHERE pos > $1`, pos); err != nil {
		return fmt.Errorf("failed to compact rows: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	s.logger.Debug("Row deleted",
		slog.String("job_id", id),
		slog.Int("pos", pos),
	)

	return nil
}
