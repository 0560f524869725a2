package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ljchuang/sweepbook/internal/api/domain"
)

// Storage writes the job-event audit trail.
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance.
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// InsertEvent appends one audit row. Redeliveries of an already recorded
// event are treated as success so the consumer can ACK them.
func (s *Storage) InsertEvent(ctx context.Context, event domain.JobEvent) error {
	query := `
		INSERT INTO job_events (
			event_id, event_type, job_id, date, from_date, total, occurred_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		event.EventID,
		event.Type,
		event.JobID,
		event.Date,
		event.FromDate,
		event.Total,
		event.OccurredAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			s.logger.Warn("Duplicate job event ignored",
				slog.String("event_id", event.EventID),
			)
			return nil
		}
		return fmt.Errorf("failed to insert job event: %w", err)
	}

	return nil
}
