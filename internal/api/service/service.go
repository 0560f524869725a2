package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ljchuang/sweepbook/internal/api/domain"
)

// RecordStore is the ordered row table the service reads and writes.
// Both the Postgres and the in-memory store satisfy it.
type RecordStore interface {
	Append(ctx context.Context, job domain.Job) (string, error)
	Get(ctx context.Context, id string) (domain.Job, error)
	ReadAll(ctx context.Context) ([]domain.Job, error)
	Update(ctx context.Context, id string, patch domain.Patch) (domain.Job, error)
	Delete(ctx context.Context, id string) error
}

// EventPublisher emits a JobEvent after a successful mutation. May be
// nil, in which case events are skipped.
type EventPublisher interface {
	PublishJobEvent(ctx context.Context, event domain.JobEvent) error
}

// CreateInput is the validated shape of a booking request. Hours and
// HourlyRate of zero count as missing, matching the falsy semantics of
// the booking form.
type CreateInput struct {
	Date       string
	ClientName string
	Hours      float64
	HourlyRate float64
	TimeSlot   string
	Address    string
}

// Service is the only reader and writer of booking rules over the
// record store.
type Service struct {
	store  RecordStore
	events EventPublisher
	logger *slog.Logger
}

// New creates a Service. events may be nil.
func New(store RecordStore, events EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		events: events,
		logger: logger,
	}
}

// Create validates the input, derives the total and appends a new row.
// The returned job carries the assigned id.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Job, error) {
	var missing []string
	if input.Date == "" {
		missing = append(missing, "date")
	}
	if input.ClientName == "" {
		missing = append(missing, "client_name")
	}
	if input.Hours == 0 {
		missing = append(missing, "hours")
	}
	if input.HourlyRate == 0 {
		missing = append(missing, "hourly_rate")
	}
	if len(missing) > 0 {
		return domain.Job{}, domain.NewValidationError("missing required fields", missing...)
	}

	job := domain.Job{
		Date:       input.Date,
		ClientName: input.ClientName,
		Hours:      input.Hours,
		HourlyRate: input.HourlyRate,
		TimeSlot:   input.TimeSlot,
		Address:    input.Address,
	}
	job.ComputeTotal()

	id, err := s.store.Append(ctx, job)
	if err != nil {
		return domain.Job{}, s.storeFailure("append", err)
	}
	job.ID = id

	s.logger.Info("Job created",
		slog.String("job_id", job.ID),
		slog.String("date", job.Date),
		slog.Float64("total", job.Total),
	)
	s.publish(ctx, domain.EventJobCreated, job, "")

	return job, nil
}

// ListByMonth returns the jobs whose date starts with monthKey
// (YYYY-MM). This is a plain prefix match, not a parsed date range: a
// row dated "2025-06-1" still matches "2025-06" while "2025-6-01" does
// not, and a malformed date silently drops out of every month.
func (s *Service) ListByMonth(ctx context.Context, monthKey string) ([]domain.Job, error) {
	if monthKey == "" {
		return nil, domain.NewValidationError("missing month parameter", "month")
	}

	rows, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, s.storeFailure("read", err)
	}

	jobs := make([]domain.Job, 0, len(rows))
	for _, job := range rows {
		if job.Date != "" && strings.HasPrefix(job.Date, monthKey) {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

// UpdateFields merges the patch onto the job and returns the updated
// record; the total is recomputed whenever hours or hourly_rate change.
func (s *Service) UpdateFields(ctx context.Context, id string, patch domain.Patch) (domain.Job, error) {
	job, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return domain.Job{}, err
		}
		return domain.Job{}, s.storeFailure("update", err)
	}

	s.logger.Info("Job updated",
		slog.String("job_id", job.ID),
		slog.Float64("total", job.Total),
	)
	s.publish(ctx, domain.EventJobUpdated, job, "")

	return job, nil
}

// Move reschedules a job to newDate. Only the date changes; id and
// total are preserved.
func (s *Service) Move(ctx context.Context, id, newDate string) (domain.Job, error) {
	if newDate == "" {
		return domain.Job{}, domain.NewValidationError("missing new date", "date")
	}

	prev, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return domain.Job{}, err
		}
		return domain.Job{}, s.storeFailure("read", err)
	}

	job, err := s.store.Update(ctx, id, domain.Patch{Date: &newDate})
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return domain.Job{}, err
		}
		return domain.Job{}, s.storeFailure("update", err)
	}

	s.logger.Info("Job moved",
		slog.String("job_id", job.ID),
		slog.String("from", prev.Date),
		slog.String("to", job.Date),
	)
	s.publish(ctx, domain.EventJobMoved, job, prev.Date)

	return job, nil
}

// Remove deletes the job.
func (s *Service) Remove(ctx context.Context, id string) error {
	job, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return err
		}
		return s.storeFailure("read", err)
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return err
		}
		return s.storeFailure("delete", err)
	}

	s.logger.Info("Job removed",
		slog.String("job_id", id),
		slog.String("date", job.Date),
	)
	s.publish(ctx, domain.EventJobDeleted, job, "")

	return nil
}

// storeFailure wraps a lower-layer failure and logs it with context;
// persistence errors never pass through unlabeled.
func (s *Service) storeFailure(op string, err error) error {
	s.logger.Error("Record store operation failed",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	return domain.NewStoreError(op, err)
}

// publish emits a job event, fire and forget. A publish failure is
// logged and never fails the mutation that triggered it.
func (s *Service) publish(ctx context.Context, eventType string, job domain.Job, fromDate string) {
	if s.events == nil {
		return
	}

	event := domain.JobEvent{
		Type:     eventType,
		JobID:    job.ID,
		Date:     job.Date,
		FromDate: fromDate,
		Total:    job.Total,
	}
	if err := s.events.PublishJobEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish job event",
			slog.String("type", eventType),
			slog.String("job_id", job.ID),
			slog.String("error", err.Error()),
		)
	}
}
