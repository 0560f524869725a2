package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ljchuang/sweepbook/internal/api/domain"
	"github.com/ljchuang/sweepbook/internal/api/dto"
)

// DefaultMoveTimeout bounds how long a reschedule request may hold its
// in-flight slot before it is rolled back.
const DefaultMoveTimeout = 10 * time.Second

// inflightMove is the transient slot held while a reschedule request is
// on the wire: where the record came from and a snapshot of it. The
// mirror is not touched until the request resolves.
type inflightMove struct {
	fromDate string
	pos      int
	job      domain.Job
}

// Mirror is the client-held, date-keyed copy of one month's jobs. It is
// owned by a single goroutine (the UI loop), so it carries no locking;
// every mutation happens only after the corresponding request succeeded,
// which means the mirror never holds a record the store does not. It can
// lag behind writes made by another client until the next Reload.
type Mirror struct {
	api         API
	logger      *slog.Logger
	moveTimeout time.Duration

	monthKey string
	buckets  map[string][]domain.Job
	inflight *inflightMove
}

// NewMirror creates an empty mirror over an API.
func NewMirror(api API, logger *slog.Logger) *Mirror {
	return &Mirror{
		api:         api,
		logger:      logger,
		moveTimeout: DefaultMoveTimeout,
		buckets:     make(map[string][]domain.Job),
	}
}

// SetMoveTimeout overrides the reschedule request deadline. Zero and
// negative values keep the current one.
func (m *Mirror) SetMoveTimeout(d time.Duration) {
	if d > 0 {
		m.moveTimeout = d
	}
}

// MonthKey returns the currently loaded month, empty before the first
// successful Reload.
func (m *Mirror) MonthKey() string {
	return m.monthKey
}

// Jobs returns the bucket for a date key in insertion order.
func (m *Mirror) Jobs(dateKey string) []domain.Job {
	return m.buckets[dateKey]
}

// Busy reports whether a reschedule request is still in flight.
func (m *Mirror) Busy() bool {
	return m.inflight != nil
}

// Reload replaces the whole mirror with the month window from the
// service. Fetch first: only after it succeeds is the old state cleared
// and rebuilt, so a failed reload leaves the previous mirror intact.
func (m *Mirror) Reload(ctx context.Context, monthKey string) error {
	jobs, err := m.api.ListByMonth(ctx, monthKey)
	if err != nil {
		m.logger.Warn("Month reload failed, keeping previous mirror",
			slog.String("month", monthKey),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to reload month %s: %w", monthKey, err)
	}

	buckets := make(map[string][]domain.Job, len(jobs))
	for _, job := range jobs {
		buckets[job.Date] = append(buckets[job.Date], job)
	}

	m.monthKey = monthKey
	m.buckets = buckets

	m.logger.Debug("Mirror rebuilt",
		slog.String("month", monthKey),
		slog.Int("jobs", len(jobs)),
	)
	return nil
}

// Create books a new job and, on success, appends the confirmed record
// to its date bucket. On failure the mirror is untouched.
func (m *Mirror) Create(ctx context.Context, req dto.CreateJobRequest) (domain.Job, error) {
	job, err := m.api.Create(ctx, req)
	if err != nil {
		return domain.Job{}, err
	}

	m.buckets[job.Date] = append(m.buckets[job.Date], job)
	return job, nil
}

// Move reschedules a job from one date to another. The record sits in an
// in-flight slot while the request runs; the buckets are rewritten only
// after the service confirmed the move. On any failure, including the
// timeout, the buckets are exactly as they were before the attempt. The
// slot is cleared either way.
func (m *Mirror) Move(ctx context.Context, id, fromDate, toDate string) error {
	if fromDate == toDate {
		m.inflight = nil
		return nil
	}

	pos := -1
	for i, job := range m.buckets[fromDate] {
		if job.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return fmt.Errorf("job %s not in bucket %s: %w", id, fromDate, domain.ErrJobNotFound)
	}

	m.inflight = &inflightMove{
		fromDate: fromDate,
		pos:      pos,
		job:      m.buckets[fromDate][pos],
	}
	defer func() { m.inflight = nil }()

	reqCtx, cancel := context.WithTimeout(ctx, m.moveTimeout)
	defer cancel()

	moved, err := m.api.Move(reqCtx, id, toDate)
	if err != nil {
		m.logger.Warn("Move failed, mirror unchanged",
			slog.String("job_id", id),
			slog.String("from", fromDate),
			slog.String("to", toDate),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to move job %s: %w", id, err)
	}

	source := m.buckets[fromDate]
	m.buckets[fromDate] = append(source[:pos:pos], source[pos+1:]...)
	if len(m.buckets[fromDate]) == 0 {
		delete(m.buckets, fromDate)
	}
	m.buckets[toDate] = append(m.buckets[toDate], moved)

	return nil
}

// Delete removes a job. On success the record leaves its bucket and an
// emptied bucket is dropped; on failure the mirror is untouched.
func (m *Mirror) Delete(ctx context.Context, id, dateKey string) error {
	if err := m.api.Delete(ctx, id); err != nil {
		return err
	}

	bucket := m.buckets[dateKey]
	for i, job := range bucket {
		if job.ID == id {
			m.buckets[dateKey] = append(bucket[:i:i], bucket[i+1:]...)
			break
		}
	}
	if len(m.buckets[dateKey]) == 0 {
		delete(m.buckets, dateKey)
	}
	return nil
}

// MonthTotal sums the totals of every job in the mirror.
func (m *Mirror) MonthTotal() float64 {
	var total float64
	for _, bucket := range m.buckets {
		for _, job := range bucket {
			total += job.Total
		}
	}
	return total
}

// DayStats summarizes one date bucket for the detail view.
type DayStats struct {
	Jobs  int
	Hours float64
	Total float64
}

// Stats aggregates the bucket for a date key.
func (m *Mirror) Stats(dateKey string) DayStats {
	var stats DayStats
	for _, job := range m.buckets[dateKey] {
		stats.Jobs++
		stats.Hours += job.Hours
		stats.Total += job.Total
	}
	return stats
}
