package domain

import "time"

const (
	EventJobCreated = "job.created"
	EventJobUpdated = "job.updated"
	EventJobMoved   = "job.moved"
	EventJobDeleted = "job.deleted"
)

// JobEvent is the message published after every successful mutation and
// consumed by the audit worker.
type JobEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	JobID      string    `json:"job_id"`
	Date       string    `json:"date,omitempty"`
	FromDate   string    `json:"from_date,omitempty"`
	Total      float64   `json:"total,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
