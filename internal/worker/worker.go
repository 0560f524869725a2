package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ljchuang/sweepbook/internal/api/domain"
	"github.com/ljchuang/sweepbook/internal/worker/storage"
	"github.com/ljchuang/sweepbook/shared/rabbitmq"
)

// Config holds audit worker configuration
type Config struct {
	Logger        *slog.Logger
	Storage       *storage.Storage
	RabbitClient  *rabbitmq.Client
	Concurrency   int
	PrefetchCount int
}

// eventDelivery pairs a decoded job event with its AMQP delivery tag so
// the processing goroutine can ACK or NACK it.
type eventDelivery struct {
	event       domain.JobEvent
	deliveryTag uint64
}

// Worker consumes job events and records them in the audit trail.
type Worker struct {
	logger        *slog.Logger
	storage       *storage.Storage
	rabbitClient  *rabbitmq.Client
	concurrency   int
	prefetchCount int
	workerID      string

	eventsChan chan *eventDelivery
	wg         sync.WaitGroup
	stopChan   chan struct{}
}

// NewWorker creates a new audit worker instance.
func NewWorker(cfg *Config) *Worker {
	return &Worker{
		logger:        cfg.Logger,
		storage:       cfg.Storage,
		rabbitClient:  cfg.RabbitClient,
		concurrency:   cfg.Concurrency,
		prefetchCount: cfg.PrefetchCount,
		workerID:      "audit-" + uuid.New().String()[:8],
		eventsChan:    make(chan *eventDelivery),
		stopChan:      make(chan struct{}),
	}
}

// Start subscribes to the event queue, spawns the pool and dispatches
// deliveries until the context is canceled.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting audit worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
	)

	deliveries, err := w.setupConsumer(ctx)
	if err != nil {
		return fmt.Errorf("failed to setup consumer: %w", err)
	}

	w.spawnPool(ctx)
	w.dispatch(ctx, deliveries)

	return nil
}

// Stop gracefully stops the worker pool.
func (w *Worker) Stop() {
	w.logger.Info("Stopping audit worker...")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Audit worker stopped")
}
