package worker

import (
	"context"
	"fmt"
	"log/slog"
)

// spawnPool starts N recording goroutines.
func (w *Worker) spawnPool(ctx context.Context) {
	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.recordLoop(ctx, i)
	}

	w.logger.Info("Audit pool spawned",
		slog.Int("workers", w.concurrency),
	)
}

// recordLoop inserts events into the audit trail. An insert failure is
// treated as transient and the delivery is requeued; a duplicate event
// id means the row is already recorded and the delivery is ACKed.
func (w *Worker) recordLoop(ctx context.Context, workerNum int) {
	defer w.wg.Done()

	name := fmt.Sprintf("%s-%d", w.workerID, workerNum)

	for {
		select {
		case <-w.stopChan:
			return

		case <-ctx.Done():
			return

		case ed, ok := <-w.eventsChan:
			if !ok {
				return
			}

			err := w.storage.InsertEvent(ctx, ed.event)

			channel := w.rabbitClient.GetChannel()
			if channel == nil {
				w.logger.Error("No RabbitMQ channel for ACK/NACK",
					slog.String("worker", name),
					slog.String("event_id", ed.event.EventID),
				)
				continue
			}

			if err != nil {
				w.logger.Error("Failed to record job event",
					slog.String("worker", name),
					slog.String("event_id", ed.event.EventID),
					slog.String("error", err.Error()),
				)
				if nackErr := channel.Nack(ed.deliveryTag, false, true); nackErr != nil {
					w.logger.Error("Failed to NACK event",
						slog.String("worker", name),
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			if ackErr := channel.Ack(ed.deliveryTag, false); ackErr != nil {
				w.logger.Error("Failed to ACK event",
					slog.String("worker", name),
					slog.String("error", ackErr.Error()),
				)
				continue
			}

			w.logger.Debug("Job event recorded",
				slog.String("worker", name),
				slog.String("event_id", ed.event.EventID),
				slog.String("type", ed.event.Type),
			)
		}
	}
}
