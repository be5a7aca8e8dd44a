package notify

import (
	"context"
	"encoding/json"

	"bobapos/internal/config"
	"bobapos/internal/connections/rabbitmq"
	"bobapos/internal/domain"
	"bobapos/internal/logger"
)

// Run consumes order events and logs them for the barista/menu board until
// ctx is canceled.
func Run(ctx context.Context, cfg *config.Config) error {
	lg := logger.New("board-notifier")

	client, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.DeclareTopology(); err != nil {
		return err
	}

	deliveries, err := client.Consume(rabbitmq.BoardQueue, "board-notifier", 1)
	if err != nil {
		return err
	}

	lg.Info("subscriber_started", map[string]any{"queue": rabbitmq.BoardQueue})
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			var event domain.OrderEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				lg.Error("event_decode_failed", err, nil)
				_ = d.Nack(false, false)
				continue
			}
			lg.Info("order_event", map[string]any{
				"order_id":   event.OrderID,
				"status":     event.Status,
				"total_cost": event.TotalCost,
				"items":      len(event.Items),
			})
			_ = d.Ack(false)
		}
	}
}
