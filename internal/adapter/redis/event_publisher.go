package redisadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"mesa-ledger/internal/core/domain"
)

// EventPublisher appends ledger events to a Redis stream so external
// consumers can follow state changes with XREAD or consumer groups.
type EventPublisher struct {
	rdb    *redis.Client
	stream string
	maxLen int64
	logger *slog.Logger
}

// NewEventPublisher returns a publisher writing to stream, trimmed
// approximately to maxLen entries when maxLen is positive.
func NewEventPublisher(rdb *redis.Client, stream string, maxLen int64, logger *slog.Logger) *EventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventPublisher{rdb: rdb, stream: stream, maxLen: maxLen, logger: logger}
}

// Publish pipelines one XADD per event.
func (p *EventPublisher) Publish(ctx context.Context, events ...domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	pipe := p.rdb.Pipeline()
	for _, e := range events {
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: p.stream,
			MaxLen: p.maxLen,
			Approx: p.maxLen > 0,
			Values: eventValues(e),
		})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		p.logger.Error("redis event publish failed",
			slog.String("stream", p.stream),
			slog.Int("events", len(events)),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// eventValues flattens an event into stream entry fields.
func eventValues(e domain.Event) map[string]any {
	values := map[string]any{
		"id":          e.ID,
		"name":        e.Name,
		"campaign_id": e.CampaignID,
		"actor":       e.Actor.Hex(),
		"subject":     e.Subject.Hex(),
		"amount":      e.Amount.Dec(),
		"at":          e.At.Format(time.RFC3339Nano),
	}
	if len(e.Attrs) > 0 {
		attrs, err := json.Marshal(e.Attrs)
		if err == nil {
			values["attrs"] = string(attrs)
		}
	}
	return values
}
