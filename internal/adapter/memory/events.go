package memory

import (
	"context"
	"log/slog"
	"sync"

	"mesa-ledger/internal/core/domain"
)

// eventLogCapacity bounds how many recent events an EventLog retains.
const eventLogCapacity = 4096

// EventLog records the most recent published events and writes each one to the logger. It
// is the default port.EventPublisher when no stream is configured.
type EventLog struct {
	mu     sync.Mutex
	logger *slog.Logger
	events []domain.Event
}

// NewEventLog returns a log writing to logger; nil discards log output.
func NewEventLog(logger *slog.Logger) *EventLog {
	return &EventLog{logger: logger}
}

// Publish appends events, dropping the oldest once the log is full, and
// logs each one at info level.
func (l *EventLog) Publish(ctx context.Context, events ...domain.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range events {
		if len(l.events) == eventLogCapacity {
			l.events = append(l.events[:0], l.events[1:]...)
		}
		l.events = append(l.events, e)
		if l.logger == nil {
			continue
		}
		l.logger.LogAttrs(ctx, slog.LevelInfo, "ledger event",
			slog.String("event_id", e.ID),
			slog.String("name", e.Name),
			slog.String("campaign_id", e.CampaignID),
			slog.String("actor", e.Actor.Hex()),
			slog.String("subject", e.Subject.Hex()),
			slog.String("amount", e.Amount.Dec()),
		)
	}
	return nil
}

// Events returns a copy of the retained events, oldest first.
func (l *EventLog) Events() []domain.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Event, len(l.events))
	copy(out, l.events)
	return out
}

// Names returns the published event names in order.
func (l *EventLog) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e.Name)
	}
	return out
}
