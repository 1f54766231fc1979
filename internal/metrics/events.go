package metrics

import (
	"context"

	"github.com/velarium/scriptorium/internal/event"
	"github.com/velarium/scriptorium/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.QuoteRead,
		event.BoonDropped,
		event.LevelUp,
		event.BadgeUnlocked,
		event.DestinyChanged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.QuoteReadPayloadV1:
		QuotesRead.WithLabelValues(payload.Source).Inc()
		XPAwarded.Add(float64(payload.XPGained))

	case event.BoonDroppedPayloadV1:
		BoonsDropped.WithLabelValues(payload.Rarity).Inc()

	case event.LevelUpPayloadV1:
		LevelUps.Inc()

	case event.BadgeUnlockedPayloadV1:
		BadgesUnlocked.Inc()
		XPAwarded.Add(float64(payload.XPReward))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
