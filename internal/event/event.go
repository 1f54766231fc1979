package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	QuoteRead      Type = "quote.read"
	BoonDropped    Type = "boon.dropped"
	LevelUp        Type = "level.up"
	BadgeUnlocked  Type = "badge.unlocked"
	DestinyChanged Type = "destiny.changed"
)

// Typed event payloads for type safety

// QuoteReadPayloadV1 is the typed payload for quote read events
type QuoteReadPayloadV1 struct {
	QuoteID   string `json:"quote_id"`
	Source    string `json:"source"`
	XPGained  int    `json:"xp_gained"`
	Timestamp int64  `json:"timestamp"`
}

// BoonDroppedPayloadV1 is the typed payload for boon drop events
type BoonDroppedPayloadV1 struct {
	BoonID    string `json:"boon_id"`
	Name      string `json:"name"`
	Rarity    string `json:"rarity"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	OldLevel  int   `json:"old_level"`
	NewLevel  int   `json:"new_level"`
	TotalXP   int   `json:"total_xp"`
	Timestamp int64 `json:"timestamp"`
}

// BadgeUnlockedPayloadV1 is the typed payload for badge unlock events
type BadgeUnlockedPayloadV1 struct {
	BadgeID   string `json:"badge_id"`
	XPReward  int    `json:"xp_reward"`
	Timestamp int64  `json:"timestamp"`
}

// DestinyChangedPayloadV1 is the typed payload for destiny change events
type DestinyChangedPayloadV1 struct {
	OldTitle  string `json:"old_title"`
	NewTitle  string `json:"new_title"`
	Timestamp int64  `json:"timestamp"`
}

// NewQuoteReadEvent creates a quote read event
func NewQuoteReadEvent(quoteID, source string, xpGained int) Event {
	return Event{
		Version: SchemaVersion,
		Type:    QuoteRead,
		Payload: QuoteReadPayloadV1{
			QuoteID:   quoteID,
			Source:    source,
			XPGained:  xpGained,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBoonDroppedEvent creates a boon drop event
func NewBoonDroppedEvent(boonID, name, rarity string) Event {
	return Event{
		Version: SchemaVersion,
		Type:    BoonDropped,
		Payload: BoonDroppedPayloadV1{
			BoonID:    boonID,
			Name:      name,
			Rarity:    rarity,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLevelUpEvent creates a level up event
func NewLevelUpEvent(oldLevel, newLevel, totalXP int) Event {
	return Event{
		Version: SchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			TotalXP:   totalXP,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBadgeUnlockedEvent creates a badge unlock event
func NewBadgeUnlockedEvent(badgeID string, xpReward int) Event {
	return Event{
		Version: SchemaVersion,
		Type:    BadgeUnlocked,
		Payload: BadgeUnlockedPayloadV1{
			BadgeID:   badgeID,
			XPReward:  xpReward,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDestinyChangedEvent creates a destiny change event
func NewDestinyChangedEvent(oldTitle, newTitle string) Event {
	return Event{
		Version: SchemaVersion,
		Type:    DestinyChanged,
		Payload: DestinyChangedPayloadV1{
			OldTitle:  oldTitle,
			NewTitle:  newTitle,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; publishers treat failures as non-fatal.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopBus discards all events. Useful in tests and tools that do not care
// about side effects.
type NopBus struct{}

// Publish discards the event
func (NopBus) Publish(context.Context, Event) error { return nil }

// Subscribe discards the subscription
func (NopBus) Subscribe(Type, Handler) {}
