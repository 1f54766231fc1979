package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	var got []Event
	bus.Subscribe(QuoteRead, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	err := bus.Publish(context.Background(), NewQuoteReadEvent("q-1", "meditations.txt", 10))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, QuoteRead, got[0].Type)
	assert.Equal(t, SchemaVersion, got[0].Version)

	payload, ok := got[0].Payload.(QuoteReadPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "q-1", payload.QuoteID)
	assert.Equal(t, 10, payload.XPGained)
}

func TestMemoryBus_PublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewLevelUpEvent(1, 2, 400))
	assert.NoError(t, err)
}

func TestMemoryBus_PublishOnlyMatchingType(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	bus.Subscribe(BoonDropped, func(context.Context, Event) error {
		calls++
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), NewBadgeUnlockedEvent("first-quote", 25)))
	assert.Equal(t, 0, calls)

	require.NoError(t, bus.Publish(context.Background(), NewBoonDroppedEvent("b-1", "Tome of Wonder", "rare")))
	assert.Equal(t, 1, calls)
}

func TestMemoryBus_HandlerErrorsAreCollected(t *testing.T) {
	bus := NewMemoryBus()

	bus.Subscribe(DestinyChanged, func(context.Context, Event) error {
		return errors.New("boom")
	})
	delivered := false
	bus.Subscribe(DestinyChanged, func(context.Context, Event) error {
		delivered = true
		return nil
	})

	err := bus.Publish(context.Background(), NewDestinyChangedEvent("Novice Mystic", "Adept Mystic"))
	assert.Error(t, err)
	assert.True(t, delivered, "later handlers still run when an earlier one fails")
}

func TestNopBus(t *testing.T) {
	var bus Bus = NopBus{}
	bus.Subscribe(LevelUp, func(context.Context, Event) error { return errors.New("never called") })
	assert.NoError(t, bus.Publish(context.Background(), NewLevelUpEvent(4, 5, 2500)))
}
