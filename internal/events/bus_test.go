package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	bus.Subscribe(TypeEntityDeath, func(any) { order = append(order, 1) })
	bus.Subscribe(TypeEntityDeath, func(any) { order = append(order, 2) })
	bus.Subscribe(TypeEntityDeath, func(any) { order = append(order, 3) })

	bus.Publish(TypeEntityDeath, EntityDeath{EntityID: 1})
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestPublishPayloadReachesHandler(t *testing.T) {
	bus := NewBus()

	var got EntityDeath
	bus.Subscribe(TypeEntityDeath, func(payload any) {
		got = payload.(EntityDeath)
	})

	bus.Publish(TypeEntityDeath, EntityDeath{EntityID: 42})
	assert.Equal(t, uint32(42), got.EntityID)
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewBus()
	// Must not panic.
	bus.Publish(TypeSpawnRequest, SpawnRequest{})
	assert.Equal(t, 0, bus.SubscriberCount(TypeSpawnRequest))
}

func TestSubscriberCount(t *testing.T) {
	bus := NewBus()
	bus.Subscribe(TypeRespawnAll, func(any) {})
	bus.Subscribe(TypeRespawnAll, func(any) {})
	assert.Equal(t, 2, bus.SubscriberCount(TypeRespawnAll))
}

func TestPublishIsolatedPerType(t *testing.T) {
	bus := NewBus()

	deaths, despawns := 0, 0
	bus.Subscribe(TypeEntityDeath, func(any) { deaths++ })
	bus.Subscribe(TypeMobDespawn, func(any) { despawns++ })

	bus.Publish(TypeEntityDeath, EntityDeath{EntityID: 1})
	assert.Equal(t, 1, deaths)
	assert.Equal(t, 0, despawns)
}
