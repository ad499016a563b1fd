// Package events provides the in-process event bus connecting the mob
// spawner, entity manager, and combat systems. Dispatch is synchronous
// and FIFO per event type: the simulation runs one logical tick at a
// time, so handlers never race each other.
package events

import (
	"log/slog"
	"sync"
)

// Type identifies the kind of event.
type Type string

const (
	TypeSpawnRequest  Type = "mob.spawn_request"
	TypeEntitySpawned Type = "entity.spawned"
	TypeEntityDeath   Type = "entity.death"
	TypeMobDespawn    Type = "mob.despawn"
	TypeRespawnAll    Type = "mob.respawn_all"
)

// Handler processes one event payload.
type Handler func(payload any)

// Bus is a synchronous publish/subscribe event bus. Handlers for a type
// run in subscription order; Publish returns after all handlers ran.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[Type][]Handler)}
}

// Subscribe registers a handler for an event type.
func (b *Bus) Subscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[t] = append(b.handlers[t], h)
}

// Publish delivers payload to all handlers of t, in subscription order.
// Publishing a type with no subscribers is logged at debug level and
// otherwise a no-op.
func (b *Bus) Publish(t Type, payload any) {
	b.mu.RLock()
	handlers := b.handlers[t]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		slog.Debug("event published with no subscribers", "type", string(t))
		return
	}
	for _, h := range handlers {
		h(payload)
	}
}

// SubscriberCount returns the number of handlers registered for t.
func (b *Bus) SubscriberCount(t Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[t])
}
