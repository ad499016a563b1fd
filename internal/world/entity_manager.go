// Package world owns the runtime entity table: every live object in the
// simulation has an entry here, keyed by its entity ID. Mob creation is
// event-driven: the spawner publishes spawn requests, the entity manager
// answers with entity-spawned confirmations carrying the request's
// correlation ID.
package world

import (
	"log/slog"
	"sync"

	"github.com/hyperscape/hyperscape/internal/events"
	"github.com/hyperscape/hyperscape/internal/model"
)

// Entity is one live runtime object.
type Entity struct {
	id       uint32
	mobType  string // empty for players
	level    int32
	position model.Position
}

// ID returns the entity ID.
func (e *Entity) ID() uint32 {
	return e.id
}

// MobType returns the mob type key, or "" for non-mob entities.
func (e *Entity) MobType() string {
	return e.mobType
}

// Level returns the entity's combat level.
func (e *Entity) Level() int32 {
	return e.level
}

// Position returns the entity's world position.
func (e *Entity) Position() model.Position {
	return e.position
}

// EntityManager owns the id→entity table and answers spawn requests.
type EntityManager struct {
	bus   *events.Bus
	idGen *ObjectIDGenerator

	mu       sync.RWMutex
	entities map[uint32]*Entity
}

// NewEntityManager creates an entity manager and wires it to the bus:
// it consumes spawn requests and entity-death events.
func NewEntityManager(bus *events.Bus) *EntityManager {
	em := &EntityManager{
		bus:      bus,
		idGen:    NewObjectIDGenerator(),
		entities: make(map[uint32]*Entity),
	}
	bus.Subscribe(events.TypeSpawnRequest, em.handleSpawnRequest)
	bus.Subscribe(events.TypeEntityDeath, em.handleEntityDeath)
	return em
}

// handleSpawnRequest creates the runtime entity for a mob spawn request
// and publishes the confirmation with the request's correlation ID.
func (em *EntityManager) handleSpawnRequest(payload any) {
	req, ok := payload.(events.SpawnRequest)
	if !ok {
		slog.Warn("spawn request with unexpected payload type")
		return
	}

	entityID := em.idGen.NextMobID()
	entity := &Entity{
		id:       entityID,
		mobType:  req.MobType,
		level:    req.Level,
		position: req.Position,
	}

	em.mu.Lock()
	em.entities[entityID] = entity
	em.mu.Unlock()

	slog.Debug("entity created",
		"entityID", entityID,
		"mobType", req.MobType,
		"position", req.Position)

	em.bus.Publish(events.TypeEntitySpawned, events.EntitySpawned{
		CorrelationID: req.CorrelationID,
		EntityID:      entityID,
		MobType:       req.MobType,
	})
}

// handleEntityDeath removes the dead entity from the table. Removal is
// idempotent: death events for already-removed entities are ignored.
func (em *EntityManager) handleEntityDeath(payload any) {
	death, ok := payload.(events.EntityDeath)
	if !ok {
		return
	}

	em.mu.Lock()
	_, existed := em.entities[death.EntityID]
	delete(em.entities, death.EntityID)
	em.mu.Unlock()

	if existed {
		slog.Debug("entity removed", "entityID", death.EntityID)
	}
}

// Kill publishes an entity-death event for entityID. The manager's own
// death handler performs the removal, so every death flows through one
// path regardless of who initiated it.
func (em *EntityManager) Kill(entityID uint32) {
	em.bus.Publish(events.TypeEntityDeath, events.EntityDeath{EntityID: entityID})
}

// GetEntity returns the entity with the given id.
func (em *EntityManager) GetEntity(entityID uint32) (*Entity, bool) {
	em.mu.RLock()
	defer em.mu.RUnlock()
	e, ok := em.entities[entityID]
	return e, ok
}

// EntityCount returns the number of live entities.
func (em *EntityManager) EntityCount() int {
	em.mu.RLock()
	defer em.mu.RUnlock()
	return len(em.entities)
}
