package model

import (
	"time"

	"github.com/google/uuid"
)

// MobState tracks a spawned mob's lifecycle inside the spawner.
// A record is created in MobStatePending when the spawn request is
// emitted (claim-before-emit) and moves to MobStateConfirmed when the
// entity manager answers with the assigned entity ID. Removal on
// death/despawn deletes the record; there is no terminal state.
type MobState int

const (
	MobStatePending MobState = iota
	MobStateConfirmed
)

// Mob is one tracked mob instance owned by the spawner registry.
type Mob struct {
	id            string    // synthetic id: {prefix}_{typeKey}_{counter}
	correlationID uuid.UUID // carried through spawn request/confirmation
	typeKey       string
	level         int32
	position      Position
	respawnDelay  time.Duration
	entityID      uint32 // 0 until confirmed
	state         MobState
}

// NewMob creates a pending mob record for a just-emitted spawn request.
func NewMob(id string, correlationID uuid.UUID, typeKey string, level int32, position Position, respawnDelay time.Duration) *Mob {
	return &Mob{
		id:            id,
		correlationID: correlationID,
		typeKey:       typeKey,
		level:         level,
		position:      position,
		respawnDelay:  respawnDelay,
		state:         MobStatePending,
	}
}

// ID returns the spawner's synthetic mob id.
func (m *Mob) ID() string {
	return m.id
}

// CorrelationID returns the spawn request correlation id.
func (m *Mob) CorrelationID() uuid.UUID {
	return m.correlationID
}

// TypeKey returns the mob type key.
func (m *Mob) TypeKey() string {
	return m.typeKey
}

// Level returns the mob's combat level.
func (m *Mob) Level() int32 {
	return m.level
}

// Position returns the spawn position.
func (m *Mob) Position() Position {
	return m.position
}

// RespawnDelay returns the delay before this mob respawns after death.
func (m *Mob) RespawnDelay() time.Duration {
	return m.respawnDelay
}

// EntityID returns the runtime entity id (0 while pending).
func (m *Mob) EntityID() uint32 {
	return m.entityID
}

// State returns the lifecycle state.
func (m *Mob) State() MobState {
	return m.state
}

// Confirm records the entity id assigned by the entity manager.
func (m *Mob) Confirm(entityID uint32) {
	m.entityID = entityID
	m.state = MobStateConfirmed
}
