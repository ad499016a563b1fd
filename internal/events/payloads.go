package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/hyperscape/hyperscape/internal/model"
)

// SpawnRequest asks the entity manager to create a runtime entity for a
// mob. CorrelationID ties the eventual EntitySpawned confirmation back to
// the spawner's pending record; type keys are never used for matching,
// so overlapping keys ("rat", "giant_rat") cannot misattribute.
type SpawnRequest struct {
	CorrelationID uuid.UUID
	MobType       string
	Level         int32
	Position      model.Position
	RespawnDelay  time.Duration
}

// EntitySpawned confirms a SpawnRequest with the assigned entity id.
type EntitySpawned struct {
	CorrelationID uuid.UUID
	EntityID      uint32
	MobType       string
}

// EntityDeath reports that a runtime entity died or was destroyed.
type EntityDeath struct {
	EntityID uint32
}

// MobDespawn asks the spawner to remove a tracked mob by its synthetic id.
type MobDespawn struct {
	MobID string
}

// RespawnAll asks the spawner to clear and recreate the full working set.
type RespawnAll struct{}
