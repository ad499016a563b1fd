package spawn

import (
	"sync"

	"github.com/google/uuid"

	"github.com/hyperscape/hyperscape/internal/model"
)

// Registry is the spawner's owned table of tracked mobs. All three
// indexes (synthetic id, correlation id, entity id) are maintained
// together behind one lock so the id↔entity mapping can never drift.
type Registry struct {
	mu            sync.RWMutex
	mobs          map[string]*model.Mob
	byCorrelation map[uuid.UUID]string
	byEntity      map[uint32]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		mobs:          make(map[string]*model.Mob),
		byCorrelation: make(map[uuid.UUID]string),
		byEntity:      make(map[uint32]string),
	}
}

// Insert registers a pending mob. Returns false if the synthetic id is
// already tracked (duplicate spawn guard).
func (r *Registry) Insert(mob *model.Mob) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.mobs[mob.ID()]; exists {
		return false
	}
	r.mobs[mob.ID()] = mob
	r.byCorrelation[mob.CorrelationID()] = mob.ID()
	return true
}

// Confirm resolves a pending mob by its correlation id, recording the
// entity id assigned by the entity manager. Returns the mob, or nil if
// no pending entry matches (e.g. a player spawn confirmation).
func (r *Registry) Confirm(correlationID uuid.UUID, entityID uint32) *model.Mob {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byCorrelation[correlationID]
	if !ok {
		return nil
	}
	mob := r.mobs[id]
	mob.Confirm(entityID)
	delete(r.byCorrelation, correlationID)
	r.byEntity[entityID] = id
	return mob
}

// Get returns a tracked mob by synthetic id.
func (r *Registry) Get(id string) (*model.Mob, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	mob, ok := r.mobs[id]
	return mob, ok
}

// RemoveByID removes a tracked mob by synthetic id.
func (r *Registry) RemoveByID(id string) (*model.Mob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	mob, ok := r.mobs[id]
	if !ok {
		return nil, false
	}
	r.removeLocked(mob)
	return mob, true
}

// RemoveByEntity removes a tracked mob by its runtime entity id.
func (r *Registry) RemoveByEntity(entityID uint32) (*model.Mob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEntity[entityID]
	if !ok {
		return nil, false
	}
	mob := r.mobs[id]
	r.removeLocked(mob)
	return mob, true
}

// Clear removes every tracked mob and returns them.
func (r *Registry) Clear() []*model.Mob {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := make([]*model.Mob, 0, len(r.mobs))
	for _, mob := range r.mobs {
		removed = append(removed, mob)
	}
	r.mobs = make(map[string]*model.Mob)
	r.byCorrelation = make(map[uuid.UUID]string)
	r.byEntity = make(map[uint32]string)
	return removed
}

// Count returns the number of tracked mobs.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.mobs)
}

// CountByType returns the number of tracked mobs with exactly the given
// type key. Type keys are compared whole, never as substrings, so
// "rat" does not match "giant_rat".
func (r *Registry) CountByType(typeKey string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, mob := range r.mobs {
		if mob.TypeKey() == typeKey {
			count++
		}
	}
	return count
}

// PendingCount returns the number of mobs awaiting confirmation.
func (r *Registry) PendingCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byCorrelation)
}

// All returns a snapshot of every tracked mob.
func (r *Registry) All() []*model.Mob {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mobs := make([]*model.Mob, 0, len(r.mobs))
	for _, mob := range r.mobs {
		mobs = append(mobs, mob)
	}
	return mobs
}

func (r *Registry) removeLocked(mob *model.Mob) {
	delete(r.mobs, mob.ID())
	delete(r.byCorrelation, mob.CorrelationID())
	if mob.EntityID() != 0 {
		delete(r.byEntity, mob.EntityID())
	}
}
