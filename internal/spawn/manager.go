// Package spawn owns the lifecycle of non-player mobs: area-driven
// startup spawning, event-correlated entity creation, despawning, and
// the tiered bulk respawn routine.
package spawn

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/hyperscape/hyperscape/internal/cache"
	"github.com/hyperscape/hyperscape/internal/events"
	"github.com/hyperscape/hyperscape/internal/model"
)

// mobIDPrefix prefixes every synthetic mob id.
const mobIDPrefix = "mob"

// MobRepository loads mob templates by type key.
type MobRepository interface {
	LoadTemplate(ctx context.Context, typeKey string) (*model.MobTemplate, error)
}

// AreaRepository loads all world-area definitions.
type AreaRepository interface {
	LoadAll(ctx context.Context) ([]*model.WorldArea, error)
}

// Manager manages mob spawns and the tracked-mob registry.
//
// Spawning is a claim-before-emit exchange: the registry entry is
// inserted before the spawn request is published, so two near-
// simultaneous requests can never both believe an id is unclaimed.
// Confirmations are matched by the correlation id carried through the
// request/confirmation event pair, never by type-key substrings.
type Manager struct {
	bus       *events.Bus
	mobRepo   MobRepository
	areaRepo  AreaRepository
	registry  *Registry
	tiers     []model.DifficultyTier
	respawner *RespawnTaskManager // nil disables death-driven respawns

	templates *cache.SmartCache[*model.MobTemplate]
	counter   atomic.Uint64
}

// Option configures a Manager.
type Option func(*Manager)

// WithTemplateCache overrides the template cache size and TTL.
func WithTemplateCache(maxSize int, ttl time.Duration) Option {
	return func(m *Manager) {
		m.templates = cache.New(cache.Options[*model.MobTemplate]{
			MaxSize: maxSize,
			TTL:     ttl,
		})
	}
}

// NewManager creates a mob spawn manager and wires it to the bus: it
// consumes entity-spawned confirmations, entity deaths, despawn
// commands, and respawn-all commands.
func NewManager(
	bus *events.Bus,
	mobRepo MobRepository,
	areaRepo AreaRepository,
	tiers []model.DifficultyTier,
	opts ...Option,
) *Manager {
	m := &Manager{
		bus:      bus,
		mobRepo:  mobRepo,
		areaRepo: areaRepo,
		registry: NewRegistry(),
		tiers:    tiers,
		templates: cache.New(cache.Options[*model.MobTemplate]{
			MaxSize: 256,
			TTL:     10 * time.Minute,
		}),
	}
	for _, opt := range opts {
		opt(m)
	}

	bus.Subscribe(events.TypeEntitySpawned, m.handleEntitySpawned)
	bus.Subscribe(events.TypeEntityDeath, m.handleEntityDeath)
	bus.Subscribe(events.TypeMobDespawn, m.handleDespawn)
	bus.Subscribe(events.TypeRespawnAll, m.handleRespawnAll)

	return m
}

// SetRespawner attaches a respawn task manager. Tracked mobs that die
// are then re-spawned at their original position after their template
// delay.
func (m *Manager) SetRespawner(r *RespawnTaskManager) {
	m.respawner = r
}

// Registry exposes the tracked-mob table for queries.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// loadTemplate resolves a mob template through the memoization cache.
func (m *Manager) loadTemplate(ctx context.Context, typeKey string) (*model.MobTemplate, error) {
	return m.templates.GetOrSet("mobtmpl:"+typeKey, func() (*model.MobTemplate, error) {
		return m.mobRepo.LoadTemplate(ctx, typeKey)
	})
}

// SpawnWorldAreas spawns the configured mobs of every world area:
// MaxCount instances per spawn definition, placed within SpawnRadius of
// the anchor point. Unknown mob types are logged and skipped; other
// definitions proceed. Called once at server start.
func (m *Manager) SpawnWorldAreas(ctx context.Context) error {
	areas, err := m.areaRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading world areas: %w", err)
	}

	spawned := 0
	for _, area := range areas {
		for _, def := range area.MobSpawns {
			template, err := m.loadTemplate(ctx, def.MobType)
			if err != nil {
				slog.Warn("unknown mob type in area data, skipping spawn definition",
					"area", area.ID,
					"mobType", def.MobType,
					"error", err)
				continue
			}
			for range def.MaxCount {
				pos := randomPointInRadius(def.Position, def.SpawnRadius)
				if _, ok := m.SpawnMob(template, pos); ok {
					spawned++
				}
			}
		}
	}

	slog.Info("world areas spawned", "areas", len(areas), "mobs", spawned)
	return nil
}

// SpawnMob registers a tracked mob and emits the spawn request for it.
// The synthetic id is {prefix}_{typeKey}_{counter}. If the id is
// somehow already tracked the call is skipped (idempotent duplicate
// guard) and ok is false.
func (m *Manager) SpawnMob(template *model.MobTemplate, pos model.Position) (string, bool) {
	id := fmt.Sprintf("%s_%s_%d", mobIDPrefix, template.TypeKey(), m.counter.Add(1))
	correlationID := uuid.New()

	mob := model.NewMob(id, correlationID, template.TypeKey(), template.Level(), pos, template.RespawnDelay())

	// Claim before emit: the registry entry must exist before any
	// handler can observe the request.
	if !m.registry.Insert(mob) {
		slog.Debug("duplicate mob id, spawn skipped", "mobID", id)
		return "", false
	}

	m.bus.Publish(events.TypeSpawnRequest, events.SpawnRequest{
		CorrelationID: correlationID,
		MobType:       template.TypeKey(),
		Level:         template.Level(),
		Position:      pos,
		RespawnDelay:  template.RespawnDelay(),
	})

	return id, true
}

// handleEntitySpawned resolves a pending mob by correlation id.
func (m *Manager) handleEntitySpawned(payload any) {
	confirm, ok := payload.(events.EntitySpawned)
	if !ok {
		return
	}

	mob := m.registry.Confirm(confirm.CorrelationID, confirm.EntityID)
	if mob == nil {
		// Not ours, e.g. a player entity.
		return
	}

	slog.Debug("mob spawn confirmed",
		"mobID", mob.ID(),
		"entityID", confirm.EntityID,
		"mobType", mob.TypeKey())
}

// handleEntityDeath drops the tracked mob for a dead entity and, when a
// respawner is attached, schedules its replacement.
func (m *Manager) handleEntityDeath(payload any) {
	death, ok := payload.(events.EntityDeath)
	if !ok {
		return
	}

	mob, ok := m.registry.RemoveByEntity(death.EntityID)
	if !ok {
		return
	}

	slog.Info("mob died",
		"mobID", mob.ID(),
		"entityID", death.EntityID,
		"mobType", mob.TypeKey())

	if m.respawner != nil {
		m.respawner.Schedule(mob.ID(), mob.TypeKey(), mob.Position(), mob.RespawnDelay())
	}
}

// DespawnMob removes a tracked mob and emits the death event for its
// entity. The registry entry goes first so the death handler cannot
// schedule a respawn for an explicitly despawned mob.
func (m *Manager) DespawnMob(mobID string) bool {
	mob, ok := m.registry.RemoveByID(mobID)
	if !ok {
		return false
	}

	if mob.EntityID() != 0 {
		m.bus.Publish(events.TypeEntityDeath, events.EntityDeath{EntityID: mob.EntityID()})
	}

	slog.Info("mob despawned", "mobID", mobID, "entityID", mob.EntityID())
	return true
}

func (m *Manager) handleDespawn(payload any) {
	cmd, ok := payload.(events.MobDespawn)
	if !ok {
		return
	}
	m.DespawnMob(cmd.MobID)
}

func (m *Manager) handleRespawnAll(payload any) {
	if _, ok := payload.(events.RespawnAll); !ok {
		return
	}
	m.RespawnAll(context.Background())
}

// RespawnAll clears the full working set, emitting one death event per
// tracked entity, then re-runs the difficulty-tiered bulk spawn routine.
func (m *Manager) RespawnAll(ctx context.Context) {
	removed := m.registry.Clear()
	for _, mob := range removed {
		if mob.EntityID() != 0 {
			m.bus.Publish(events.TypeEntityDeath, events.EntityDeath{EntityID: mob.EntityID()})
		}
	}
	if m.respawner != nil {
		m.respawner.CancelAll()
	}

	slog.Info("respawning all mobs", "cleared", len(removed))
	m.spawnDifficultyTiers(ctx)
}

// spawnDifficultyTiers spawns each tier's fixed mob count, cycling
// round-robin over the tier's mob types and spawn-point pool.
func (m *Manager) spawnDifficultyTiers(ctx context.Context) {
	total := 0
	for _, tier := range m.tiers {
		if len(tier.MobTypes) == 0 || len(tier.SpawnPoints) == 0 {
			slog.Warn("difficulty tier without mobs or spawn points", "tier", tier.Name)
			continue
		}
		for i := int32(0); i < tier.Count; i++ {
			typeKey := tier.MobTypes[int(i)%len(tier.MobTypes)]
			point := tier.SpawnPoints[int(i)%len(tier.SpawnPoints)]

			template, err := m.loadTemplate(ctx, typeKey)
			if err != nil {
				slog.Warn("unknown mob type in tier, skipping",
					"tier", tier.Name,
					"mobType", typeKey,
					"error", err)
				continue
			}
			if _, ok := m.SpawnMob(template, point); ok {
				total++
			}
		}
	}
	slog.Info("difficulty tiers spawned", "mobs", total)
}

// CountByType returns how many tracked mobs have the given type key.
func (m *Manager) CountByType(typeKey string) int {
	return m.registry.CountByType(typeKey)
}

// MobCount returns the total number of tracked mobs.
func (m *Manager) MobCount() int {
	return m.registry.Count()
}

// TierStats buckets the tracked mobs into the difficulty tiers by mob
// level and returns count per tier name.
func (m *Manager) TierStats() map[string]int {
	stats := make(map[string]int, len(m.tiers))
	for _, tier := range m.tiers {
		stats[tier.Name] = 0
	}
	for _, mob := range m.registry.All() {
		idx := model.TierIndexForLevel(m.tiers, mob.Level())
		stats[m.tiers[idx].Name]++
	}
	return stats
}

// TemplateCacheStats exposes the memoization cache counters.
func (m *Manager) TemplateCacheStats() cache.Stats {
	return m.templates.Stats()
}

// randomPointInRadius samples a point within radius of center on the
// XZ plane: uniform angle, uniform radius.
func randomPointInRadius(center model.Position, radius float64) model.Position {
	if radius <= 0 {
		return center
	}
	angle := rand.Float64() * 2 * math.Pi
	r := rand.Float64() * radius
	return model.Position{
		X: center.X + r*math.Cos(angle),
		Y: center.Y,
		Z: center.Z + r*math.Sin(angle),
	}
}
