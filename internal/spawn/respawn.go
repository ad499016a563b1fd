package spawn

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hyperscape/hyperscape/internal/model"
)

// RespawnTask is one scheduled mob respawn.
type RespawnTask struct {
	TypeKey   string
	Position  model.Position
	RespawnAt time.Time
}

// RespawnTaskManager re-spawns dead mobs after their template delay.
// A one-second ticker sweeps the task table for due entries.
type RespawnTaskManager struct {
	spawner      *Manager
	stopCh       chan struct{}
	defaultDelay time.Duration

	mu    sync.RWMutex
	tasks map[string]*RespawnTask // dead mob's synthetic id → task
}

// NewRespawnTaskManager creates a respawn task manager bound to a
// spawn manager.
func NewRespawnTaskManager(spawner *Manager) *RespawnTaskManager {
	return &RespawnTaskManager{
		spawner:      spawner,
		stopCh:       make(chan struct{}),
		defaultDelay: model.DefaultRespawnDelay,
		tasks:        make(map[string]*RespawnTask),
	}
}

// SetDefaultDelay overrides the fallback delay applied when a mob's
// template does not specify one.
func (m *RespawnTaskManager) SetDefaultDelay(d time.Duration) {
	if d > 0 {
		m.defaultDelay = d
	}
}

// Start runs the sweep loop until the context is canceled or Stop is
// called.
func (m *RespawnTaskManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	slog.Info("respawn task manager started", "interval", "1s")

	for {
		select {
		case <-ctx.Done():
			slog.Info("respawn task manager stopping")
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("respawn task manager stopped")
			return nil

		case now := <-ticker.C:
			m.processTasks(ctx, now)
		}
	}
}

// Stop stops the sweep loop.
func (m *RespawnTaskManager) Stop() {
	close(m.stopCh)
}

// Schedule queues a respawn at the dead mob's original position after
// delay. The dead mob's id keys the task, so one death schedules at
// most one respawn.
func (m *RespawnTaskManager) Schedule(mobID, typeKey string, pos model.Position, delay time.Duration) {
	if delay <= 0 {
		delay = m.defaultDelay
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tasks[mobID]; exists {
		return
	}

	respawnAt := time.Now().Add(delay)
	m.tasks[mobID] = &RespawnTask{
		TypeKey:   typeKey,
		Position:  pos,
		RespawnAt: respawnAt,
	}

	slog.Debug("respawn scheduled",
		"mobID", mobID,
		"mobType", typeKey,
		"delay", delay,
		"respawnAt", respawnAt.Format(time.RFC3339))
}

// Cancel drops the scheduled respawn for a mob id.
func (m *RespawnTaskManager) Cancel(mobID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, mobID)
}

// CancelAll drops every scheduled respawn (used by the bulk respawn
// routine, which recreates the working set from scratch).
func (m *RespawnTaskManager) CancelAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = make(map[string]*RespawnTask)
}

// TaskCount returns the number of scheduled respawns.
func (m *RespawnTaskManager) TaskCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tasks)
}

// processTasks collects due tasks and executes them outside the lock.
func (m *RespawnTaskManager) processTasks(ctx context.Context, now time.Time) {
	m.mu.Lock()
	var due []*RespawnTask
	for mobID, task := range m.tasks {
		if !now.Before(task.RespawnAt) {
			due = append(due, task)
			delete(m.tasks, mobID)
		}
	}
	m.mu.Unlock()

	for _, task := range due {
		template, err := m.spawner.loadTemplate(ctx, task.TypeKey)
		if err != nil {
			slog.Error("respawn failed, mob type no longer known",
				"mobType", task.TypeKey,
				"error", err)
			continue
		}
		if id, ok := m.spawner.SpawnMob(template, task.Position); ok {
			slog.Info("mob respawned", "mobID", id, "mobType", task.TypeKey)
		}
	}
}
