package model

import "time"

// DefaultRespawnDelay applies when mob data does not specify one.
const DefaultRespawnDelay = 5 * time.Minute

// MobTemplate represents one mob type from the static content tables.
type MobTemplate struct {
	typeKey      string
	name         string
	level        int32
	maxHP        int32
	stats        *Stats
	respawnDelay time.Duration
	baseXP       int64
}

// NewMobTemplate creates a mob template. A zero respawnDelay falls back to
// DefaultRespawnDelay. stats may be nil (all skills level 1).
func NewMobTemplate(
	typeKey, name string,
	level, maxHP int32,
	stats *Stats,
	respawnDelay time.Duration,
	baseXP int64,
) *MobTemplate {
	if respawnDelay <= 0 {
		respawnDelay = DefaultRespawnDelay
	}
	return &MobTemplate{
		typeKey:      typeKey,
		name:         name,
		level:        level,
		maxHP:        maxHP,
		stats:        stats,
		respawnDelay: respawnDelay,
		baseXP:       baseXP,
	}
}

// TypeKey returns the stable mob type key (e.g. "goblin").
func (t *MobTemplate) TypeKey() string {
	return t.typeKey
}

// Name returns the display name.
func (t *MobTemplate) Name() string {
	return t.name
}

// Level returns the mob's combat level.
func (t *MobTemplate) Level() int32 {
	return t.level
}

// MaxHP returns maximum hit points.
func (t *MobTemplate) MaxHP() int32 {
	return t.maxHP
}

// Stats returns the mob's combat stats (may be nil).
func (t *MobTemplate) Stats() *Stats {
	return t.stats
}

// RespawnDelay returns the delay before a killed instance respawns.
func (t *MobTemplate) RespawnDelay() time.Duration {
	return t.respawnDelay
}

// BaseXP returns XP awarded for killing this mob.
func (t *MobTemplate) BaseXP() int64 {
	return t.baseXP
}
