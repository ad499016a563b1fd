package model

// MobSpawnDef configures one spawn definition inside a world area:
// up to MaxCount instances of MobType, placed within SpawnRadius meters
// of the anchor Position.
type MobSpawnDef struct {
	MobType     string
	Position    Position
	MaxCount    int32
	SpawnRadius float64
}

// WorldArea is a named region of the world with its configured mob spawns.
type WorldArea struct {
	ID        string
	Name      string
	MobSpawns []MobSpawnDef
}
