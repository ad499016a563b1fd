package model

// DifficultyTier groups mob types and a named spawn-point pool for the
// bulk respawn routine. Count is the fixed number of mobs the tier
// contributes; mobs cycle round-robin over MobTypes and SpawnPoints.
// The level bounds double as buckets for aggregate mob statistics.
type DifficultyTier struct {
	Name        string
	MinLevel    int32
	MaxLevel    int32
	MobTypes    []string
	SpawnPoints []Position
	Count       int32
}

// TierIndexForLevel returns the index of the tier containing level.
// Levels above every bound land in the last tier.
func TierIndexForLevel(tiers []DifficultyTier, level int32) int {
	for i := range tiers {
		if level <= tiers[i].MaxLevel {
			return i
		}
	}
	return len(tiers) - 1
}
