package data

import "github.com/hyperscape/hyperscape/internal/model"

// DifficultyTiers holds the three hardcoded difficulty tiers used by the
// bulk respawn routine and the mob statistics buckets.
var DifficultyTiers = []model.DifficultyTier{
	{
		Name:     "easy",
		MinLevel: 1,
		MaxLevel: 10,
		MobTypes: []string{"goblin", "rat", "bandit", "barbarian"},
		SpawnPoints: []model.Position{
			{X: 120, Y: 2, Z: -340},
			{X: -240, Y: 6, Z: 80},
			{X: 95, Y: 2, Z: -310},
		},
		Count: 10,
	},
	{
		Name:     "medium",
		MinLevel: 11,
		MaxLevel: 20,
		MobTypes: []string{"hobgoblin", "guard", "dark_warrior"},
		SpawnPoints: []model.Position{
			{X: -310, Y: 8, Z: 140},
			{X: 420, Y: 12, Z: 510},
		},
		Count: 6,
	},
	{
		Name:     "hard",
		MinLevel: 21,
		MaxLevel: MaxSkillLevel,
		MobTypes: []string{"black_knight", "ice_warrior", "dark_ranger"},
		SpawnPoints: []model.Position{
			{X: 700, Y: 20, Z: -150},
			{X: 780, Y: 24, Z: -220},
		},
		Count: 4,
	},
}
