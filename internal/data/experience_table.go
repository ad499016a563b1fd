package data

import "math"

// MaxSkillLevel is the maximum achievable skill level.
const MaxSkillLevel = 99

// ExperienceTable holds cumulative XP required to reach each skill level.
// Index = level (0-99). Levels 0 and 1 require 0 XP.
// Built at init from the classic curve: each level L adds
// floor((L-1 + 300×2^((L-1)/7)) / 4) XP over the previous one.
var ExperienceTable [MaxSkillLevel + 1]int64

func init() {
	var points int64
	for level := int32(2); level <= MaxSkillLevel; level++ {
		l := float64(level - 1)
		points += int64(math.Floor((l + 300*math.Pow(2, l/7)) / 4))
		ExperienceTable[level] = points
	}
}

// GetXPForLevel returns cumulative XP required to reach level.
// Out-of-range levels clamp to the table bounds.
func GetXPForLevel(level int32) int64 {
	if level < 1 {
		return 0
	}
	if level > MaxSkillLevel {
		level = MaxSkillLevel
	}
	return ExperienceTable[level]
}

// GetLevelForXP returns the level reached with xp, scanning up from
// startLevel. startLevel lets callers skip the part of the table the
// combatant already passed.
func GetLevelForXP(xp int64, startLevel int32) int32 {
	if startLevel < 1 {
		startLevel = 1
	}
	level := startLevel
	for level < MaxSkillLevel && xp >= ExperienceTable[level+1] {
		level++
	}
	return level
}
