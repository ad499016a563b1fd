package model

// Skill identifies a trainable combat skill.
type Skill int

const (
	SkillAttack Skill = iota
	SkillStrength
	SkillDefense
	SkillRanged
	SkillMagic
)

func (s Skill) String() string {
	switch s {
	case SkillAttack:
		return "attack"
	case SkillStrength:
		return "strength"
	case SkillDefense:
		return "defense"
	case SkillRanged:
		return "ranged"
	case SkillMagic:
		return "magic"
	default:
		return "unknown"
	}
}

// SkillStat is a level/XP pair for one skill.
type SkillStat struct {
	Level int32
	XP    int64
}

// Prayer is a bitmask of active prayer/buff flags.
type Prayer uint32

const (
	PrayerPiety Prayer = 1 << iota
	PrayerRigour
	PrayerAugury
	PrayerChivalry
)

// Stats holds a combatant's skill levels, active prayers, and equipment
// bonuses. Missing skills default to level 1; absent equipment is all
// zeroes, so a zero-value-ish Stats is safe to feed to the hit calculator.
type Stats struct {
	skills    map[Skill]SkillStat
	prayers   Prayer
	equipment EquipmentBonuses
}

// NewStats creates empty stats (all skills level 1, no prayers, no gear).
func NewStats() *Stats {
	return &Stats{skills: make(map[Skill]SkillStat)}
}

// SkillLevel returns the level of the given skill, defaulting to 1.
func (s *Stats) SkillLevel(sk Skill) int32 {
	if s == nil {
		return 1
	}
	if stat, ok := s.skills[sk]; ok && stat.Level >= 1 {
		return stat.Level
	}
	return 1
}

// SkillXP returns the accumulated XP of the given skill.
func (s *Stats) SkillXP(sk Skill) int64 {
	if s == nil {
		return 0
	}
	return s.skills[sk].XP
}

// SetSkill sets level and XP for a skill. Levels below 1 are clamped to 1.
func (s *Stats) SetSkill(sk Skill, level int32, xp int64) {
	if level < 1 {
		level = 1
	}
	s.skills[sk] = SkillStat{Level: level, XP: xp}
}

// AddSkillXP adds XP to a skill without touching its level.
// Level-up decisions belong to the combat package (XP table lookup).
func (s *Stats) AddSkillXP(sk Skill, xp int64) int64 {
	stat := s.skills[sk]
	if stat.Level < 1 {
		stat.Level = 1
	}
	stat.XP += xp
	s.skills[sk] = stat
	return stat.XP
}

// SetSkillLevel updates a skill's level, keeping its XP.
func (s *Stats) SetSkillLevel(sk Skill, level int32) {
	if level < 1 {
		level = 1
	}
	stat := s.skills[sk]
	stat.Level = level
	s.skills[sk] = stat
}

// Prayers returns the active prayer flags.
func (s *Stats) Prayers() Prayer {
	if s == nil {
		return 0
	}
	return s.prayers
}

// SetPrayers replaces the active prayer flags.
func (s *Stats) SetPrayers(p Prayer) {
	s.prayers = p
}

// HasPrayer reports whether the given prayer flag is active.
func (s *Stats) HasPrayer(p Prayer) bool {
	return s != nil && s.prayers&p != 0
}

// Equipment returns the combatant's equipment bonus table.
func (s *Stats) Equipment() EquipmentBonuses {
	if s == nil {
		return EquipmentBonuses{}
	}
	return s.equipment
}

// SetEquipment replaces the equipment bonus table.
func (s *Stats) SetEquipment(e EquipmentBonuses) {
	s.equipment = e
}

// CombatLevel returns a rough combat level used for tier bucketing:
// the highest of the combatant's offensive and defensive skill levels.
func (s *Stats) CombatLevel() int32 {
	best := int32(1)
	for _, sk := range []Skill{SkillAttack, SkillStrength, SkillDefense, SkillRanged, SkillMagic} {
		if lvl := s.SkillLevel(sk); lvl > best {
			best = lvl
		}
	}
	return best
}
