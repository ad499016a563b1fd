package model

// AttackType selects which skill and which equipment bonus column
// apply in combat roll calculations.
type AttackType int

const (
	AttackMelee AttackType = iota
	AttackRanged
	AttackMagic
)

func (t AttackType) String() string {
	switch t {
	case AttackMelee:
		return "melee"
	case AttackRanged:
		return "ranged"
	case AttackMagic:
		return "magic"
	default:
		return "unknown"
	}
}

// CombatStyle is a tactical stance affecting effective-level bonuses.
type CombatStyle int

const (
	StyleAccurate CombatStyle = iota
	StyleAggressive
	StyleDefensive
	StyleControlled
	StyleLongrange
)

func (s CombatStyle) String() string {
	switch s {
	case StyleAccurate:
		return "accurate"
	case StyleAggressive:
		return "aggressive"
	case StyleDefensive:
		return "defensive"
	case StyleControlled:
		return "controlled"
	case StyleLongrange:
		return "longrange"
	default:
		return "unknown"
	}
}

// PlayerStyle is the player-facing style choice shown in the combat UI.
type PlayerStyle int

const (
	PlayerStyleAttack PlayerStyle = iota
	PlayerStyleStrength
	PlayerStyleDefense
	PlayerStyleRanged
)

// playerStyleMap maps the player-facing choice to the combat style used
// by the roll formulas.
var playerStyleMap = map[PlayerStyle]CombatStyle{
	PlayerStyleAttack:   StyleAccurate,
	PlayerStyleStrength: StyleAggressive,
	PlayerStyleDefense:  StyleDefensive,
	PlayerStyleRanged:   StyleLongrange,
}

// StyleForPlayerStyle resolves a player-facing style choice to a combat
// style. Unknown choices fall back to StyleControlled.
func StyleForPlayerStyle(ps PlayerStyle) CombatStyle {
	if style, ok := playerStyleMap[ps]; ok {
		return style
	}
	return StyleControlled
}
