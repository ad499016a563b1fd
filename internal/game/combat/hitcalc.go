// Package combat implements server-authoritative hit resolution:
// attack/defense rolls, hit probability, and combat XP awards.
package combat

import (
	"math/rand/v2"

	"github.com/hyperscape/hyperscape/internal/model"
)

// Flat effective-level addend applied to both attack and defense rolls.
const effectiveLevelBase = 8

// attackStyleBonus returns the effective-level bonus a combat style
// grants to attack rolls.
func attackStyleBonus(style model.CombatStyle) int32 {
	switch style {
	case model.StyleAccurate:
		return 3
	case model.StyleControlled:
		return 1
	default:
		return 0
	}
}

// defenseStyleBonus returns the effective-level bonus a combat style
// grants to defense rolls.
func defenseStyleBonus(style model.CombatStyle) int32 {
	switch style {
	case model.StyleDefensive, model.StyleLongrange:
		return 3
	case model.StyleControlled:
		return 1
	default:
		return 0
	}
}

// defensePrayerMultiplier returns the defense level multiplier for the
// defender's active prayers. First match wins, in priority order:
// piety, rigour, augury (1.25), then chivalry (1.20).
func defensePrayerMultiplier(stats *model.Stats) float64 {
	switch {
	case stats.HasPrayer(model.PrayerPiety),
		stats.HasPrayer(model.PrayerRigour),
		stats.HasPrayer(model.PrayerAugury):
		return 1.25
	case stats.HasPrayer(model.PrayerChivalry):
		return 1.20
	default:
		return 1.0
	}
}

// attackSkillFor returns the skill whose level drives the attack roll.
func attackSkillFor(attackType model.AttackType) model.Skill {
	switch attackType {
	case model.AttackRanged:
		return model.SkillRanged
	case model.AttackMagic:
		return model.SkillMagic
	default:
		return model.SkillAttack
	}
}

// CalculateAttackRoll computes the attacker's roll:
//
//	effectiveLevel = skillLevel + styleBonus + 8
//	roll           = effectiveLevel × (equipmentBonus + 64)
//
// Melee uses the highest of the three melee attack sub-bonuses; ranged
// and magic use their own column. Missing stats default to level 1 /
// bonus 0, so this never fails.
func CalculateAttackRoll(attacker *model.Stats, style model.CombatStyle, attackType model.AttackType) int64 {
	level := attacker.SkillLevel(attackSkillFor(attackType))
	effective := int64(level + attackStyleBonus(style) + effectiveLevelBase)
	bonus := int64(attacker.Equipment().AttackBonus(attackType))
	return effective * (bonus + 64)
}

// CalculateDefenseRoll computes the defender's roll against an incoming
// attack type:
//
//	effectiveDefense = floor((defenseLevel + styleBonus) × prayerMultiplier) + 8
//	roll             = effectiveDefense × (equipmentBonus + 64)
//
// Melee defense uses the floored AVERAGE of the three melee sub-bonuses
// while the attack roll uses the max; the asymmetry is intentional
// balance behavior (see model.EquipmentBonuses.AvgMeleeDefense).
func CalculateDefenseRoll(defender *model.Stats, incoming model.AttackType, style model.CombatStyle) int64 {
	level := defender.SkillLevel(model.SkillDefense)
	mult := defensePrayerMultiplier(defender)
	effective := int64(float64(level+defenseStyleBonus(style))*mult) + effectiveLevelBase
	bonus := int64(defender.Equipment().DefenseBonus(incoming))
	return effective * (bonus + 64)
}

// CalculateHitChance converts an attack/defense roll pair into a hit
// probability in [0,1]:
//
//	attackRoll ≥ 10×defenseRoll → 1 (guaranteed hit)
//	defenseRoll ≥ 10×attackRoll → 0 (guaranteed miss)
//	attackRoll > defenseRoll    → 1 - (defenseRoll+2) / (2×(attackRoll+1))
//	otherwise                   → attackRoll / (2×(defenseRoll+1))
//
// Monotonic in both arguments; outside the 10× cutoffs the result never
// reaches exactly 0 or 1.
func CalculateHitChance(attackRoll, defenseRoll int64) float64 {
	if attackRoll >= 10*defenseRoll {
		return 1
	}
	if defenseRoll >= 10*attackRoll {
		return 0
	}
	if attackRoll > defenseRoll {
		return 1 - float64(defenseRoll+2)/(2*float64(attackRoll+1))
	}
	return float64(attackRoll) / (2 * float64(defenseRoll+1))
}

// ResolveHit rolls the RNG against the hit chance for the given rolls.
var ResolveHit = func(attackRoll, defenseRoll int64) bool {
	return rand.Float64() < CalculateHitChance(attackRoll, defenseRoll)
}

// ResolveAttack computes both rolls and resolves a single attack.
func ResolveAttack(attacker *model.Stats, attackerStyle model.CombatStyle, attackType model.AttackType, defender *model.Stats, defenderStyle model.CombatStyle) bool {
	atk := CalculateAttackRoll(attacker, attackerStyle, attackType)
	def := CalculateDefenseRoll(defender, attackType, defenderStyle)
	return ResolveHit(atk, def)
}
