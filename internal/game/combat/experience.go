package combat

import (
	"log/slog"

	"github.com/hyperscape/hyperscape/internal/data"
	"github.com/hyperscape/hyperscape/internal/model"
)

// XPPerDamage is the XP granted per point of damage dealt.
const XPPerDamage = 4

// skillsForStyle returns the skills trained by fighting with the given
// style and attack type. Controlled splits XP across the three melee
// skills; everything else trains a single skill.
func skillsForStyle(style model.CombatStyle, attackType model.AttackType) []model.Skill {
	switch attackType {
	case model.AttackRanged:
		return []model.Skill{model.SkillRanged}
	case model.AttackMagic:
		return []model.Skill{model.SkillMagic}
	}

	switch style {
	case model.StyleAccurate:
		return []model.Skill{model.SkillAttack}
	case model.StyleAggressive:
		return []model.Skill{model.SkillStrength}
	case model.StyleDefensive:
		return []model.Skill{model.SkillDefense}
	default: // controlled
		return []model.Skill{model.SkillAttack, model.SkillStrength, model.SkillDefense}
	}
}

// RewardCombatXP grants XP for damage dealt and applies any level-ups
// from the experience table. Returns the skills that leveled.
func RewardCombatXP(stats *model.Stats, style model.CombatStyle, attackType model.AttackType, damage int32) []model.Skill {
	if stats == nil || damage <= 0 {
		return nil
	}

	skills := skillsForStyle(style, attackType)
	xp := int64(damage) * XPPerDamage
	share := xp / int64(len(skills))

	var leveled []model.Skill
	for _, sk := range skills {
		total := stats.AddSkillXP(sk, share)
		oldLevel := stats.SkillLevel(sk)
		newLevel := data.GetLevelForXP(total, oldLevel)
		if newLevel > oldLevel {
			stats.SetSkillLevel(sk, newLevel)
			leveled = append(leveled, sk)
			slog.Info("skill level up",
				"skill", sk.String(),
				"oldLevel", oldLevel,
				"newLevel", newLevel,
				"totalXP", total)
		}
	}
	return leveled
}

// RewardKillXP grants the flat kill bonus for a mob template, trained
// into the same skills as the killing style.
func RewardKillXP(stats *model.Stats, style model.CombatStyle, attackType model.AttackType, template *model.MobTemplate) {
	if stats == nil || template == nil || template.BaseXP() <= 0 {
		return
	}

	skills := skillsForStyle(style, attackType)
	share := template.BaseXP() / int64(len(skills))
	for _, sk := range skills {
		total := stats.AddSkillXP(sk, share)
		oldLevel := stats.SkillLevel(sk)
		if newLevel := data.GetLevelForXP(total, oldLevel); newLevel > oldLevel {
			stats.SetSkillLevel(sk, newLevel)
			slog.Info("skill level up",
				"skill", sk.String(),
				"oldLevel", oldLevel,
				"newLevel", newLevel,
				"totalXP", total)
		}
	}
}
