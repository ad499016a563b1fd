package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyperscape/hyperscape/internal/data"
	"github.com/hyperscape/hyperscape/internal/model"
)

func TestSkillsForStyle(t *testing.T) {
	tests := []struct {
		name       string
		style      model.CombatStyle
		attackType model.AttackType
		want       []model.Skill
	}{
		{"accurate melee", model.StyleAccurate, model.AttackMelee, []model.Skill{model.SkillAttack}},
		{"aggressive melee", model.StyleAggressive, model.AttackMelee, []model.Skill{model.SkillStrength}},
		{"defensive melee", model.StyleDefensive, model.AttackMelee, []model.Skill{model.SkillDefense}},
		{"controlled splits", model.StyleControlled, model.AttackMelee, []model.Skill{model.SkillAttack, model.SkillStrength, model.SkillDefense}},
		{"ranged trains ranged", model.StyleLongrange, model.AttackRanged, []model.Skill{model.SkillRanged}},
		{"magic trains magic", model.StyleAccurate, model.AttackMagic, []model.Skill{model.SkillMagic}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, skillsForStyle(tt.style, tt.attackType))
		})
	}
}

func TestRewardCombatXP_SingleSkill(t *testing.T) {
	stats := model.NewStats()
	RewardCombatXP(stats, model.StyleAggressive, model.AttackMelee, 10)

	assert.Equal(t, int64(40), stats.SkillXP(model.SkillStrength))
	assert.Equal(t, int64(0), stats.SkillXP(model.SkillAttack))
}

func TestRewardCombatXP_ControlledSplit(t *testing.T) {
	stats := model.NewStats()
	RewardCombatXP(stats, model.StyleControlled, model.AttackMelee, 30)

	// 30 damage × 4 XP = 120 split three ways.
	assert.Equal(t, int64(40), stats.SkillXP(model.SkillAttack))
	assert.Equal(t, int64(40), stats.SkillXP(model.SkillStrength))
	assert.Equal(t, int64(40), stats.SkillXP(model.SkillDefense))
}

func TestRewardCombatXP_LevelUp(t *testing.T) {
	stats := model.NewStats()

	// Enough damage to pass the level-2 threshold in one award.
	needed := data.GetXPForLevel(2)
	damage := int32(needed/XPPerDamage) + 1

	leveled := RewardCombatXP(stats, model.StyleAccurate, model.AttackMelee, damage)
	assert.Equal(t, []model.Skill{model.SkillAttack}, leveled)
	assert.GreaterOrEqual(t, stats.SkillLevel(model.SkillAttack), int32(2))
}

func TestRewardCombatXP_NoDamageNoXP(t *testing.T) {
	stats := model.NewStats()
	assert.Nil(t, RewardCombatXP(stats, model.StyleAccurate, model.AttackMelee, 0))
	assert.Equal(t, int64(0), stats.SkillXP(model.SkillAttack))
}

func TestRewardKillXP(t *testing.T) {
	stats := model.NewStats()
	template := model.NewMobTemplate("goblin", "Goblin", 2, 5, nil, 0, 600)

	RewardKillXP(stats, model.StyleAggressive, model.AttackMelee, template)
	assert.Equal(t, int64(600), stats.SkillXP(model.SkillStrength))
}
