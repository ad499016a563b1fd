package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperscape/hyperscape/internal/model"
)

func statsWithLevel(sk model.Skill, level int32) *model.Stats {
	s := model.NewStats()
	s.SetSkill(sk, level, 0)
	return s
}

func TestCalculateAttackRoll_WorkedExample(t *testing.T) {
	// Attack level 10, accurate: effective = 10 + 3 + 8 = 21.
	// Equipment bonus 20: roll = 21 × (20 + 64) = 1764.
	attacker := statsWithLevel(model.SkillAttack, 10)
	attacker.SetEquipment(model.EquipmentBonuses{AttackSlash: 20})

	roll := CalculateAttackRoll(attacker, model.StyleAccurate, model.AttackMelee)
	assert.Equal(t, int64(1764), roll)
}

func TestCalculateAttackRoll_StyleBonuses(t *testing.T) {
	attacker := statsWithLevel(model.SkillAttack, 10)

	tests := []struct {
		name  string
		style model.CombatStyle
		want  int64 // effective × 64 with zero equipment
	}{
		{"accurate +3", model.StyleAccurate, 21 * 64},
		{"controlled +1", model.StyleControlled, 19 * 64},
		{"aggressive +0", model.StyleAggressive, 18 * 64},
		{"defensive +0", model.StyleDefensive, 18 * 64},
		{"longrange +0", model.StyleLongrange, 18 * 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roll := CalculateAttackRoll(attacker, tt.style, model.AttackMelee)
			assert.Equal(t, tt.want, roll)
		})
	}
}

func TestCalculateAttackRoll_SkillByAttackType(t *testing.T) {
	attacker := model.NewStats()
	attacker.SetSkill(model.SkillAttack, 10, 0)
	attacker.SetSkill(model.SkillRanged, 40, 0)
	attacker.SetSkill(model.SkillMagic, 70, 0)

	melee := CalculateAttackRoll(attacker, model.StyleAggressive, model.AttackMelee)
	ranged := CalculateAttackRoll(attacker, model.StyleAggressive, model.AttackRanged)
	magic := CalculateAttackRoll(attacker, model.StyleAggressive, model.AttackMagic)

	assert.Equal(t, int64((10+8)*64), melee)
	assert.Equal(t, int64((40+8)*64), ranged)
	assert.Equal(t, int64((70+8)*64), magic)
}

func TestCalculateAttackRoll_MeleeUsesMaxSubBonus(t *testing.T) {
	attacker := statsWithLevel(model.SkillAttack, 10)
	attacker.SetEquipment(model.EquipmentBonuses{
		AttackStab:  5,
		AttackSlash: 30,
		AttackCrush: 10,
	})

	roll := CalculateAttackRoll(attacker, model.StyleAggressive, model.AttackMelee)
	assert.Equal(t, int64(18*(30+64)), roll)
}

func TestCalculateAttackRoll_MissingStatsDefault(t *testing.T) {
	// Empty stats: level 1, bonus 0 → (1+8) × 64.
	roll := CalculateAttackRoll(model.NewStats(), model.StyleAggressive, model.AttackMelee)
	assert.Equal(t, int64(9*64), roll)
}

func TestCalculateDefenseRoll_WorkedExample(t *testing.T) {
	// Defense level 10, defensive (+3), no prayer: floor(13×1.0)+8 = 21.
	// Equipment bonus 20 → 21 × 84 = 1764.
	defender := statsWithLevel(model.SkillDefense, 10)
	defender.SetEquipment(model.EquipmentBonuses{
		DefenseStab:  20,
		DefenseSlash: 20,
		DefenseCrush: 20,
	})

	roll := CalculateDefenseRoll(defender, model.AttackMelee, model.StyleDefensive)
	assert.Equal(t, int64(1764), roll)
}

// Melee defense uses the floored average of the three sub-bonuses while
// the attack side uses the max. Deliberate asymmetry, keep it.
func TestCalculateDefenseRoll_MeleeUsesFlooredAverage(t *testing.T) {
	defender := statsWithLevel(model.SkillDefense, 10)
	defender.SetEquipment(model.EquipmentBonuses{
		DefenseStab:  10,
		DefenseSlash: 20,
		DefenseCrush: 5,
	})

	// avg = floor(35/3) = 11, effective = floor(13×1.0)+8 = 21
	roll := CalculateDefenseRoll(defender, model.AttackMelee, model.StyleDefensive)
	assert.Equal(t, int64(21*(11+64)), roll)
}

func TestCalculateDefenseRoll_PrayerMultipliers(t *testing.T) {
	tests := []struct {
		name   string
		prayer model.Prayer
		want   int64
	}{
		// defense 20, defensive +3 → base 23
		// floor(23×1.25) = 28, floor(23×1.20) = 27
		{"none", 0, int64((23 + 8) * 64)},
		{"piety 1.25", model.PrayerPiety, int64((28 + 8) * 64)},
		{"rigour 1.25", model.PrayerRigour, int64((28 + 8) * 64)},
		{"augury 1.25", model.PrayerAugury, int64((28 + 8) * 64)},
		{"chivalry 1.20", model.PrayerChivalry, int64((27 + 8) * 64)},
		// piety wins over chivalry
		{"piety beats chivalry", model.PrayerPiety | model.PrayerChivalry, int64((28 + 8) * 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defender := statsWithLevel(model.SkillDefense, 20)
			defender.SetPrayers(tt.prayer)
			roll := CalculateDefenseRoll(defender, model.AttackMelee, model.StyleDefensive)
			assert.Equal(t, tt.want, roll)
		})
	}
}

func TestCalculateDefenseRoll_StyleBonuses(t *testing.T) {
	defender := statsWithLevel(model.SkillDefense, 10)

	tests := []struct {
		style model.CombatStyle
		bonus int32
	}{
		{model.StyleDefensive, 3},
		{model.StyleLongrange, 3},
		{model.StyleControlled, 1},
		{model.StyleAccurate, 0},
		{model.StyleAggressive, 0},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			roll := CalculateDefenseRoll(defender, model.AttackMelee, tt.style)
			assert.Equal(t, int64(10+int64(tt.bonus)+8)*64, roll)
		})
	}
}

func TestCalculateHitChance_Boundaries(t *testing.T) {
	assert.Equal(t, 1.0, CalculateHitChance(1000, 100), "10x attack → guaranteed hit")
	assert.Equal(t, 1.0, CalculateHitChance(1500, 100))
	assert.Equal(t, 0.0, CalculateHitChance(100, 1000), "10x defense → guaranteed miss")
	assert.Equal(t, 0.0, CalculateHitChance(100, 1500))
}

func TestCalculateHitChance_EqualRolls(t *testing.T) {
	// Equal rolls of 1764: chance = 1764 / (2 × 1765) ≈ 0.4998
	got := CalculateHitChance(1764, 1764)
	require.InDelta(t, 1764.0/3530.0, got, 1e-12)
	assert.Less(t, got, 0.5)
}

func TestCalculateHitChance_Monotonic(t *testing.T) {
	// Non-decreasing in attackRoll for fixed defenseRoll.
	const def = 500
	prev := 0.0
	for atk := int64(60); atk <= 5000; atk += 20 {
		chance := CalculateHitChance(atk, def)
		assert.GreaterOrEqual(t, chance, prev, "attackRoll=%d", atk)
		prev = chance
	}

	// Non-increasing in defenseRoll for fixed attackRoll.
	const atk = 500
	prev = 1.0
	for def := int64(60); def <= 5000; def += 20 {
		chance := CalculateHitChance(atk, def)
		assert.LessOrEqual(t, chance, prev, "defenseRoll=%d", def)
		prev = chance
	}
}

func TestCalculateHitChance_OpenInterval(t *testing.T) {
	// Outside the 10× cutoffs the chance never reaches 0 or 1.
	chance := CalculateHitChance(9999, 1000)
	assert.Greater(t, chance, 0.0)
	assert.Less(t, chance, 1.0)

	chance = CalculateHitChance(1000, 9999)
	assert.Greater(t, chance, 0.0)
	assert.Less(t, chance, 1.0)
}

func TestResolveHit_Deterministic(t *testing.T) {
	assert.True(t, ResolveHit(1000, 100), "guaranteed hit must always resolve true")
	assert.False(t, ResolveHit(100, 1000), "guaranteed miss must always resolve false")
}

func TestResolveAttack(t *testing.T) {
	// Overwhelming attacker vs level-1 defender: attack roll crosses the
	// 10× boundary, so the outcome is deterministic.
	attacker := statsWithLevel(model.SkillAttack, 99)
	attacker.SetEquipment(model.EquipmentBonuses{AttackSlash: 100})
	defender := model.NewStats()

	assert.True(t, ResolveAttack(attacker, model.StyleAccurate, model.AttackMelee, defender, model.StyleAccurate))
}
