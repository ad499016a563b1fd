package data

import (
	"log/slog"
	"time"

	"github.com/hyperscape/hyperscape/internal/model"
)

// MobTable is the global registry of all mob type definitions.
// map[typeKey]*mobDef
var MobTable map[string]*mobDef

// LoadMobDefs builds MobTable from Go literals (mobDefs).
func LoadMobDefs() error {
	MobTable = make(map[string]*mobDef, len(mobDefs))

	for i := range mobDefs {
		MobTable[mobDefs[i].typeKey] = &mobDefs[i]
	}

	slog.Info("loaded mob definitions", "count", len(MobTable))
	return nil
}

// GetMobDef returns a mob definition by type key.
// Returns nil if not found.
func GetMobDef(typeKey string) *mobDef {
	if MobTable == nil {
		return nil
	}
	return MobTable[typeKey]
}

// MobTypeKeys returns all loaded type keys (unordered).
func MobTypeKeys() []string {
	keys := make([]string, 0, len(MobTable))
	for k := range MobTable {
		keys = append(keys, k)
	}
	return keys
}

// Template converts a mob definition into a model.MobTemplate.
func (d *mobDef) Template() *model.MobTemplate {
	stats := model.NewStats()
	stats.SetSkill(model.SkillAttack, d.attack, 0)
	stats.SetSkill(model.SkillStrength, d.strength, 0)
	stats.SetSkill(model.SkillDefense, d.defense, 0)
	stats.SetSkill(model.SkillRanged, d.ranged, 0)
	stats.SetSkill(model.SkillMagic, d.magic, 0)
	stats.SetEquipment(model.EquipmentBonuses{
		AttackStab:    d.attackStab,
		AttackSlash:   d.attackSlash,
		AttackCrush:   d.attackCrush,
		AttackRanged:  d.attackRanged,
		AttackMagic:   d.attackMagic,
		DefenseStab:   d.defenseStab,
		DefenseSlash:  d.defenseSlash,
		DefenseCrush:  d.defenseCrush,
		DefenseRanged: d.defenseRanged,
		DefenseMagic:  d.defenseMagic,
	})

	return model.NewMobTemplate(
		d.typeKey,
		d.name,
		d.level,
		d.maxHP,
		stats,
		time.Duration(d.respawnSeconds)*time.Second,
		d.baseXP,
	)
}
