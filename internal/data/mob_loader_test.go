package data

import (
	"testing"
	"time"

	"github.com/hyperscape/hyperscape/internal/model"
)

func TestLoadMobDefs(t *testing.T) {
	if err := LoadMobDefs(); err != nil {
		t.Fatalf("LoadMobDefs() error = %v", err)
	}

	if len(MobTable) != len(mobDefs) {
		t.Errorf("MobTable size = %d, want %d", len(MobTable), len(mobDefs))
	}

	goblin := GetMobDef("goblin")
	if goblin == nil {
		t.Fatal(`GetMobDef("goblin") = nil`)
	}
	if goblin.Name() != "Goblin" {
		t.Errorf("Name() = %q, want Goblin", goblin.Name())
	}
	if goblin.Level() != 2 {
		t.Errorf("Level() = %d, want 2", goblin.Level())
	}

	if GetMobDef("no_such_mob") != nil {
		t.Error("GetMobDef() for unknown key should return nil")
	}

	if len(MobTypeKeys()) != len(mobDefs) {
		t.Errorf("MobTypeKeys() size = %d, want %d", len(MobTypeKeys()), len(mobDefs))
	}
}

func TestMobDefTemplate(t *testing.T) {
	if err := LoadMobDefs(); err != nil {
		t.Fatalf("LoadMobDefs() error = %v", err)
	}

	template := GetMobDef("bandit").Template()
	if template.TypeKey() != "bandit" {
		t.Errorf("TypeKey() = %q, want bandit", template.TypeKey())
	}
	if template.RespawnDelay() != 90*time.Second {
		t.Errorf("RespawnDelay() = %v, want 90s", template.RespawnDelay())
	}

	stats := template.Stats()
	if got := stats.SkillLevel(model.SkillAttack); got != 5 {
		t.Errorf("attack level = %d, want 5", got)
	}
	if got := stats.Equipment().AttackSlash; got != 6 {
		t.Errorf("slash attack bonus = %d, want 6", got)
	}
}

func TestMobDefTemplate_DefaultRespawn(t *testing.T) {
	if err := LoadMobDefs(); err != nil {
		t.Fatalf("LoadMobDefs() error = %v", err)
	}

	// dark_ranger has no respawn configured in the table.
	template := GetMobDef("dark_ranger").Template()
	if template.RespawnDelay() != model.DefaultRespawnDelay {
		t.Errorf("RespawnDelay() = %v, want default %v",
			template.RespawnDelay(), model.DefaultRespawnDelay)
	}
}

func TestMobDefsCoverAllTierTypes(t *testing.T) {
	if err := LoadMobDefs(); err != nil {
		t.Fatalf("LoadMobDefs() error = %v", err)
	}

	for _, tier := range DifficultyTiers {
		for _, typeKey := range tier.MobTypes {
			def := GetMobDef(typeKey)
			if def == nil {
				t.Errorf("tier %q references unknown mob type %q", tier.Name, typeKey)
				continue
			}
			if def.Level() < tier.MinLevel || def.Level() > tier.MaxLevel {
				t.Errorf("mob %q level %d outside tier %q bounds [%d, %d]",
					typeKey, def.Level(), tier.Name, tier.MinLevel, tier.MaxLevel)
			}
		}
	}
}
