package data

import (
	"log/slog"

	"github.com/hyperscape/hyperscape/internal/model"
)

// areaDef is one world-area definition for Go-literal content tables.
type areaDef struct {
	id        string
	name      string
	mobSpawns []areaSpawnDef
}

// areaSpawnDef is one spawn definition inside an area.
type areaSpawnDef struct {
	mobType     string
	x, y, z     float64
	maxCount    int32
	spawnRadius float64
}

// areaDefs is the static world-area content table.
var areaDefs = []areaDef{
	{id: "mistwood", name: "Mistwood Valley", mobSpawns: []areaSpawnDef{
		{mobType: "goblin", x: 120, y: 2, z: -340, maxCount: 4, spawnRadius: 15},
		{mobType: "rat", x: 95, y: 2, z: -310, maxCount: 3, spawnRadius: 10},
		{mobType: "bandit", x: 180, y: 4, z: -420, maxCount: 2, spawnRadius: 20},
	}},
	{id: "goblin_wastes", name: "Goblin Wastes", mobSpawns: []areaSpawnDef{
		{mobType: "goblin", x: -240, y: 6, z: 80, maxCount: 6, spawnRadius: 25},
		{mobType: "hobgoblin", x: -310, y: 8, z: 140, maxCount: 3, spawnRadius: 20},
		{mobType: "barbarian", x: -280, y: 7, z: 40, maxCount: 2, spawnRadius: 18},
	}},
	{id: "darkwood", name: "Darkwood", mobSpawns: []areaSpawnDef{
		{mobType: "dark_warrior", x: 420, y: 12, z: 510, maxCount: 3, spawnRadius: 22},
		{mobType: "guard", x: 460, y: 12, z: 560, maxCount: 2, spawnRadius: 15},
	}},
	{id: "blasted_lands", name: "Blasted Lands", mobSpawns: []areaSpawnDef{
		{mobType: "black_knight", x: 700, y: 20, z: -150, maxCount: 2, spawnRadius: 30},
		{mobType: "ice_warrior", x: 780, y: 24, z: -220, maxCount: 2, spawnRadius: 25},
		{mobType: "dark_ranger", x: 740, y: 22, z: -90, maxCount: 2, spawnRadius: 28},
	}},
}

// AreaTable is the global registry of all world areas.
// map[areaID]*model.WorldArea
var AreaTable map[string]*model.WorldArea

// LoadWorldAreas builds AreaTable from Go literals (areaDefs).
func LoadWorldAreas() error {
	AreaTable = make(map[string]*model.WorldArea, len(areaDefs))

	for i := range areaDefs {
		d := &areaDefs[i]
		area := &model.WorldArea{
			ID:        d.id,
			Name:      d.name,
			MobSpawns: make([]model.MobSpawnDef, 0, len(d.mobSpawns)),
		}
		for _, ms := range d.mobSpawns {
			area.MobSpawns = append(area.MobSpawns, model.MobSpawnDef{
				MobType:     ms.mobType,
				Position:    model.NewPosition(ms.x, ms.y, ms.z),
				MaxCount:    ms.maxCount,
				SpawnRadius: ms.spawnRadius,
			})
		}
		AreaTable[d.id] = area
	}

	slog.Info("loaded world areas", "count", len(AreaTable))
	return nil
}

// GetWorldArea returns a world area by id. Returns nil if not found.
func GetWorldArea(id string) *model.WorldArea {
	if AreaTable == nil {
		return nil
	}
	return AreaTable[id]
}

// AllWorldAreas returns all loaded world areas (unordered).
func AllWorldAreas() []*model.WorldArea {
	areas := make([]*model.WorldArea, 0, len(AreaTable))
	for _, a := range AreaTable {
		areas = append(areas, a)
	}
	return areas
}
