package data

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hyperscape/hyperscape/internal/model"
)

// areaFile is the YAML document shape for operator-provided area files.
type areaFile struct {
	Areas []yamlArea `yaml:"areas"`
}

type yamlArea struct {
	ID        string      `yaml:"id"`
	Name      string      `yaml:"name"`
	MobSpawns []yamlSpawn `yaml:"mob_spawns"`
}

type yamlSpawn struct {
	MobType     string       `yaml:"mob_type"`
	Position    flexPosition `yaml:"position"`
	MaxCount    int32        `yaml:"max_count"`
	SpawnRadius float64      `yaml:"spawn_radius"`
}

// flexPosition accepts a position as either a [x, y, z] sequence or a
// {x:, y:, z:} mapping. Anything else is recorded as malformed; the
// loader substitutes the origin and keeps going rather than failing the
// whole area file.
type flexPosition struct {
	pos       model.Position
	malformed bool
}

func (p *flexPosition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var coords []float64
		if err := node.Decode(&coords); err != nil || len(coords) != 3 {
			p.malformed = true
			return nil
		}
		p.pos = model.NewPosition(coords[0], coords[1], coords[2])
	case yaml.MappingNode:
		var obj struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
			Z float64 `yaml:"z"`
		}
		if err := node.Decode(&obj); err != nil {
			p.malformed = true
			return nil
		}
		p.pos = model.NewPosition(obj.X, obj.Y, obj.Z)
	default:
		p.malformed = true
	}
	return nil
}

// LoadWorldAreasFromFile replaces AreaTable with areas parsed from a YAML
// file. Spawn definitions with a malformed position fall back to the
// origin with a warning; definitions without a mob type are skipped.
func LoadWorldAreasFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading area file %s: %w", path, err)
	}

	var doc areaFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing area file %s: %w", path, err)
	}

	AreaTable = make(map[string]*model.WorldArea, len(doc.Areas))

	for _, ya := range doc.Areas {
		area := &model.WorldArea{
			ID:        ya.ID,
			Name:      ya.Name,
			MobSpawns: make([]model.MobSpawnDef, 0, len(ya.MobSpawns)),
		}
		for _, ys := range ya.MobSpawns {
			if ys.MobType == "" {
				slog.Warn("area spawn without mob type skipped", "area", ya.ID)
				continue
			}
			pos := ys.Position.pos
			if ys.Position.malformed {
				slog.Warn("malformed spawn position, using origin",
					"area", ya.ID,
					"mobType", ys.MobType)
				pos = model.Origin()
			}
			area.MobSpawns = append(area.MobSpawns, model.MobSpawnDef{
				MobType:     ys.MobType,
				Position:    pos,
				MaxCount:    ys.MaxCount,
				SpawnRadius: ys.SpawnRadius,
			})
		}
		AreaTable[area.ID] = area
	}

	slog.Info("loaded world areas from file", "path", path, "count", len(AreaTable))
	return nil
}
