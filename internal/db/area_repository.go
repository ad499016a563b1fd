package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hyperscape/hyperscape/internal/model"
)

// AreaRepository loads world areas and their mob spawn definitions.
type AreaRepository struct {
	pool *pgxpool.Pool
}

// NewAreaRepository creates an area repository.
func NewAreaRepository(pool *pgxpool.Pool) *AreaRepository {
	return &AreaRepository{pool: pool}
}

// LoadAll loads every world area with its spawn definitions.
func (r *AreaRepository) LoadAll(ctx context.Context) ([]*model.WorldArea, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT area_id, name FROM world_areas ORDER BY area_id`)
	if err != nil {
		return nil, fmt.Errorf("loading world areas: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*model.WorldArea)
	var areas []*model.WorldArea
	for rows.Next() {
		area := &model.WorldArea{}
		if err := rows.Scan(&area.ID, &area.Name); err != nil {
			return nil, fmt.Errorf("scanning world area row: %w", err)
		}
		byID[area.ID] = area
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating world area rows: %w", err)
	}

	spawnRows, err := r.pool.Query(ctx, `
		SELECT area_id, mob_type, x, y, z, max_count, spawn_radius
		FROM area_mob_spawns
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("loading area mob spawns: %w", err)
	}
	defer spawnRows.Close()

	for spawnRows.Next() {
		var (
			areaID string
			def    model.MobSpawnDef
		)
		if err := spawnRows.Scan(&areaID, &def.MobType,
			&def.Position.X, &def.Position.Y, &def.Position.Z,
			&def.MaxCount, &def.SpawnRadius); err != nil {
			return nil, fmt.Errorf("scanning area mob spawn row: %w", err)
		}
		area, ok := byID[areaID]
		if !ok {
			return nil, fmt.Errorf("mob spawn references unknown area %q", areaID)
		}
		area.MobSpawns = append(area.MobSpawns, def)
	}
	if err := spawnRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating area mob spawn rows: %w", err)
	}

	return areas, nil
}

// CreateArea inserts a world area with its spawn definitions.
func (r *AreaRepository) CreateArea(ctx context.Context, area *model.WorldArea) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning area insert: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO world_areas (area_id, name) VALUES ($1, $2)`,
		area.ID, area.Name); err != nil {
		return fmt.Errorf("inserting world area %q: %w", area.ID, err)
	}

	for _, def := range area.MobSpawns {
		if _, err := tx.Exec(ctx, `
			INSERT INTO area_mob_spawns (area_id, mob_type, x, y, z, max_count, spawn_radius)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			area.ID, def.MobType,
			def.Position.X, def.Position.Y, def.Position.Z,
			def.MaxCount, def.SpawnRadius); err != nil {
			return fmt.Errorf("inserting mob spawn for area %q: %w", area.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing area insert: %w", err)
	}
	return nil
}
