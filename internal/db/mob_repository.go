package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hyperscape/hyperscape/internal/model"
)

// MobRepository loads mob definitions from the mob_defs table.
type MobRepository struct {
	pool *pgxpool.Pool
}

// NewMobRepository creates a mob repository.
func NewMobRepository(pool *pgxpool.Pool) *MobRepository {
	return &MobRepository{pool: pool}
}

const mobDefColumns = `
	type_key, name, level, max_hp,
	attack, strength, defense, ranged, magic,
	attack_stab, attack_slash, attack_crush, attack_ranged, attack_magic,
	defense_stab, defense_slash, defense_crush, defense_ranged, defense_magic,
	respawn_seconds, base_xp
`

// LoadTemplate loads one mob template by type key.
func (r *MobRepository) LoadTemplate(ctx context.Context, typeKey string) (*model.MobTemplate, error) {
	query := `SELECT ` + mobDefColumns + ` FROM mob_defs WHERE type_key = $1`

	template, err := scanMobTemplate(r.pool.QueryRow(ctx, query, typeKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("mob type %q not found", typeKey)
		}
		return nil, fmt.Errorf("loading mob template %q: %w", typeKey, err)
	}
	return template, nil
}

// LoadAll loads every mob template, keyed by type key.
func (r *MobRepository) LoadAll(ctx context.Context) (map[string]*model.MobTemplate, error) {
	query := `SELECT ` + mobDefColumns + ` FROM mob_defs ORDER BY type_key`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading mob templates: %w", err)
	}
	defer rows.Close()

	templates := make(map[string]*model.MobTemplate)
	for rows.Next() {
		template, err := scanMobTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning mob template row: %w", err)
		}
		templates[template.TypeKey()] = template
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mob template rows: %w", err)
	}
	return templates, nil
}

// Upsert writes a mob definition, replacing an existing row for the
// same type key. Used by content tooling and integration tests.
func (r *MobRepository) Upsert(ctx context.Context, template *model.MobTemplate) error {
	stats := template.Stats()
	eq := stats.Equipment()

	query := `
		INSERT INTO mob_defs (` + mobDefColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (type_key) DO UPDATE SET
			name = EXCLUDED.name,
			level = EXCLUDED.level,
			max_hp = EXCLUDED.max_hp,
			attack = EXCLUDED.attack,
			strength = EXCLUDED.strength,
			defense = EXCLUDED.defense,
			ranged = EXCLUDED.ranged,
			magic = EXCLUDED.magic,
			attack_stab = EXCLUDED.attack_stab,
			attack_slash = EXCLUDED.attack_slash,
			attack_crush = EXCLUDED.attack_crush,
			attack_ranged = EXCLUDED.attack_ranged,
			attack_magic = EXCLUDED.attack_magic,
			defense_stab = EXCLUDED.defense_stab,
			defense_slash = EXCLUDED.defense_slash,
			defense_crush = EXCLUDED.defense_crush,
			defense_ranged = EXCLUDED.defense_ranged,
			defense_magic = EXCLUDED.defense_magic,
			respawn_seconds = EXCLUDED.respawn_seconds,
			base_xp = EXCLUDED.base_xp
	`

	_, err := r.pool.Exec(ctx, query,
		template.TypeKey(), template.Name(), template.Level(), template.MaxHP(),
		stats.SkillLevel(model.SkillAttack),
		stats.SkillLevel(model.SkillStrength),
		stats.SkillLevel(model.SkillDefense),
		stats.SkillLevel(model.SkillRanged),
		stats.SkillLevel(model.SkillMagic),
		eq.AttackStab, eq.AttackSlash, eq.AttackCrush, eq.AttackRanged, eq.AttackMagic,
		eq.DefenseStab, eq.DefenseSlash, eq.DefenseCrush, eq.DefenseRanged, eq.DefenseMagic,
		int32(template.RespawnDelay()/time.Second), template.BaseXP(),
	)
	if err != nil {
		return fmt.Errorf("upserting mob def %q: %w", template.TypeKey(), err)
	}
	return nil
}

func scanMobTemplate(row pgx.Row) (*model.MobTemplate, error) {
	var (
		typeKey, name                            string
		level, maxHP                             int32
		attack, strength, defense, ranged, magic int32
		eq                                       model.EquipmentBonuses
		respawnSeconds                           int32
		baseXP                                   int64
	)

	err := row.Scan(
		&typeKey, &name, &level, &maxHP,
		&attack, &strength, &defense, &ranged, &magic,
		&eq.AttackStab, &eq.AttackSlash, &eq.AttackCrush, &eq.AttackRanged, &eq.AttackMagic,
		&eq.DefenseStab, &eq.DefenseSlash, &eq.DefenseCrush, &eq.DefenseRanged, &eq.DefenseMagic,
		&respawnSeconds, &baseXP,
	)
	if err != nil {
		return nil, err
	}

	stats := model.NewStats()
	stats.SetSkill(model.SkillAttack, attack, 0)
	stats.SetSkill(model.SkillStrength, strength, 0)
	stats.SetSkill(model.SkillDefense, defense, 0)
	stats.SetSkill(model.SkillRanged, ranged, 0)
	stats.SetSkill(model.SkillMagic, magic, 0)
	stats.SetEquipment(eq)

	return model.NewMobTemplate(
		typeKey, name, level, maxHP, stats,
		time.Duration(respawnSeconds)*time.Second, baseXP,
	), nil
}
