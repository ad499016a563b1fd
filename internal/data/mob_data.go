package data

// mobDef is one mob type definition for Go-literal content tables.
type mobDef struct {
	typeKey string
	name    string
	level   int32
	maxHP   int32

	// Combat skill levels
	attack, strength, defense, ranged, magic int32

	// Equipment-equivalent bonuses (natural armor/claws)
	attackStab, attackSlash, attackCrush, attackRanged, attackMagic      int32
	defenseStab, defenseSlash, defenseCrush, defenseRanged, defenseMagic int32

	respawnSeconds int32 // 0 → default (5 minutes)
	baseXP         int64
}

func (d *mobDef) TypeKey() string { return d.typeKey }
func (d *mobDef) Name() string    { return d.name }
func (d *mobDef) Level() int32    { return d.level }
func (d *mobDef) MaxHP() int32    { return d.maxHP }

func (d *mobDef) Attack() int32   { return d.attack }
func (d *mobDef) Strength() int32 { return d.strength }
func (d *mobDef) Defense() int32  { return d.defense }
func (d *mobDef) Ranged() int32   { return d.ranged }
func (d *mobDef) Magic() int32    { return d.magic }

func (d *mobDef) AttackStab() int32    { return d.attackStab }
func (d *mobDef) AttackSlash() int32   { return d.attackSlash }
func (d *mobDef) AttackCrush() int32   { return d.attackCrush }
func (d *mobDef) AttackRanged() int32  { return d.attackRanged }
func (d *mobDef) AttackMagic() int32   { return d.attackMagic }
func (d *mobDef) DefenseStab() int32   { return d.defenseStab }
func (d *mobDef) DefenseSlash() int32  { return d.defenseSlash }
func (d *mobDef) DefenseCrush() int32  { return d.defenseCrush }
func (d *mobDef) DefenseRanged() int32 { return d.defenseRanged }
func (d *mobDef) DefenseMagic() int32  { return d.defenseMagic }

func (d *mobDef) RespawnSeconds() int32 { return d.respawnSeconds }
func (d *mobDef) BaseXP() int64         { return d.baseXP }

// mobDefs is the static mob content table. Tuned against the GDD combat
// tables: tier 1 (levels 1-10), tier 2 (11-20), tier 3 (21+).
var mobDefs = []mobDef{
	// Tier 1
	{typeKey: "goblin", name: "Goblin", level: 2, maxHP: 5,
		attack: 1, strength: 1, defense: 1,
		defenseStab: 1, defenseSlash: 1, defenseCrush: 1,
		respawnSeconds: 60, baseXP: 20},
	{typeKey: "rat", name: "Giant Rat", level: 3, maxHP: 8,
		attack: 2, strength: 3, defense: 2,
		respawnSeconds: 45, baseXP: 30},
	{typeKey: "bandit", name: "Bandit", level: 6, maxHP: 18,
		attack: 5, strength: 5, defense: 4,
		attackStab: 4, attackSlash: 6, defenseStab: 3, defenseSlash: 3, defenseCrush: 2,
		respawnSeconds: 90, baseXP: 75},
	{typeKey: "barbarian", name: "Barbarian", level: 8, maxHP: 25,
		attack: 7, strength: 9, defense: 6,
		attackCrush: 10, defenseStab: 4, defenseSlash: 4, defenseCrush: 6,
		respawnSeconds: 120, baseXP: 110},

	// Tier 2
	{typeKey: "hobgoblin", name: "Hobgoblin", level: 12, maxHP: 35,
		attack: 11, strength: 12, defense: 10,
		attackStab: 8, attackSlash: 8, defenseStab: 6, defenseSlash: 6, defenseCrush: 6,
		respawnSeconds: 120, baseXP: 180},
	{typeKey: "guard", name: "Corrupted Guard", level: 15, maxHP: 45,
		attack: 14, strength: 13, defense: 16,
		attackSlash: 14, defenseStab: 12, defenseSlash: 14, defenseCrush: 10,
		respawnSeconds: 180, baseXP: 240},
	{typeKey: "dark_warrior", name: "Dark Warrior", level: 18, maxHP: 55,
		attack: 17, strength: 18, defense: 15,
		attackSlash: 18, attackCrush: 12, defenseStab: 12, defenseSlash: 12, defenseCrush: 12,
		respawnSeconds: 180, baseXP: 320},

	// Tier 3
	{typeKey: "black_knight", name: "Black Knight", level: 25, maxHP: 80,
		attack: 24, strength: 25, defense: 24,
		attackSlash: 26, defenseStab: 22, defenseSlash: 24, defenseCrush: 20,
		respawnSeconds: 300, baseXP: 600},
	{typeKey: "ice_warrior", name: "Ice Warrior", level: 28, maxHP: 95,
		attack: 27, strength: 26, defense: 30, magic: 20,
		attackSlash: 28, attackMagic: 15,
		defenseStab: 26, defenseSlash: 26, defenseCrush: 26, defenseMagic: 20,
		respawnSeconds: 300, baseXP: 800},
	{typeKey: "dark_ranger", name: "Dark Ranger", level: 30, maxHP: 90,
		attack: 20, strength: 18, defense: 24, ranged: 32,
		attackRanged: 30, defenseStab: 18, defenseSlash: 18, defenseCrush: 18, defenseRanged: 26,
		baseXP: 1000}, // respawn unset → default 5 minutes
}
