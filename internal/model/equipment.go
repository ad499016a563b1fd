package model

// EquipmentBonuses holds the aggregate attack and defense bonuses of a
// combatant's worn equipment. Absent equipment contributes 0 everywhere.
type EquipmentBonuses struct {
	AttackStab   int32
	AttackSlash  int32
	AttackCrush  int32
	AttackRanged int32
	AttackMagic  int32

	DefenseStab   int32
	DefenseSlash  int32
	DefenseCrush  int32
	DefenseRanged int32
	DefenseMagic  int32
}

// MaxMeleeAttack returns the highest of the three melee attack sub-bonuses.
// Attack rolls use the best melee bonus.
func (e EquipmentBonuses) MaxMeleeAttack() int32 {
	best := e.AttackStab
	if e.AttackSlash > best {
		best = e.AttackSlash
	}
	if e.AttackCrush > best {
		best = e.AttackCrush
	}
	return best
}

// AvgMeleeDefense returns the floored average of the three melee defense
// sub-bonuses. Defense rolls use the average, not the max; this asymmetry
// with MaxMeleeAttack is deliberate game balance, not a bug.
func (e EquipmentBonuses) AvgMeleeDefense() int32 {
	return (e.DefenseStab + e.DefenseSlash + e.DefenseCrush) / 3
}

// AttackBonus returns the attack equipment bonus for the given attack type.
func (e EquipmentBonuses) AttackBonus(t AttackType) int32 {
	switch t {
	case AttackRanged:
		return e.AttackRanged
	case AttackMagic:
		return e.AttackMagic
	default:
		return e.MaxMeleeAttack()
	}
}

// DefenseBonus returns the defense equipment bonus against the given
// incoming attack type.
func (e EquipmentBonuses) DefenseBonus(t AttackType) int32 {
	switch t {
	case AttackRanged:
		return e.DefenseRanged
	case AttackMagic:
		return e.DefenseMagic
	default:
		return e.AvgMeleeDefense()
	}
}
