package entity

import "github.com/samdwyer/warband/internal/gamedata"

// Rand is the randomness the game draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Encounter is the enemy band met while moving. It exists only during combat.
type Encounter struct {
	Roster Roster
	Stats  Stats
}

// GenerateEncounter rolls a new enemy band from the encounter table.
// Damage follows the unit table; loot and flee are drawn from their pools.
func GenerateEncounter(rng Rand, def *gamedata.EncounterDef) Encounter {
	var roster Roster
	for _, k := range Kinds() {
		roster = roster.WithCount(k, Pick(rng, def.EnemyUnitCounts))
	}
	return Encounter{
		Roster: roster,
		Stats: Stats{
			Damage: DamageOf(roster),
			Loot:   Pick(rng, def.EnemyLootRewards),
			Flee:   max(1, Pick(rng, def.EnemyFleeScores)),
		},
	}
}

// Pick returns a uniformly chosen element of pool, or 0 for an empty pool.
func Pick(rng Rand, pool []int) int {
	if len(pool) == 0 {
		return 0
	}
	return pool[rng.Intn(len(pool))]
}
