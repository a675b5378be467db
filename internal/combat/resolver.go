// Package combat resolves fights and flights between the player's warband
// and an enemy band.
package combat

import (
	"fmt"

	"github.com/samdwyer/warband/internal/entity"
)

// Roller supplies uniform draws in [0,1). *math/rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

// FightResult contains the outcome of a single fight.
type FightResult struct {
	Won          bool
	PlayerDamage int
	EnemyDamage  int
	LootGained   int    // Enemy loot reward, zero on defeat
	Message      string // Human-readable description
}

// Fight compares stored damage totals. There is a single round and no
// randomness; ties go to the enemy.
func Fight(player, enemy entity.Stats) FightResult {
	result := FightResult{
		PlayerDamage: player.Damage,
		EnemyDamage:  enemy.Damage,
	}

	if player.Damage > enemy.Damage {
		result.Won = true
		result.LootGained = enemy.Loot
		result.Message = fmt.Sprintf("Victory! %d damage beats %d. +%d loot", player.Damage, enemy.Damage, enemy.Loot)
		return result
	}

	result.Message = fmt.Sprintf("Defeat... %d damage against %d. GAME OVER", player.Damage, enemy.Damage)
	return result
}

// FleeResult contains the outcome of fleeing an encounter.
type FleeResult struct {
	FleeScore   int
	DeathChance float64
	Before      entity.Roster
	Survivors   entity.Roster
	Stats       entity.Stats // Player stats rebuilt from the survivors
	Message     string
}

// Lost returns how many units died while fleeing.
func (r FleeResult) Lost() int {
	return r.Before.Len() - r.Survivors.Len()
}

// Flee rolls survival for every unit in roster. Each unit dies with
// probability 1/flee score of the enemy; it survives iff its draw is at
// least that. Stats are recomputed from the survivors, keeping stats.Loot.
func Flee(roster entity.Roster, stats entity.Stats, enemy entity.Stats, rng Roller) FleeResult {
	fleeScore := enemy.FleeScore()
	pDie := 1.0 / float64(fleeScore)

	var survivors entity.Roster
	for k := range roster.Units() {
		if rng.Float64() >= pDie {
			survivors = survivors.Add(k, 1)
		}
	}

	result := FleeResult{
		FleeScore:   fleeScore,
		DeathChance: pDie,
		Before:      roster,
		Survivors:   survivors,
		Stats:       stats.Recomputed(survivors),
	}

	switch lost := result.Lost(); {
	case lost == 0:
		result.Message = "You flee. Everyone made it out."
	case survivors.IsEmpty():
		result.Message = fmt.Sprintf("You flee. All %d units perished.", lost)
	default:
		result.Message = fmt.Sprintf("You flee. %d units perished on the way.", lost)
	}
	return result
}
