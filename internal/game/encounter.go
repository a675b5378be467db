package game

import (
	"github.com/samdwyer/warband/internal/entity"
	"github.com/samdwyer/warband/internal/gamedata"
)

// Event is the result of one movement roll.
type Event int

const (
	EventSafe Event = iota
	EventLoot
	EventReinforcement
	EventEnemy
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventSafe:
		return "safe"
	case EventLoot:
		return "loot"
	case EventReinforcement:
		return "reinforcement"
	case EventEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Thresholds are the cumulative upper bounds of the loot, reinforcement
// and enemy bands. Everything at or above Enemy is safe.
type Thresholds struct {
	Loot          float64
	Reinforcement float64
	Enemy         float64
}

// EncounterTable selects movement events from a single uniform draw.
type EncounterTable struct {
	def *gamedata.EncounterDef
}

// NewEncounterTable wraps a loaded encounter definition.
func NewEncounterTable(def *gamedata.EncounterDef) *EncounterTable {
	return &EncounterTable{def: def}
}

// DefaultEncounterTable uses the embedded encounters.json.
func DefaultEncounterTable() *EncounterTable {
	return NewEncounterTable(gamedata.Encounters())
}

// Thresholds stacks the band probabilities for the given chance.
func (t *EncounterTable) Thresholds(chance int) Thresholds {
	loot, _ := t.def.Band(gamedata.BandLoot)
	reinforcement, _ := t.def.Band(gamedata.BandReinforcement)
	enemy, _ := t.def.Band(gamedata.BandEnemy)

	var th Thresholds
	th.Loot = loot.Probability(chance)
	th.Reinforcement = th.Loot + reinforcement.Probability(chance)
	th.Enemy = th.Reinforcement + enemy.Probability(chance)
	return th
}

// Select maps a draw r in [0,1) to exactly one event.
func (t *EncounterTable) Select(chance int, r float64) Event {
	th := t.Thresholds(chance)
	switch {
	case r < th.Loot:
		return EventLoot
	case r < th.Reinforcement:
		return EventReinforcement
	case r < th.Enemy:
		return EventEnemy
	default:
		return EventSafe
	}
}

// LootReward draws the value of a loot find.
func (t *EncounterTable) LootReward(rng entity.Rand) int {
	return entity.Pick(rng, t.def.LootRewards)
}

// ReinforcementKind is the unit that joins on a reinforcement event.
func (t *EncounterTable) ReinforcementKind() entity.Kind {
	k, err := entity.ParseKind(t.def.ReinforcementUnit)
	if err != nil {
		return entity.KindWarrior
	}
	return k
}

// Enemy rolls a new enemy band.
func (t *EncounterTable) Enemy(rng entity.Rand) entity.Encounter {
	return entity.GenerateEncounter(rng, t.def)
}
