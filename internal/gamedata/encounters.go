package gamedata

import (
	"errors"
	"fmt"
)

// Band identifiers, in the order their probability mass is stacked.
const (
	BandLoot          = "loot"
	BandReinforcement = "reinforcement"
	BandEnemy         = "enemy"
)

// BandDef describes one non-safe movement outcome. Its probability is
// min(Cap, chance/Divisor).
type BandDef struct {
	ID      string  `json:"id"`
	Divisor float64 `json:"divisor"`
	Cap     float64 `json:"cap"`
}

// Probability returns the band's share of the unit interval for the given chance.
func (b BandDef) Probability(chance int) float64 {
	if chance <= 0 || b.Divisor <= 0 {
		return 0
	}
	return min(b.Cap, float64(chance)/b.Divisor)
}

// EncounterDef is the movement encounter table loaded from encounters.json.
type EncounterDef struct {
	Bands             []BandDef `json:"bands"`
	LootRewards       []int     `json:"lootRewards"`       // Loot found on the road
	ReinforcementUnit string    `json:"reinforcementUnit"` // Unit ID that joins for free
	EnemyUnitCounts   []int     `json:"enemyUnitCounts"`   // Per-kind enemy count pool
	EnemyLootRewards  []int     `json:"enemyLootRewards"`  // Loot carried by an enemy band
	EnemyFleeScores   []int     `json:"enemyFleeScores"`   // Enemy flee score pool
}

// Band returns the band with the given ID.
func (e *EncounterDef) Band(id string) (BandDef, bool) {
	for _, b := range e.Bands {
		if b.ID == id {
			return b, true
		}
	}
	return BandDef{}, false
}

// Validate checks that every band is present and every pool is non-empty.
func (e *EncounterDef) Validate() error {
	for _, id := range []string{BandLoot, BandReinforcement, BandEnemy} {
		if _, ok := e.Band(id); !ok {
			return fmt.Errorf("encounter band %q missing", id)
		}
	}
	if len(e.LootRewards) == 0 || len(e.EnemyUnitCounts) == 0 ||
		len(e.EnemyLootRewards) == 0 || len(e.EnemyFleeScores) == 0 {
		return errors.New("encounter reward pools must not be empty")
	}
	if e.ReinforcementUnit == "" {
		return errors.New("encounter reinforcement unit missing")
	}
	return nil
}

// LoadEncounters loads and validates the embedded encounters.json table.
func LoadEncounters() (*EncounterDef, error) {
	def, err := Load[EncounterDef]("encounters.json")
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// MustLoadEncounters loads the encounter table, panicking on error.
func MustLoadEncounters() *EncounterDef {
	def, err := LoadEncounters()
	if err != nil {
		panic(err)
	}
	return def
}
