package game

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/samdwyer/warband/internal/entity"
)

// validate is shared; the validator caches struct metadata.
var validate = validator.New()

// TeamSnapshot is the stored form of a roster.
type TeamSnapshot struct {
	Warrior int `json:"warrior" yaml:"warrior" validate:"gte=0"`
	Hunter  int `json:"hunter" yaml:"hunter" validate:"gte=0"`
	Wizard  int `json:"wizard" yaml:"wizard" validate:"gte=0"`
}

// StatsSnapshot is the stored form of combat stats.
type StatsSnapshot struct {
	Damage int `json:"damage" yaml:"damage" validate:"gte=0"`
	Loot   int `json:"loot" yaml:"loot" validate:"gte=0"`
	Flee   int `json:"flee" yaml:"flee" validate:"gte=0"`
}

// Snapshot is the persisted shape of a game. Field names are a stable
// contract shared by every store.
type Snapshot struct {
	PlayerName  string         `json:"player_name" yaml:"player_name" validate:"required"`
	Context     string         `json:"context" yaml:"context" validate:"oneof=mouvement combat"`
	Loot        float64        `json:"loot" yaml:"loot" validate:"gte=0"`
	GameOver    bool           `json:"game_over" yaml:"game_over"`
	PlayerTeam  TeamSnapshot   `json:"player_team" yaml:"player_team"`
	PlayerStats StatsSnapshot  `json:"player_stats" yaml:"player_stats"`
	EnemyTeam   *TeamSnapshot  `json:"enemy_team" yaml:"enemy_team"`
	EnemyStats  *StatsSnapshot `json:"enemy_stats" yaml:"enemy_stats"`
}

// Validate checks field ranges. Player flee must be at least 1 since flight
// divides by it.
func (s Snapshot) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}
	if s.PlayerStats.Flee < 1 {
		return errors.New("invalid snapshot: player flee must be at least 1")
	}
	return nil
}

// Snapshot converts the state to its stored form.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		PlayerName:  s.PlayerName,
		Context:     s.Mode.String(),
		Loot:        s.Loot,
		GameOver:    s.GameOver,
		PlayerTeam:  teamSnapshot(s.Roster),
		PlayerStats: statsSnapshot(s.Stats),
	}
	if s.EnemyRoster != nil {
		team := teamSnapshot(*s.EnemyRoster)
		snap.EnemyTeam = &team
	}
	if s.EnemyStats != nil {
		stats := statsSnapshot(*s.EnemyStats)
		snap.EnemyStats = &stats
	}
	return snap
}

// FromSnapshot validates a stored snapshot and converts it to a State.
func FromSnapshot(snap Snapshot) (State, error) {
	if err := snap.Validate(); err != nil {
		return State{}, err
	}

	st := State{
		PlayerName: snap.PlayerName,
		Loot:       snap.Loot,
		Mode:       PhaseMovement,
		GameOver:   snap.GameOver,
		Roster:     snap.PlayerTeam.roster(),
		Stats:      snap.PlayerStats.stats(),
	}
	if snap.Context == PhaseCombat.String() {
		st.Mode = PhaseCombat
	}
	if snap.EnemyTeam != nil {
		r := snap.EnemyTeam.roster()
		st.EnemyRoster = &r
	}
	if snap.EnemyStats != nil {
		s := snap.EnemyStats.stats()
		st.EnemyStats = &s
	}
	return st, nil
}

func teamSnapshot(r entity.Roster) TeamSnapshot {
	return TeamSnapshot{Warrior: r.Warriors(), Hunter: r.Hunters(), Wizard: r.Wizards()}
}

func (t TeamSnapshot) roster() entity.Roster {
	return entity.NewRoster(t.Warrior, t.Hunter, t.Wizard)
}

func statsSnapshot(s entity.Stats) StatsSnapshot {
	return StatsSnapshot{Damage: s.Damage, Loot: s.Loot, Flee: s.Flee}
}

func (s StatsSnapshot) stats() entity.Stats {
	return entity.Stats{Damage: s.Damage, Loot: s.Loot, Flee: s.Flee}
}
