// Package game provides the game-state machine and the engine that moves a
// saved game from one snapshot to the next.
package game

import "github.com/samdwyer/warband/internal/entity"

// Phase represents the current game mode.
type Phase int

const (
	// PhaseMovement is exploration: buying units and moving are allowed.
	PhaseMovement Phase = iota
	// PhaseCombat means an enemy band blocks the way: fight or flee.
	PhaseCombat
	// PhaseGameOver is terminal until configure or restart.
	PhaseGameOver
)

// String returns the phase name. Movement and combat use the names stored in
// the snapshot "context" field.
func (p Phase) String() string {
	switch p {
	case PhaseMovement:
		return "mouvement"
	case PhaseCombat:
		return "combat"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

const (
	// StartingLoot is the loot a fresh game begins with.
	StartingLoot = 40.0
	// DefaultPlayerName is used when configure is given a blank name.
	DefaultPlayerName = "Player"
)

// State is the authoritative snapshot of one game.
//
// Mode is Movement or Combat and is what the snapshot stores as "context";
// GameOver overrides it, see Phase. Enemy roster and stats are kept apart so
// a snapshot missing one of them round-trips unchanged.
type State struct {
	PlayerName  string
	Loot        float64
	Mode        Phase
	GameOver    bool
	Roster      entity.Roster
	Stats       entity.Stats
	EnemyRoster *entity.Roster
	EnemyStats  *entity.Stats
}

// NewState creates a fresh game for the named player.
func NewState(playerName string) State {
	return State{
		PlayerName: playerName,
		Loot:       StartingLoot,
		Mode:       PhaseMovement,
		Stats:      entity.NewStats(),
	}
}

// Phase returns GameOver once the game is lost, otherwise the stored mode.
func (s State) Phase() Phase {
	if s.GameOver {
		return PhaseGameOver
	}
	return s.Mode
}

// Encounter returns the current enemy band if both halves are present.
func (s State) Encounter() (entity.Encounter, bool) {
	if s.EnemyRoster == nil || s.EnemyStats == nil {
		return entity.Encounter{}, false
	}
	return entity.Encounter{Roster: *s.EnemyRoster, Stats: *s.EnemyStats}, true
}

// HasEnemy reports whether any enemy data is present.
func (s State) HasEnemy() bool {
	return s.EnemyRoster != nil || s.EnemyStats != nil
}

func (s State) withEncounter(enc entity.Encounter) State {
	s.EnemyRoster = &enc.Roster
	s.EnemyStats = &enc.Stats
	s.Mode = PhaseCombat
	return s
}

func (s State) withoutEnemy() State {
	s.EnemyRoster = nil
	s.EnemyStats = nil
	s.Mode = PhaseMovement
	return s
}
