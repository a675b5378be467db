package game

import (
	"reflect"
	"strings"
	"testing"

	"github.com/samdwyer/warband/internal/entity"
)

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseMovement, "mouvement"},
		{PhaseCombat, "combat"},
		{PhaseGameOver, "game_over"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}

func TestNewState(t *testing.T) {
	st := NewState("Ada")

	if st.PlayerName != "Ada" {
		t.Errorf("PlayerName = %q, want Ada", st.PlayerName)
	}
	if st.Loot != 40.0 {
		t.Errorf("Loot = %v, want 40.0", st.Loot)
	}
	if st.Phase() != PhaseMovement {
		t.Errorf("Phase() = %v, want PhaseMovement", st.Phase())
	}
	if !st.Roster.IsEmpty() {
		t.Errorf("Roster = %v, want empty", st.Roster)
	}
	if st.Stats != (entity.Stats{Flee: 1}) {
		t.Errorf("Stats = %v, want damage=0 loot=0 flee=1", st.Stats)
	}
	if st.HasEnemy() || st.GameOver {
		t.Error("fresh state should have no enemy and not be over")
	}
}

func TestStatePhaseGameOverDominates(t *testing.T) {
	st := NewState("Ada")
	st.Mode = PhaseCombat
	st.GameOver = true

	if st.Phase() != PhaseGameOver {
		t.Errorf("Phase() = %v, want PhaseGameOver", st.Phase())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	enemyRoster := entity.NewRoster(1, 2, 0)
	enemyStats := entity.Stats{Damage: 7, Loot: 10, Flee: 3}
	st := State{
		PlayerName:  "Ada",
		Loot:        12.5,
		Mode:        PhaseCombat,
		Roster:      entity.NewRoster(2, 1, 0),
		Stats:       entity.Stats{Damage: 8, Flee: 9},
		EnemyRoster: &enemyRoster,
		EnemyStats:  &enemyStats,
	}

	snap := st.Snapshot()
	if snap.Context != "combat" {
		t.Errorf("Snapshot().Context = %q, want combat", snap.Context)
	}
	if snap.EnemyTeam == nil || snap.EnemyTeam.Hunter != 2 {
		t.Errorf("Snapshot().EnemyTeam = %+v, want hunter=2", snap.EnemyTeam)
	}

	got, err := FromSnapshot(snap)
	if err != nil {
		t.Fatalf("FromSnapshot() error = %v", err)
	}
	if !reflect.DeepEqual(got.Snapshot(), snap) {
		t.Errorf("round trip mismatch: %+v != %+v", got.Snapshot(), snap)
	}
}

func TestFromSnapshotValidation(t *testing.T) {
	valid := NewState("Ada").Snapshot()

	tests := []struct {
		name   string
		mutate func(*Snapshot)
		want   string
	}{
		{"missing name", func(s *Snapshot) { s.PlayerName = "" }, "PlayerName"},
		{"bad context", func(s *Snapshot) { s.Context = "camping" }, "Context"},
		{"negative loot", func(s *Snapshot) { s.Loot = -1 }, "Loot"},
		{"negative count", func(s *Snapshot) { s.PlayerTeam.Wizard = -2 }, "Wizard"},
		{"zero player flee", func(s *Snapshot) { s.PlayerStats.Flee = 0 }, "flee"},
		{"negative enemy damage", func(s *Snapshot) { s.EnemyStats = &StatsSnapshot{Damage: -1, Flee: 1} }, "Damage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := valid
			tt.mutate(&snap)
			_, err := FromSnapshot(snap)
			if err == nil {
				t.Fatal("FromSnapshot() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestFromSnapshotPartialEnemy(t *testing.T) {
	snap := NewState("Ada").Snapshot()
	snap.Context = "combat"
	snap.EnemyStats = &StatsSnapshot{Damage: 4, Loot: 5, Flee: 2}

	st, err := FromSnapshot(snap)
	if err != nil {
		t.Fatalf("FromSnapshot() error = %v", err)
	}
	if _, ok := st.Encounter(); ok {
		t.Error("Encounter() should be absent without an enemy team")
	}
	if !st.HasEnemy() {
		t.Error("HasEnemy() should see the enemy stats")
	}
	if st.Snapshot().EnemyTeam != nil {
		t.Error("missing enemy team should stay missing after a round trip")
	}
}
