package combat

import (
	"math"
	"math/rand"
	"testing"

	"github.com/samdwyer/warband/internal/entity"
)

// fixedRoller returns draws from a fixed sequence, repeating the last one.
type fixedRoller struct {
	draws []float64
	i     int
}

func (f *fixedRoller) Float64() float64 {
	if f.i >= len(f.draws) {
		return f.draws[len(f.draws)-1]
	}
	v := f.draws[f.i]
	f.i++
	return v
}

func TestFight(t *testing.T) {
	tests := []struct {
		name         string
		playerDamage int
		enemyDamage  int
		enemyLoot    int
		wantWon      bool
		wantLoot     int
	}{
		{"stronger player wins", 10, 9, 15, true, 15},
		{"tie favors enemy", 9, 9, 15, false, 0},
		{"weaker player loses", 3, 12, 5, false, 0},
		{"empty bands tie", 0, 0, 10, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Fight(
				entity.Stats{Damage: tt.playerDamage, Flee: 1},
				entity.Stats{Damage: tt.enemyDamage, Loot: tt.enemyLoot, Flee: 2},
			)
			if result.Won != tt.wantWon {
				t.Errorf("Fight().Won = %v, want %v", result.Won, tt.wantWon)
			}
			if result.LootGained != tt.wantLoot {
				t.Errorf("Fight().LootGained = %d, want %d", result.LootGained, tt.wantLoot)
			}
			if result.PlayerDamage != tt.playerDamage || result.EnemyDamage != tt.enemyDamage {
				t.Errorf("Fight() damages = %d/%d, want %d/%d",
					result.PlayerDamage, result.EnemyDamage, tt.playerDamage, tt.enemyDamage)
			}
			if result.Message == "" {
				t.Error("Fight().Message should not be empty")
			}
		})
	}
}

func TestFleeScoreOneKillsEveryone(t *testing.T) {
	roster := entity.NewRoster(5, 7, 3)
	stats := entity.NewStats().Recomputed(roster)
	rng := rand.New(rand.NewSource(7))

	result := Flee(roster, stats, entity.Stats{Flee: 1}, rng)

	if !result.Survivors.IsEmpty() {
		t.Errorf("Survivors = %v, want empty", result.Survivors)
	}
	if result.Lost() != 15 {
		t.Errorf("Lost() = %d, want 15", result.Lost())
	}
	if result.Stats.Damage != 0 || result.Stats.Flee != 1 {
		t.Errorf("Stats = %v, want damage=0 flee=1", result.Stats)
	}
	if result.DeathChance != 1.0 {
		t.Errorf("DeathChance = %v, want 1.0", result.DeathChance)
	}
}

func TestFleeScoreFlooredAtOne(t *testing.T) {
	result := Flee(entity.NewRoster(2, 0, 0), entity.NewStats(), entity.Stats{Flee: 0}, &fixedRoller{draws: []float64{0.99}})
	if result.FleeScore != 1 {
		t.Errorf("FleeScore = %d, want 1", result.FleeScore)
	}
	if !result.Survivors.IsEmpty() {
		t.Errorf("Survivors = %v, want empty", result.Survivors)
	}
}

func TestFleeHighScoreSurvives(t *testing.T) {
	roster := entity.NewRoster(10, 10, 10)
	rng := rand.New(rand.NewSource(99))

	const trials = 200
	total := 0
	for range trials {
		result := Flee(roster, entity.NewStats(), entity.Stats{Flee: 1_000_000}, rng)
		total += result.Survivors.Len()
	}

	mean := float64(total) / trials
	if math.Abs(mean-30) > 0.1 {
		t.Errorf("mean survivors = %.3f, want about 30", mean)
	}
}

func TestFleeThreshold(t *testing.T) {
	// Flee score 4 gives p_die = 0.25. Draws are consumed warrior, warrior,
	// hunter, wizard.
	roster := entity.NewRoster(2, 1, 1)
	rng := &fixedRoller{draws: []float64{0.25, 0.2499, 0.9, 0.1}}

	result := Flee(roster, entity.Stats{Damage: 99, Loot: 4, Flee: 99}, entity.Stats{Flee: 4}, rng)

	want := entity.NewRoster(1, 1, 0)
	if result.Survivors != want {
		t.Errorf("Survivors = %v, want %v", result.Survivors, want)
	}
	if result.Stats.Damage != 3*1+2*1 {
		t.Errorf("Stats.Damage = %d, want %d", result.Stats.Damage, 5)
	}
	if result.Stats.Flee != 1+2*1+4*1 {
		t.Errorf("Stats.Flee = %d, want %d", result.Stats.Flee, 7)
	}
	if result.Stats.Loot != 4 {
		t.Errorf("Stats.Loot = %d, want 4", result.Stats.Loot)
	}
	if result.Lost() != 2 {
		t.Errorf("Lost() = %d, want 2", result.Lost())
	}
}

func TestFleeRecomputeProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		roster := entity.NewRoster(rng.Intn(6), rng.Intn(6), rng.Intn(6))
		result := Flee(roster, entity.NewStats(), entity.Stats{Flee: 1 + rng.Intn(4)}, rng)

		w, h, m := result.Survivors.Warriors(), result.Survivors.Hunters(), result.Survivors.Wizards()
		if result.Stats.Damage != 3*w+2*h+4*m {
			t.Fatalf("damage %d != 3*%d+2*%d+4*%d", result.Stats.Damage, w, h, m)
		}
		if result.Stats.Flee != 1+2*w+4*h+3*m {
			t.Fatalf("flee %d != 1+2*%d+4*%d+3*%d", result.Stats.Flee, w, h, m)
		}
		for _, k := range entity.Kinds() {
			if result.Survivors.Count(k) > roster.Count(k) {
				t.Fatalf("%s survivors %d exceed starting %d", k.ID(), result.Survivors.Count(k), roster.Count(k))
			}
		}
	}
}
