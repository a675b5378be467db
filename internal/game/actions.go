package game

import (
	"fmt"

	"github.com/samdwyer/warband/internal/combat"
	"github.com/samdwyer/warband/internal/entity"
	"github.com/samdwyer/warband/internal/world"
)

// Outcome describes what an action did. State is the full next state.
type Outcome struct {
	Action    string
	State     State
	Message   string
	Event     Event           // move only
	Direction world.Direction // move only
	Found     int             // loot found on the road or won in a fight
	Unit      entity.Kind     // unit bought or reinforcement received
	Enemy     *entity.Encounter
	Fight     *combat.FightResult
	Flee      *combat.FleeResult
}

// The functions below are pure transitions: they never touch the store and
// return the unchanged input state alongside any rejection.

func requirePhase(st State, want Phase, action string) error {
	if st.GameOver {
		return fmt.Errorf("%w: %s is not possible", ErrGameOver, action)
	}
	if st.Mode != want {
		return fmt.Errorf("%w: cannot %s during %s", ErrWrongPhase, action, st.Mode)
	}
	return nil
}

func applyBuy(st State, kind entity.Kind) (Outcome, error) {
	if err := requirePhase(st, PhaseMovement, "buy"); err != nil {
		return Outcome{State: st}, err
	}

	roster, stats, loot, err := entity.Recruit(st.Roster, st.Stats, kind, st.Loot)
	if err != nil {
		return Outcome{State: st}, err
	}
	st.Roster, st.Stats, st.Loot = roster, stats, loot

	return Outcome{
		State:   st,
		Unit:    kind,
		Message: fmt.Sprintf("Recruited a %s for %.1f loot.", kind.ID(), kind.Price()),
	}, nil
}

func applyMove(st State, dir world.Direction, table *EncounterTable, rng entity.Rand) (Outcome, error) {
	if err := requirePhase(st, PhaseMovement, "move"); err != nil {
		return Outcome{State: st}, err
	}

	out := Outcome{Direction: dir}
	out.Event = table.Select(st.Roster.Chance(), rng.Float64())

	switch out.Event {
	case EventLoot:
		out.Found = table.LootReward(rng)
		st = st.withoutEnemy()
		st.Loot += float64(out.Found)
		out.Message = fmt.Sprintf("Heading %s, you find a stash of loot: +%d", dir, out.Found)

	case EventReinforcement:
		out.Unit = table.ReinforcementKind()
		st = st.withoutEnemy()
		st.Roster, st.Stats = entity.Reinforce(st.Roster, st.Stats, out.Unit)
		out.Message = fmt.Sprintf("Heading %s, a wandering %s joins your warband.", dir, out.Unit.ID())

	case EventEnemy:
		enc := table.Enemy(rng)
		out.Enemy = &enc
		st = st.withEncounter(enc)
		out.Message = fmt.Sprintf("Heading %s, you run into an enemy band (%s). Fight or flee!", dir, enc.Roster)

	default:
		st = st.withoutEnemy()
		out.Message = fmt.Sprintf("Heading %s, the road is quiet. Nothing happens.", dir)
	}

	out.State = st
	return out, nil
}

func applyFight(st State) (Outcome, error) {
	if err := requirePhase(st, PhaseCombat, "fight"); err != nil {
		return Outcome{State: st}, err
	}
	enc, ok := st.Encounter()
	if !ok {
		return Outcome{State: st}, fmt.Errorf("%w: no enemy loaded", ErrMissingEnemy)
	}

	result := combat.Fight(st.Stats, enc.Stats)
	if result.Won {
		st = st.withoutEnemy()
		st.Loot += float64(result.LootGained)
	} else {
		// Only the flag flips; the losing position is kept as it was.
		st.GameOver = true
	}

	return Outcome{
		State:   st,
		Found:   result.LootGained,
		Enemy:   &enc,
		Fight:   &result,
		Message: result.Message,
	}, nil
}

func applyFlee(st State, rng combat.Roller) (Outcome, error) {
	if err := requirePhase(st, PhaseCombat, "flee"); err != nil {
		return Outcome{State: st}, err
	}
	if st.EnemyStats == nil {
		return Outcome{State: st}, fmt.Errorf("%w: no enemy loaded", ErrMissingEnemy)
	}

	result := combat.Flee(st.Roster, st.Stats, *st.EnemyStats, rng)
	st.Roster = result.Survivors
	st.Stats = result.Stats
	st = st.withoutEnemy()

	return Outcome{
		State:   st,
		Flee:    &result,
		Message: result.Message,
	}, nil
}
