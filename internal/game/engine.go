package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/warband/internal/entity"
	"github.com/samdwyer/warband/internal/telemetry"
	"github.com/samdwyer/warband/internal/world"
)

// Store persists the single authoritative game snapshot.
// Load reports false when no game has been configured yet.
type Store interface {
	Load(ctx context.Context) (State, bool, error)
	Save(ctx context.Context, st State) error
}

// Engine runs every action as load, compute, save. Rejected actions never
// reach Save. The mutex serializes the whole cycle.
type Engine struct {
	mu     sync.Mutex
	store  Store
	table  *EncounterTable
	rng    entity.Rand
	logger *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand replaces the seeded random source.
func WithRand(rng entity.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithEncounterTable replaces the embedded encounter table.
func WithEncounterTable(table *EncounterTable) Option {
	return func(e *Engine) { e.table = table }
}

// New creates an engine backed by store.
func New(store Store, cfg Config, opts ...Option) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		store:  store,
		table:  DefaultEncounterTable(),
		rng:    rand.New(rand.NewSource(seed)),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Configure starts a fresh game for playerName, replacing any saved game.
func (e *Engine) Configure(ctx context.Context, playerName string) (Outcome, error) {
	name := strings.TrimSpace(playerName)
	if name == "" {
		name = DefaultPlayerName
	}
	return e.reset(ctx, "configure", func(State, bool) State { return NewState(name) })
}

// Restart resets the saved game, keeping the player's name.
func (e *Engine) Restart(ctx context.Context) (Outcome, error) {
	return e.reset(ctx, "restart", func(prev State, ok bool) State {
		if !ok || prev.PlayerName == "" {
			return NewState(DefaultPlayerName)
		}
		return NewState(prev.PlayerName)
	})
}

// Status returns the saved game without changing it.
func (e *Engine) Status(ctx context.Context) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, span := telemetry.Tracer("game").Start(ctx, "game.status")
	defer span.End()

	st, ok, err := e.store.Load(ctx)
	if err != nil {
		return State{}, e.fail(span, "status", fmt.Errorf("load game: %w", err))
	}
	if !ok {
		return State{}, ErrNoActiveGame
	}
	span.SetAttributes(attribute.String("phase", st.Phase().String()))
	return st, nil
}

// Buy recruits one unit, paying its price in loot.
func (e *Engine) Buy(ctx context.Context, unit string) (Outcome, error) {
	kind, err := entity.ParseKind(unit)
	if err != nil {
		return Outcome{Action: "buy"}, err
	}
	return e.apply(ctx, "buy", func(st State) (Outcome, error) {
		return applyBuy(st, kind)
	})
}

// Move explores in a direction and rolls the encounter table.
func (e *Engine) Move(ctx context.Context, direction string) (Outcome, error) {
	dir, err := world.ParseDirection(direction)
	if err != nil {
		return Outcome{Action: "move"}, err
	}
	return e.apply(ctx, "move", func(st State) (Outcome, error) {
		return applyMove(st, dir, e.table, e.rng)
	})
}

// Fight resolves the current encounter by comparing damage.
func (e *Engine) Fight(ctx context.Context) (Outcome, error) {
	return e.apply(ctx, "fight", applyFight)
}

// Flee escapes the current encounter, rolling survival for each unit.
func (e *Engine) Flee(ctx context.Context) (Outcome, error) {
	return e.apply(ctx, "flee", func(st State) (Outcome, error) {
		return applyFlee(st, e.rng)
	})
}

func (e *Engine) reset(ctx context.Context, action string, next func(prev State, ok bool) State) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, span := telemetry.Tracer("game").Start(ctx, "game."+action)
	defer span.End()

	prev, ok, err := e.store.Load(ctx)
	if err != nil {
		if action == "configure" {
			// A corrupt save must not block starting over.
			e.logger.Warn("ignoring unreadable save", "action", action, "error", err)
			prev, ok = State{}, false
		} else {
			return Outcome{Action: action}, e.fail(span, action, fmt.Errorf("load game: %w", err))
		}
	}

	st := next(prev, ok)
	if err := e.store.Save(ctx, st); err != nil {
		return Outcome{Action: action}, e.fail(span, action, fmt.Errorf("save game: %w", err))
	}

	span.SetAttributes(attribute.String("player", st.PlayerName))
	e.logger.Debug("game reset", "action", action, "player", st.PlayerName)

	return Outcome{
		Action:  action,
		State:   st,
		Message: fmt.Sprintf("New game for %s with %.1f loot.", st.PlayerName, st.Loot),
	}, nil
}

func (e *Engine) apply(ctx context.Context, action string, fn func(State) (Outcome, error)) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, span := telemetry.Tracer("game").Start(ctx, "game."+action)
	defer span.End()

	st, ok, err := e.store.Load(ctx)
	if err != nil {
		return Outcome{Action: action}, e.fail(span, action, fmt.Errorf("load game: %w", err))
	}
	if !ok {
		span.SetAttributes(attribute.Bool("rejected", true))
		return Outcome{Action: action}, ErrNoActiveGame
	}

	span.SetAttributes(
		attribute.String("phase.before", st.Phase().String()),
		attribute.Int("chance", st.Roster.Chance()),
	)

	out, err := fn(st)
	out.Action = action
	if err != nil {
		span.SetAttributes(attribute.Bool("rejected", true), attribute.String("reason", err.Error()))
		e.logger.Debug("action rejected", "action", action, "reason", err)
		return out, err
	}

	if err := e.store.Save(ctx, out.State); err != nil {
		return Outcome{Action: action, State: st}, e.fail(span, action, fmt.Errorf("save game: %w", err))
	}

	span.SetAttributes(outcomeAttributes(out)...)
	e.logger.Debug("action applied",
		"action", action,
		"phase", out.State.Phase().String(),
		"loot", out.State.Loot,
		"units", out.State.Roster.Len(),
	)
	return out, nil
}

func (e *Engine) fail(span trace.Span, action string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	e.logger.Error("action failed", "action", action, "error", err)
	return err
}

func outcomeAttributes(out Outcome) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("phase.after", out.State.Phase().String()),
		attribute.Float64("loot", out.State.Loot),
		attribute.Int("units", out.State.Roster.Len()),
	}
	switch out.Action {
	case "buy":
		attrs = append(attrs, attribute.String("unit", out.Unit.ID()))
	case "move":
		attrs = append(attrs,
			attribute.String("direction", out.Direction.String()),
			attribute.String("event", out.Event.String()),
		)
		if out.Enemy != nil {
			attrs = append(attrs, attribute.Int("enemy.damage", out.Enemy.Stats.Damage))
		}
	case "fight":
		if out.Fight != nil {
			attrs = append(attrs,
				attribute.Bool("won", out.Fight.Won),
				attribute.Int("player.damage", out.Fight.PlayerDamage),
				attribute.Int("enemy.damage", out.Fight.EnemyDamage),
			)
		}
	case "flee":
		if out.Flee != nil {
			attrs = append(attrs,
				attribute.Int("flee_score", out.Flee.FleeScore),
				attribute.Int("units_lost", out.Flee.Lost()),
			)
		}
	}
	return attrs
}
