// Package authority owns the write path for talent progression. Every
// mutation flows through Submit: commands are validated against the current
// state, accepted commands append events to the journal, and the folded
// state is persisted before the result is returned. Clients never write
// progression state directly.
package authority

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "github.com/Slatyo/Valheim-Viking/internal/platform/errors"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/command"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/event"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/progression"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/tree"
	"github.com/Slatyo/Valheim-Viking/internal/talents/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// LevelOracle reports a player's current character level, the sole input to
// the talent point budget.
type LevelOracle interface {
	Level(ctx context.Context, playerID string) (int, error)
}

// FixedLevel is a LevelOracle granting every player the same level.
type FixedLevel int

// Level returns the fixed level.
func (f FixedLevel) Level(ctx context.Context, playerID string) (int, error) {
	return int(f), nil
}

// StaticLevels is a LevelOracle backed by an in-memory map. Unknown players
// have level zero.
type StaticLevels map[string]int

// Level returns the configured level for the player.
func (s StaticLevels) Level(ctx context.Context, playerID string) (int, error) {
	return s[playerID], nil
}

// Listener observes events after they have been journaled and applied.
type Listener func(event.Event)

// Result is the outcome of one submitted command.
type Result struct {
	Events     []event.Event
	Rejections []command.Rejection
	State      progression.Snapshot
}

// Accepted reports whether the command produced events.
func (r Result) Accepted() bool {
	return len(r.Rejections) == 0
}

// Option configures an Authority.
type Option func(*Authority)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(a *Authority) {
		a.now = now
	}
}

// WithListener registers an observer for applied events.
func WithListener(listener Listener) Option {
	return func(a *Authority) {
		a.listeners = append(a.listeners, listener)
	}
}

// Authority is the single writer for talent progression state.
type Authority struct {
	catalog  *tree.Catalog
	store    storage.Store
	levels   LevelOracle
	registry *command.Registry
	now      func() time.Time
	tracer   oteltrace.Tracer

	listeners []Listener

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New builds an Authority over the given catalog, store, and level oracle.
func New(catalog *tree.Catalog, store storage.Store, levels LevelOracle, opts ...Option) (*Authority, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if levels == nil {
		return nil, fmt.Errorf("level oracle is required")
	}
	a := &Authority{
		catalog:  catalog,
		store:    store,
		levels:   levels,
		registry: command.Default(),
		now:      time.Now,
		tracer:   otel.Tracer("talents/authority"),
		locks:    make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// playerLock returns the mutex serializing writes for one player.
func (a *Authority) playerLock(playerID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	lock, ok := a.locks[playerID]
	if !ok {
		lock = &sync.Mutex{}
		a.locks[playerID] = lock
	}
	return lock
}

// Submit validates and applies one command. Rejections are reported in the
// Result, not as errors; the error return covers infrastructure failures
// only. Accepted commands are journaled and persisted before returning, so
// a nil error means the returned state is durable.
func (a *Authority) Submit(ctx context.Context, cmd command.Command) (Result, error) {
	playerID := strings.TrimSpace(cmd.PlayerID)
	if playerID == "" {
		return Result{}, fmt.Errorf("player id is required")
	}
	if !a.registry.Known(cmd.Type) {
		return Result{}, apperrors.WithMetadata(
			apperrors.CodeUnknown,
			"unknown command type",
			map[string]string{"command_type": string(cmd.Type)},
		)
	}
	cmd.PlayerID = playerID

	ctx, span := a.tracer.Start(ctx, "authority.Submit",
		oteltrace.WithAttributes(
			attribute.String("talents.command_type", string(cmd.Type)),
		),
	)
	defer span.End()

	lock := a.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	state, err := a.loadState(ctx, playerID)
	if err != nil {
		return Result{}, err
	}

	level, err := a.levels.Level(ctx, playerID)
	if err != nil {
		return Result{}, fmt.Errorf("resolve level for %s: %w", playerID, err)
	}
	available := state.AvailablePoints(level)

	decision := progression.Decide(a.catalog, state, cmd, available, a.now)
	if !decision.Accepted() {
		span.SetAttributes(attribute.Bool("talents.accepted", false))
		return Result{
			Rejections: decision.Rejections,
			State:      state.Snapshot(),
		}, nil
	}

	applied := make([]event.Event, 0, len(decision.Events))
	next := state
	for _, evt := range decision.Events {
		stored, err := a.store.AppendEvent(ctx, evt)
		if err != nil {
			return Result{}, fmt.Errorf("append event %s: %w", evt.Type, err)
		}
		next, err = progression.Fold(next, stored)
		if err != nil {
			return Result{}, fmt.Errorf("apply event %s: %w", stored.Type, err)
		}
		applied = append(applied, stored)
	}

	if err := a.store.SaveState(ctx, storage.StateRecord{
		PlayerID:  playerID,
		Snapshot:  next.Snapshot(),
		UpdatedAt: a.now().UTC(),
	}); err != nil {
		return Result{}, fmt.Errorf("save state for %s: %w", playerID, err)
	}

	span.SetAttributes(
		attribute.Bool("talents.accepted", true),
		attribute.Int("talents.event_count", len(applied)),
	)

	for _, evt := range applied {
		for _, listener := range a.listeners {
			listener(evt)
		}
	}

	return Result{
		Events: applied,
		State:  next.Snapshot(),
	}, nil
}

func (a *Authority) loadState(ctx context.Context, playerID string) (progression.State, error) {
	record, err := a.store.LoadState(ctx, playerID)
	if err != nil {
		if apperrors.CodeOf(err) == apperrors.CodeNotFound {
			return progression.NewState(playerID), nil
		}
		return progression.State{}, fmt.Errorf("load state for %s: %w", playerID, err)
	}
	return progression.FromSnapshot(playerID, record.Snapshot), nil
}
