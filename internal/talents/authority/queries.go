package authority

import (
	"context"
	"fmt"

	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/progression"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/tree"
)

// Catalog returns the talent tree this authority validates against.
func (a *Authority) Catalog() *tree.Catalog {
	return a.catalog
}

// State returns a player's current progression snapshot. Players without a
// stored record get a fresh snapshot.
func (a *Authority) State(ctx context.Context, playerID string) (progression.Snapshot, error) {
	state, err := a.loadState(ctx, playerID)
	if err != nil {
		return progression.Snapshot{}, err
	}
	return state.Snapshot(), nil
}

// SpentPoints returns the total points a player has allocated.
func (a *Authority) SpentPoints(ctx context.Context, playerID string) (int, error) {
	state, err := a.loadState(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return state.SpentPoints(), nil
}

// AvailablePoints returns the points a player can still allocate at their
// current level.
func (a *Authority) AvailablePoints(ctx context.Context, playerID string) (int, error) {
	state, err := a.loadState(ctx, playerID)
	if err != nil {
		return 0, err
	}
	level, err := a.levels.Level(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("resolve level for %s: %w", playerID, err)
	}
	return state.AvailablePoints(level), nil
}

// AllocatedRanks returns a player's node ranks keyed by node id.
func (a *Authority) AllocatedRanks(ctx context.Context, playerID string) (map[string]int, error) {
	state, err := a.loadState(ctx, playerID)
	if err != nil {
		return nil, err
	}
	ranks := make(map[string]int, len(state.AllocatedRanks))
	for nodeID, rank := range state.AllocatedRanks {
		ranks[nodeID] = rank
	}
	return ranks, nil
}
