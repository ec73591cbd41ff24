package progression

import (
	"time"

	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/tree"
)

// SlotCount is the number of ability slots on the action bar.
const SlotCount = 8

// State captures one player's replayed progression: the chosen entry point,
// allocated node ranks, the ordered allocation history (the undo stack), and
// ability-slot assignments.
//
// Invariants maintained by the authority: the spent-point total always
// equals the history length, and every allocated non-start node keeps an
// unbroken path of allocated nodes back to the bound start node.
type State struct {
	// PlayerID is the opaque owner identifier.
	PlayerID string
	// EntryPointID is the chosen entry point, empty before the choice and
	// after a full reset.
	EntryPointID string
	// AllocatedRanks maps node id to current rank; absence means rank 0.
	AllocatedRanks map[string]int
	// History records one node id per point ever spent, oldest first.
	// Undo is strictly last-in-first-out over this sequence.
	History []string
	// AbilitySlots maps slot index (0..SlotCount-1) to ability id.
	AbilitySlots map[int]string
	// LastResetAt is when the player last performed a full reset.
	LastResetAt time.Time
}

// NewState returns the empty progression record lazily created on first
// access for a player.
func NewState(playerID string) State {
	return State{
		PlayerID:       playerID,
		AllocatedRanks: map[string]int{},
		AbilitySlots:   map[int]string{},
	}
}

// Rank returns the current rank of a node, zero when unallocated.
func (s State) Rank(nodeID string) int {
	return s.AllocatedRanks[nodeID]
}

// SpentPoints returns the total points spent, one per history entry.
func (s State) SpentPoints() int {
	return len(s.History)
}

// AvailablePoints derives the spendable balance from the player's level.
// Never negative.
func (s State) AvailablePoints(level int) int {
	available := level - s.SpentPoints()
	if available < 0 {
		return 0
	}
	return available
}

// HasEntryPoint reports whether an entry point is currently chosen.
func (s State) HasEntryPoint() bool {
	return s.EntryPointID != ""
}

// StartNodeID resolves the start node bound to the chosen entry point,
// empty when no entry point is chosen or the entry point is unknown.
func (s State) StartNodeID(cat *tree.Catalog) string {
	if !s.HasEntryPoint() {
		return ""
	}
	entry, ok := cat.EntryPoint(s.EntryPointID)
	if !ok {
		return ""
	}
	return entry.StartNodeID
}

// AbilityUnlocked reports whether some allocated node grants the ability.
func (s State) AbilityUnlocked(cat *tree.Catalog, abilityID string) bool {
	if abilityID == "" {
		return false
	}
	for nodeID, rank := range s.AllocatedRanks {
		if rank < 1 {
			continue
		}
		node, ok := cat.Node(nodeID)
		if ok && node.GrantsAbilityID == abilityID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so folds never alias a caller's maps.
func (s State) Clone() State {
	out := s
	out.AllocatedRanks = make(map[string]int, len(s.AllocatedRanks))
	for id, rank := range s.AllocatedRanks {
		out.AllocatedRanks[id] = rank
	}
	out.AbilitySlots = make(map[int]string, len(s.AbilitySlots))
	for slot, ability := range s.AbilitySlots {
		out.AbilitySlots[slot] = ability
	}
	out.History = append([]string(nil), s.History...)
	return out
}
