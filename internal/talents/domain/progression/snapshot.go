package progression

import (
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot is the stable persisted field set for one player's progression.
// Round-trips through Encode/Decode losslessly; malformed entries are
// dropped on restore rather than failing the load.
type Snapshot struct {
	EntryPointID   string         `json:"entry_point_id"`
	LastResetAt    int64          `json:"last_reset_at"`
	AllocatedRanks map[string]int `json:"allocated_ranks"`
	History        []string       `json:"history"`
	AbilitySlots   map[int]string `json:"ability_slots"`
}

// Snapshot captures the persisted view of the state.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		EntryPointID:   s.EntryPointID,
		AllocatedRanks: map[string]int{},
		History:        append([]string(nil), s.History...),
		AbilitySlots:   map[int]string{},
	}
	if !s.LastResetAt.IsZero() {
		snap.LastResetAt = s.LastResetAt.UTC().UnixMilli()
	}
	for id, rank := range s.AllocatedRanks {
		snap.AllocatedRanks[id] = rank
	}
	for slot, ability := range s.AbilitySlots {
		snap.AbilitySlots[slot] = ability
	}
	return snap
}

// FromSnapshot rebuilds state from a persisted snapshot, dropping entries
// that cannot be valid: non-positive ranks, blank node ids, out-of-range
// slot indexes, and empty slot assignments.
func FromSnapshot(playerID string, snap Snapshot) State {
	s := NewState(playerID)
	s.EntryPointID = snap.EntryPointID
	if snap.LastResetAt > 0 {
		s.LastResetAt = time.UnixMilli(snap.LastResetAt).UTC()
	}
	for id, rank := range snap.AllocatedRanks {
		if id == "" || rank < 1 {
			continue
		}
		s.AllocatedRanks[id] = rank
	}
	for _, id := range snap.History {
		if id == "" {
			continue
		}
		s.History = append(s.History, id)
	}
	for slot, ability := range snap.AbilitySlots {
		if slot < 0 || slot >= SlotCount || ability == "" {
			continue
		}
		s.AbilitySlots[slot] = ability
	}
	return s
}

// EncodeSnapshot serializes a snapshot for persistence.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal progression snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot deserializes a persisted snapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal progression snapshot: %w", err)
	}
	return snap, nil
}
