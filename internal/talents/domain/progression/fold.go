package progression

import (
	"encoding/json"
	"fmt"

	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/event"
)

// FoldHandledTypes returns the event types the progression fold applies.
func FoldHandledTypes() []event.Type {
	return []event.Type{
		event.TypeEntryChosen,
		event.TypeNodeAllocated,
		event.TypeNodeDeallocated,
		event.TypeReset,
		event.TypeSlotSet,
	}
}

// Fold applies an event to progression state and returns the new state.
// It returns an error if a recognized event carries a payload that cannot
// be unmarshalled or contradicts the history, which indicates a corrupted
// journal rather than a player mistake.
func Fold(s State, evt event.Event) (State, error) {
	out := s.Clone()

	switch evt.Type {
	case event.TypeEntryChosen:
		var payload EntryChosenPayload
		if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
			return s, fmt.Errorf("progression fold %s: %w", evt.Type, err)
		}
		out.EntryPointID = payload.EntryPointID

	case event.TypeNodeAllocated:
		var payload NodeAllocatedPayload
		if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
			return s, fmt.Errorf("progression fold %s: %w", evt.Type, err)
		}
		out.AllocatedRanks[payload.NodeID] = payload.NewRank
		out.History = append(out.History, payload.NodeID)

	case event.TypeNodeDeallocated:
		var payload NodeDeallocatedPayload
		if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
			return s, fmt.Errorf("progression fold %s: %w", evt.Type, err)
		}
		if len(out.History) == 0 || out.History[len(out.History)-1] != payload.NodeID {
			return s, fmt.Errorf("progression fold %s: node %s is not the history tail", evt.Type, payload.NodeID)
		}
		out.History = out.History[:len(out.History)-1]
		if payload.NewRank <= 0 {
			delete(out.AllocatedRanks, payload.NodeID)
		} else {
			out.AllocatedRanks[payload.NodeID] = payload.NewRank
		}

	case event.TypeReset:
		var payload ResetPayload
		if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
			return s, fmt.Errorf("progression fold %s: %w", evt.Type, err)
		}
		out.EntryPointID = ""
		out.AllocatedRanks = map[string]int{}
		out.History = nil
		out.LastResetAt = evt.Timestamp

	case event.TypeSlotSet:
		var payload SlotSetPayload
		if err := json.Unmarshal(evt.PayloadJSON, &payload); err != nil {
			return s, fmt.Errorf("progression fold %s: %w", evt.Type, err)
		}
		if payload.AbilityID == "" {
			delete(out.AbilitySlots, payload.Slot)
		} else {
			out.AbilitySlots[payload.Slot] = payload.AbilityID
		}
	}

	return out, nil
}
