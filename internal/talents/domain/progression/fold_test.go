package progression

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/event"
)

func mustEvent(t *testing.T, eventType event.Type, payload any) event.Event {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return event.Event{
		PlayerID:    "p1",
		Type:        eventType,
		Timestamp:   time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		PayloadJSON: data,
	}
}

func TestFoldEntryChosenThenAllocation(t *testing.T) {
	s := NewState("p1")

	s, err := Fold(s, mustEvent(t, event.TypeEntryChosen, EntryChosenPayload{EntryPointID: "warrior", StartNodeID: "start_warrior"}))
	if err != nil {
		t.Fatalf("fold entry chosen: %v", err)
	}
	if s.EntryPointID != "warrior" {
		t.Fatalf("entry point = %s, want warrior", s.EntryPointID)
	}

	s, err = Fold(s, mustEvent(t, event.TypeNodeAllocated, NodeAllocatedPayload{NodeID: "start_warrior", NewRank: 1}))
	if err != nil {
		t.Fatalf("fold allocation: %v", err)
	}
	if s.Rank("start_warrior") != 1 {
		t.Fatalf("rank = %d, want 1", s.Rank("start_warrior"))
	}
	if s.SpentPoints() != 1 {
		t.Fatalf("spent = %d, want 1", s.SpentPoints())
	}
}

func TestFoldDeallocationPopsTail(t *testing.T) {
	s := warriorState(t, "start_warrior", "w_str_1", "w_str_1")

	s, err := Fold(s, mustEvent(t, event.TypeNodeDeallocated, NodeDeallocatedPayload{NodeID: "w_str_1", NewRank: 1}))
	if err != nil {
		t.Fatalf("fold deallocation: %v", err)
	}
	if s.Rank("w_str_1") != 1 {
		t.Fatalf("rank = %d, want 1", s.Rank("w_str_1"))
	}
	if len(s.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(s.History))
	}

	s, err = Fold(s, mustEvent(t, event.TypeNodeDeallocated, NodeDeallocatedPayload{NodeID: "w_str_1", NewRank: 0}))
	if err != nil {
		t.Fatalf("fold final deallocation: %v", err)
	}
	if _, allocated := s.AllocatedRanks["w_str_1"]; allocated {
		t.Fatal("rank-0 node must be removed from the allocation map")
	}
}

func TestFoldDeallocationRejectsNonTailNode(t *testing.T) {
	s := warriorState(t, "start_warrior", "w_str_1", "w_str_2")

	_, err := Fold(s, mustEvent(t, event.TypeNodeDeallocated, NodeDeallocatedPayload{NodeID: "w_str_1", NewRank: 0}))
	if err == nil {
		t.Fatal("expected a journal-corruption error for a non-tail deallocation")
	}
}

func TestFoldResetClearsBuildButKeepsSlots(t *testing.T) {
	s := warriorState(t, "start_warrior", "w_str_1")
	s.AbilitySlots[2] = "ability_war_cry"

	resetAt := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	evt := mustEvent(t, event.TypeReset, ResetPayload{EntryPointID: "warrior", RefundedPoints: 2})
	evt.Timestamp = resetAt

	s, err := Fold(s, evt)
	if err != nil {
		t.Fatalf("fold reset: %v", err)
	}
	if s.HasEntryPoint() {
		t.Fatal("reset must clear the entry point")
	}
	if s.SpentPoints() != 0 || len(s.AllocatedRanks) != 0 {
		t.Fatalf("reset left spent=%d ranks=%d", s.SpentPoints(), len(s.AllocatedRanks))
	}
	if !s.LastResetAt.Equal(resetAt) {
		t.Fatalf("last reset = %s, want %s", s.LastResetAt, resetAt)
	}
	if s.AbilitySlots[2] != "ability_war_cry" {
		t.Fatal("reset must not clear ability slots")
	}
}

func TestFoldSlotSetAndClear(t *testing.T) {
	s := NewState("p1")

	s, err := Fold(s, mustEvent(t, event.TypeSlotSet, SlotSetPayload{Slot: 3, AbilityID: "ability_war_cry"}))
	if err != nil {
		t.Fatalf("fold slot set: %v", err)
	}
	if s.AbilitySlots[3] != "ability_war_cry" {
		t.Fatalf("slot 3 = %q, want ability_war_cry", s.AbilitySlots[3])
	}

	s, err = Fold(s, mustEvent(t, event.TypeSlotSet, SlotSetPayload{Slot: 3}))
	if err != nil {
		t.Fatalf("fold slot clear: %v", err)
	}
	if _, set := s.AbilitySlots[3]; set {
		t.Fatal("empty ability id must clear the slot")
	}
}

func TestFoldDoesNotAliasInputState(t *testing.T) {
	s := warriorState(t, "start_warrior")

	folded, err := Fold(s, mustEvent(t, event.TypeNodeAllocated, NodeAllocatedPayload{NodeID: "w_str_1", NewRank: 1}))
	if err != nil {
		t.Fatalf("fold: %v", err)
	}
	if s.Rank("w_str_1") != 0 {
		t.Fatal("fold mutated the input state's rank map")
	}
	if folded.Rank("w_str_1") != 1 {
		t.Fatalf("folded rank = %d, want 1", folded.Rank("w_str_1"))
	}
}

func TestFoldPointSumInvariantHolds(t *testing.T) {
	s := NewState("p1")
	steps := []event.Event{
		mustEvent(t, event.TypeEntryChosen, EntryChosenPayload{EntryPointID: "warrior", StartNodeID: "start_warrior"}),
		mustEvent(t, event.TypeNodeAllocated, NodeAllocatedPayload{NodeID: "start_warrior", NewRank: 1}),
		mustEvent(t, event.TypeNodeAllocated, NodeAllocatedPayload{NodeID: "w_str_1", NewRank: 1}),
		mustEvent(t, event.TypeNodeAllocated, NodeAllocatedPayload{NodeID: "w_str_1", NewRank: 2}),
		mustEvent(t, event.TypeNodeDeallocated, NodeDeallocatedPayload{NodeID: "w_str_1", NewRank: 1}),
	}

	for _, evt := range steps {
		var err error
		s, err = Fold(s, evt)
		if err != nil {
			t.Fatalf("fold %s: %v", evt.Type, err)
		}
		total := 0
		for _, rank := range s.AllocatedRanks {
			total += rank
		}
		if total != len(s.History) {
			t.Fatalf("after %s: rank sum %d != history length %d", evt.Type, total, len(s.History))
		}
	}
}
