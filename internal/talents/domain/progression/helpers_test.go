package progression

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/command"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/event"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/tree"
)

// testCatalog builds a two-archetype graph used across the package tests:
//
//	start_warrior - w_str_1 - w_str_2 - w_war_cry
//	                   \
//	                    w_fork
//	start_mage - m_int_1
func testCatalog(t *testing.T) *tree.Catalog {
	t.Helper()
	cat, err := tree.New(tree.Definition{
		Nodes: []tree.Node{
			{ID: "start_warrior", Type: tree.NodeTypeStart, MaxRanks: 1},
			{ID: "w_str_1", Type: tree.NodeTypeMinor, MaxRanks: 5, Connections: []string{"start_warrior"}},
			{ID: "w_str_2", Type: tree.NodeTypeMinor, MaxRanks: 1, Connections: []string{"w_str_1"}},
			{ID: "w_fork", Type: tree.NodeTypeMinor, MaxRanks: 1, Connections: []string{"w_str_1"}},
			{ID: "w_war_cry", Type: tree.NodeTypeNotable, MaxRanks: 1, Connections: []string{"w_str_2"}, GrantsAbilityID: "ability_war_cry"},
			{ID: "start_mage", Type: tree.NodeTypeStart, MaxRanks: 1},
			{ID: "m_int_1", Type: tree.NodeTypeMinor, MaxRanks: 1, Connections: []string{"start_mage"}},
		},
		EntryPoints: []tree.EntryPoint{
			{ID: "warrior", StartNodeID: "start_warrior"},
			{ID: "mage", StartNodeID: "start_mage"},
		},
	})
	if err != nil {
		t.Fatalf("build test catalog: %v", err)
	}
	return cat
}

// warriorState returns an Active state with the given nodes allocated in
// order, one rank per entry as in a real history.
func warriorState(t *testing.T, nodes ...string) State {
	t.Helper()
	s := NewState("p1")
	s.EntryPointID = "warrior"
	for _, nodeID := range nodes {
		s.AllocatedRanks[nodeID]++
		s.History = append(s.History, nodeID)
	}
	return s
}

func mustCommand(t *testing.T, cmdType command.Type, payload any) command.Command {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return command.Command{
		PlayerID:    "p1",
		Type:        cmdType,
		RequestID:   "req-1",
		PayloadJSON: data,
	}
}

func fixedNow() func() time.Time {
	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func requireAccepted(t *testing.T, decision command.Decision) []event.Event {
	t.Helper()
	if len(decision.Rejections) != 0 {
		t.Fatalf("expected acceptance, got rejection %+v", decision.Rejections[0])
	}
	return decision.Events
}

func requireRejected(t *testing.T, decision command.Decision, code string) command.Rejection {
	t.Helper()
	if len(decision.Events) != 0 {
		t.Fatalf("expected rejection, got %d events", len(decision.Events))
	}
	if len(decision.Rejections) != 1 {
		t.Fatalf("expected exactly one rejection, got %d", len(decision.Rejections))
	}
	rejection := decision.Rejections[0]
	if rejection.Code != code {
		t.Fatalf("rejection code = %s, want %s", rejection.Code, code)
	}
	return rejection
}
