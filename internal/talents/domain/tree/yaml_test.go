package tree

import (
	"strings"
	"testing"
)

const sampleTreeYAML = `
nodes:
  - id: start_warrior
    type: start
  - id: w_str_1
    type: minor
    max_ranks: 5
    connections: [start_warrior]
    modifiers:
      - stat: strength
        effect: flat
        value: 2
  - id: w_war_cry
    type: notable
    connections: [w_str_1]
    grants_ability: ability_war_cry
entry_points:
  - id: warrior
    start_node: start_warrior
`

func TestLoadBuildsCatalog(t *testing.T) {
	cat, err := Load(strings.NewReader(sampleTreeYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	node, ok := cat.Node("w_str_1")
	if !ok {
		t.Fatal("expected node w_str_1")
	}
	if node.MaxRanks != 5 {
		t.Fatalf("max ranks = %d, want 5", node.MaxRanks)
	}
	if len(node.Modifiers) != 1 || node.Modifiers[0].Stat != "strength" || node.Modifiers[0].Value != 2 {
		t.Fatalf("modifiers = %+v, want one strength +2", node.Modifiers)
	}

	ability, ok := cat.Node("w_war_cry")
	if !ok {
		t.Fatal("expected node w_war_cry")
	}
	if ability.GrantsAbilityID != "ability_war_cry" {
		t.Fatalf("grants ability = %q, want ability_war_cry", ability.GrantsAbilityID)
	}
}

func TestLoadDefaultsMaxRanksToOne(t *testing.T) {
	cat, err := Load(strings.NewReader(sampleTreeYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	start, _ := cat.Node("start_warrior")
	if start.MaxRanks != 1 {
		t.Fatalf("max ranks = %d, want default 1", start.MaxRanks)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	doc := `
nodes:
  - id: start_warrior
    type: start
    max_rank: 3
entry_points: []
`
	if _, err := Load(strings.NewReader(doc)); err == nil {
		t.Fatal("expected strict decode to reject the misspelled field")
	}
}

func TestLoadRejectsInvalidGraph(t *testing.T) {
	doc := `
nodes:
  - id: w_str_1
    type: minor
    connections: [missing]
entry_points: []
`
	if _, err := LoadBytes([]byte(doc)); err == nil {
		t.Fatal("expected dangling connection to fail the build")
	}
}
