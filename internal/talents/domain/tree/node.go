package tree

import "strings"

// NodeType classifies a talent node.
type NodeType string

const (
	// NodeTypeStart is an entry-point anchor; never allocated directly.
	NodeTypeStart NodeType = "start"
	// NodeTypeMinor is a small repeatable stat node.
	NodeTypeMinor NodeType = "minor"
	// NodeTypeNotable is a larger single-purpose node.
	NodeTypeNotable NodeType = "notable"
	// NodeTypeKeystone is a build-defining node.
	NodeTypeKeystone NodeType = "keystone"
)

// ParseNodeType normalizes a node-type label.
func ParseNodeType(label string) (NodeType, bool) {
	switch NodeType(strings.ToLower(strings.TrimSpace(label))) {
	case NodeTypeStart:
		return NodeTypeStart, true
	case NodeTypeMinor:
		return NodeTypeMinor, true
	case NodeTypeNotable:
		return NodeTypeNotable, true
	case NodeTypeKeystone:
		return NodeTypeKeystone, true
	}
	return "", false
}

// Modifier is one stat or effect granted per rank of a node.
type Modifier struct {
	// Stat names the affected attribute (e.g. "strength", "frost_resist").
	Stat string
	// Effect is how the value applies (e.g. "flat", "percent").
	Effect string
	// Value is the per-rank magnitude.
	Value float64
}

// Node is a single allocatable unit in the talent graph. Immutable after
// catalog build; shared by all players.
type Node struct {
	// ID is the unique node identifier.
	ID string
	// Type classifies the node.
	Type NodeType
	// MaxRanks caps how many times the node can be allocated (>= 1).
	MaxRanks int
	// Connections lists neighbor node ids as authored. Edges are
	// conceptually undirected; the catalog mirrors them at build time.
	Connections []string
	// Modifiers are the per-rank stat grants.
	Modifiers []Modifier
	// GrantsAbilityID names the active ability unlocked by this node,
	// empty for passive-only nodes.
	GrantsAbilityID string
}

// EntryPoint is a named character archetype bound to one Start node.
type EntryPoint struct {
	// ID is the unique entry-point identifier.
	ID string
	// StartNodeID references the bound Start-type node.
	StartNodeID string
}
