package tree

import (
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/Slatyo/Valheim-Viking/internal/platform/errors"
)

// Definition is the raw input a Catalog is built from.
type Definition struct {
	Nodes       []Node
	EntryPoints []EntryPoint
}

// Catalog is the immutable, shared definition of all nodes, edges, and entry
// points. Built once at startup and safe for concurrent reads; malformed
// definitions fail the build rather than surface at command time.
type Catalog struct {
	nodes      map[string]Node
	nodeOrder  []string
	entries    map[string]EntryPoint
	entryOrder []string
	// adjacency is the symmetrized edge set: an edge authored on either
	// endpoint appears under both.
	adjacency map[string]map[string]struct{}
}

func buildError(format string, args ...any) error {
	return apperrors.New(apperrors.CodeCatalogInvalid, fmt.Sprintf(format, args...))
}

// New validates a definition and builds the catalog.
func New(def Definition) (*Catalog, error) {
	c := &Catalog{
		nodes:     map[string]Node{},
		entries:   map[string]EntryPoint{},
		adjacency: map[string]map[string]struct{}{},
	}

	for _, node := range def.Nodes {
		id := strings.TrimSpace(node.ID)
		if id == "" {
			return nil, buildError("node id is required")
		}
		if _, exists := c.nodes[id]; exists {
			return nil, buildError("duplicate node id %s", id)
		}
		if _, ok := ParseNodeType(string(node.Type)); !ok {
			return nil, buildError("node %s has unknown type %q", id, node.Type)
		}
		if node.MaxRanks < 1 {
			return nil, buildError("node %s max ranks %d is below 1", id, node.MaxRanks)
		}
		node.ID = id
		c.nodes[id] = node
		c.nodeOrder = append(c.nodeOrder, id)
		c.adjacency[id] = map[string]struct{}{}
	}

	for _, node := range c.nodes {
		for _, neighbor := range node.Connections {
			neighbor = strings.TrimSpace(neighbor)
			if neighbor == node.ID {
				return nil, buildError("node %s connects to itself", node.ID)
			}
			if _, ok := c.nodes[neighbor]; !ok {
				return nil, buildError("node %s connects to unknown node %s", node.ID, neighbor)
			}
			c.adjacency[node.ID][neighbor] = struct{}{}
			c.adjacency[neighbor][node.ID] = struct{}{}
		}
	}

	for _, entry := range def.EntryPoints {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, buildError("entry point id is required")
		}
		if _, exists := c.entries[id]; exists {
			return nil, buildError("duplicate entry point id %s", id)
		}
		start, ok := c.nodes[entry.StartNodeID]
		if !ok {
			return nil, buildError("entry point %s references unknown start node %s", id, entry.StartNodeID)
		}
		if start.Type != NodeTypeStart {
			return nil, buildError("entry point %s start node %s is type %s, not %s", id, start.ID, start.Type, NodeTypeStart)
		}
		entry.ID = id
		c.entries[id] = entry
		c.entryOrder = append(c.entryOrder, id)
	}

	sort.Strings(c.nodeOrder)
	sort.Strings(c.entryOrder)
	return c, nil
}

// Node returns the node with the given id.
func (c *Catalog) Node(id string) (Node, bool) {
	node, ok := c.nodes[id]
	return node, ok
}

// Nodes returns all nodes in stable id order.
func (c *Catalog) Nodes() []Node {
	out := make([]Node, 0, len(c.nodeOrder))
	for _, id := range c.nodeOrder {
		out = append(out, c.nodes[id])
	}
	return out
}

// NodesOfType returns all nodes of the given type in stable id order.
func (c *Catalog) NodesOfType(t NodeType) []Node {
	var out []Node
	for _, id := range c.nodeOrder {
		if node := c.nodes[id]; node.Type == t {
			out = append(out, node)
		}
	}
	return out
}

// EntryPoint returns the entry point with the given id.
func (c *Catalog) EntryPoint(id string) (EntryPoint, bool) {
	entry, ok := c.entries[id]
	return entry, ok
}

// EntryPoints returns all entry points in stable id order.
func (c *Catalog) EntryPoints() []EntryPoint {
	out := make([]EntryPoint, 0, len(c.entryOrder))
	for _, id := range c.entryOrder {
		out = append(out, c.entries[id])
	}
	return out
}

// Connected reports whether an edge exists between a and b in either
// authored direction.
func (c *Catalog) Connected(a, b string) bool {
	if neighbors, ok := c.adjacency[a]; ok {
		if _, ok := neighbors[b]; ok {
			return true
		}
	}
	if neighbors, ok := c.adjacency[b]; ok {
		if _, ok := neighbors[a]; ok {
			return true
		}
	}
	return false
}

// Neighbors returns the ids adjacent to the given node in stable order.
func (c *Catalog) Neighbors(id string) []string {
	neighbors, ok := c.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(neighbors))
	for neighbor := range neighbors {
		out = append(out, neighbor)
	}
	sort.Strings(out)
	return out
}
