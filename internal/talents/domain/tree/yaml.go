package tree

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlTree mirrors the hand-authored tree document layout.
type yamlTree struct {
	Nodes       []yamlNode  `yaml:"nodes"`
	EntryPoints []yamlEntry `yaml:"entry_points"`
}

type yamlNode struct {
	ID            string         `yaml:"id"`
	Type          string         `yaml:"type"`
	MaxRanks      int            `yaml:"max_ranks"`
	Connections   []string       `yaml:"connections"`
	Modifiers     []yamlModifier `yaml:"modifiers"`
	GrantsAbility string         `yaml:"grants_ability"`
}

type yamlModifier struct {
	Stat   string  `yaml:"stat"`
	Effect string  `yaml:"effect"`
	Value  float64 `yaml:"value"`
}

type yamlEntry struct {
	ID        string `yaml:"id"`
	StartNode string `yaml:"start_node"`
}

// Load parses a YAML tree document and builds a validated catalog.
// Unknown fields are rejected so typos in hand-authored content fail loudly.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlTree
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode tree document: %w", err)
	}

	def := Definition{}
	for _, n := range doc.Nodes {
		nodeType, ok := ParseNodeType(n.Type)
		if !ok {
			return nil, buildError("node %s has unknown type %q", n.ID, n.Type)
		}
		maxRanks := n.MaxRanks
		if maxRanks == 0 {
			maxRanks = 1
		}
		node := Node{
			ID:              n.ID,
			Type:            nodeType,
			MaxRanks:        maxRanks,
			Connections:     n.Connections,
			GrantsAbilityID: n.GrantsAbility,
		}
		for _, m := range n.Modifiers {
			node.Modifiers = append(node.Modifiers, Modifier{
				Stat:   m.Stat,
				Effect: m.Effect,
				Value:  m.Value,
			})
		}
		def.Nodes = append(def.Nodes, node)
	}
	for _, e := range doc.EntryPoints {
		def.EntryPoints = append(def.EntryPoints, EntryPoint{
			ID:          e.ID,
			StartNodeID: e.StartNode,
		})
	}

	return New(def)
}

// LoadBytes builds a catalog from an in-memory YAML document.
func LoadBytes(data []byte) (*Catalog, error) {
	return Load(bytes.NewReader(data))
}
