package command

import (
	"fmt"
	"strings"
)

// Definition describes a registered command type.
type Definition struct {
	// Type is the command type this definition covers.
	Type Type
	// Mutating reports whether the command changes progression topology.
	// SetAbilitySlot is independent of the allocation graph.
	Mutating bool
}

// Registry holds the known command definitions so the authority can reject
// unknown shapes before touching state.
type Registry struct {
	definitions map[Type]Definition
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{definitions: map[Type]Definition{}}
}

// Register adds a definition, rejecting blank or duplicate types.
func (r *Registry) Register(def Definition) error {
	if strings.TrimSpace(string(def.Type)) == "" {
		return fmt.Errorf("command type is required")
	}
	if _, exists := r.definitions[def.Type]; exists {
		return fmt.Errorf("command type %s is already registered", def.Type)
	}
	r.definitions[def.Type] = def
	return nil
}

// Known reports whether the command type has been registered.
func (r *Registry) Known(t Type) bool {
	_, ok := r.definitions[t]
	return ok
}

// Default returns a registry populated with the progression command set.
func Default() *Registry {
	r := NewRegistry()
	for _, def := range []Definition{
		{Type: TypeChooseEntryPoint, Mutating: true},
		{Type: TypeAllocateNode, Mutating: true},
		{Type: TypeBacktrack, Mutating: true},
		{Type: TypeFullReset, Mutating: true},
		{Type: TypeSetAbilitySlot},
	} {
		if err := r.Register(def); err != nil {
			panic(fmt.Sprintf("register default command %s: %v", def.Type, err))
		}
	}
	return r
}
