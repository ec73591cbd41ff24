package command

// Type identifies the type of a progression command.
type Type string

// Progression commands. Four mutating shapes plus the independent
// ability-slot assignment.
const (
	// TypeChooseEntryPoint binds a player to an entry point and its start node.
	TypeChooseEntryPoint Type = "talents.choose_entry_point"
	// TypeAllocateNode spends one point on a node.
	TypeAllocateNode Type = "talents.allocate_node"
	// TypeBacktrack undoes the most recent allocation.
	TypeBacktrack Type = "talents.backtrack"
	// TypeFullReset clears the build and forces entry-point re-selection.
	TypeFullReset Type = "talents.full_reset"
	// TypeSetAbilitySlot writes or clears an ability-slot assignment.
	TypeSetAbilitySlot Type = "talents.set_ability_slot"
)

// Command is the envelope non-authoritative callers submit to the authority.
// Business rules are evaluated only by the authority against its own state,
// never against any caller-side precheck.
type Command struct {
	// PlayerID addresses the progression state this command mutates.
	PlayerID string
	// Type identifies the kind of command.
	Type Type
	// RequestID correlates the command with its resulting events and logs.
	RequestID string
	// PayloadJSON holds command-specific data as JSON.
	PayloadJSON []byte
}
