package progression

// Command payloads.

// ChooseEntryPointPayload selects the player's archetype.
type ChooseEntryPointPayload struct {
	EntryPointID string `json:"entry_point_id"`
}

// AllocateNodePayload spends one point on a node.
type AllocateNodePayload struct {
	NodeID string `json:"node_id"`
}

// SetAbilitySlotPayload writes or clears one action-bar slot. An empty
// ability id clears the slot.
type SetAbilitySlotPayload struct {
	Slot      int    `json:"slot"`
	AbilityID string `json:"ability_id"`
}

// Event payloads.

// EntryChosenPayload records the entry binding.
type EntryChosenPayload struct {
	EntryPointID string `json:"entry_point_id"`
	StartNodeID  string `json:"start_node_id"`
}

// NodeAllocatedPayload records one point spent.
type NodeAllocatedPayload struct {
	NodeID  string `json:"node_id"`
	NewRank int    `json:"new_rank"`
}

// NodeDeallocatedPayload records one point refunded from the history tail.
type NodeDeallocatedPayload struct {
	NodeID  string `json:"node_id"`
	NewRank int    `json:"new_rank"`
}

// ResetPayload records a full reset.
type ResetPayload struct {
	EntryPointID   string `json:"entry_point_id"`
	RefundedPoints int    `json:"refunded_points"`
}

// SlotSetPayload records an ability-slot write or clear.
type SlotSetPayload struct {
	Slot      int    `json:"slot"`
	AbilityID string `json:"ability_id"`
}
