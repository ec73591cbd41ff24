package channel

import (
	"encoding/json"
	"fmt"

	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/command"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/progression"
)

func build(playerID string, commandType command.Type, payload any) (command.Command, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return command.Command{}, fmt.Errorf("marshal %s payload: %w", commandType, err)
	}
	return command.Command{
		PlayerID:    playerID,
		Type:        commandType,
		PayloadJSON: payloadJSON,
	}, nil
}

// NewChooseEntryPoint builds a command selecting a player's entry point.
func NewChooseEntryPoint(playerID, entryPointID string) (command.Command, error) {
	return build(playerID, command.TypeChooseEntryPoint, progression.ChooseEntryPointPayload{
		EntryPointID: entryPointID,
	})
}

// NewAllocateNode builds a command spending one point on a node.
func NewAllocateNode(playerID, nodeID string) (command.Command, error) {
	return build(playerID, command.TypeAllocateNode, progression.AllocateNodePayload{
		NodeID: nodeID,
	})
}

// NewBacktrack builds a command undoing the most recent allocation.
func NewBacktrack(playerID string) (command.Command, error) {
	return build(playerID, command.TypeBacktrack, struct{}{})
}

// NewFullReset builds a command refunding every allocated point.
func NewFullReset(playerID string) (command.Command, error) {
	return build(playerID, command.TypeFullReset, struct{}{})
}

// NewSetAbilitySlot builds a command assigning an ability to an action bar
// slot. An empty ability id clears the slot.
func NewSetAbilitySlot(playerID string, slot int, abilityID string) (command.Command, error) {
	return build(playerID, command.TypeSetAbilitySlot, progression.SetAbilitySlotPayload{
		Slot:      slot,
		AbilityID: abilityID,
	})
}
