package progression

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	apperrors "github.com/Slatyo/Valheim-Viking/internal/platform/errors"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/command"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/event"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/tree"
)

// Decide returns the decision for a progression command against current
// state. It is pure: all preconditions are checked here, every accepted
// command emits the events that make the mutation replayable, and a failing
// precondition rejects the whole command with no partial effect.
//
// available is the spendable point balance the authority derived from the
// leveling oracle; the decider never computes levels itself.
func Decide(cat *tree.Catalog, s State, cmd command.Command, available int, now func() time.Time) command.Decision {
	if now == nil {
		now = time.Now
	}

	switch cmd.Type {
	case command.TypeChooseEntryPoint:
		var payload ChooseEntryPointPayload
		if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
			return rejectDecode(cmd, err)
		}
		if s.HasEntryPoint() {
			return command.Reject(command.Rejection{
				Code:    string(apperrors.CodeEntryPointAlreadyChosen),
				Message: fmt.Sprintf("entry point %s is already chosen", s.EntryPointID),
			})
		}
		entry, ok := cat.EntryPoint(payload.EntryPointID)
		if !ok {
			return command.Reject(command.Rejection{
				Code:     string(apperrors.CodeInvalidEntryPoint),
				Message:  fmt.Sprintf("entry point %q not found", payload.EntryPointID),
				Metadata: map[string]string{"EntryPointID": payload.EntryPointID},
			})
		}

		when := now().UTC()
		chosenJSON, _ := json.Marshal(EntryChosenPayload{
			EntryPointID: entry.ID,
			StartNodeID:  entry.StartNodeID,
		})
		allocatedJSON, _ := json.Marshal(NodeAllocatedPayload{
			NodeID:  entry.StartNodeID,
			NewRank: 1,
		})
		return command.Accept(
			command.NewEvent(cmd, event.TypeEntryChosen, chosenJSON, when),
			command.NewEvent(cmd, event.TypeNodeAllocated, allocatedJSON, when),
		)

	case command.TypeAllocateNode:
		var payload AllocateNodePayload
		if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
			return rejectDecode(cmd, err)
		}
		if err := CanAllocate(cat, s, payload.NodeID, available); err != nil {
			return rejectError(err)
		}
		allocatedJSON, _ := json.Marshal(NodeAllocatedPayload{
			NodeID:  payload.NodeID,
			NewRank: s.Rank(payload.NodeID) + 1,
		})
		return command.Accept(command.NewEvent(cmd, event.TypeNodeAllocated, allocatedJSON, now().UTC()))

	case command.TypeBacktrack:
		if len(s.History) == 0 {
			return command.Reject(command.Rejection{
				Code:    string(apperrors.CodeNoHistoryToUndo),
				Message: "allocation history is empty",
			})
		}
		tail := s.History[len(s.History)-1]
		if node, ok := cat.Node(tail); ok && node.Type == tree.NodeTypeStart {
			return command.Reject(command.Rejection{
				Code:     string(apperrors.CodeNodeIsStartType),
				Message:  fmt.Sprintf("node %s is a start node", tail),
				Metadata: map[string]string{"NodeID": tail},
			})
		}
		if err := CanDeallocate(cat, s, tail); err != nil {
			return rejectError(err)
		}
		deallocatedJSON, _ := json.Marshal(NodeDeallocatedPayload{
			NodeID:  tail,
			NewRank: s.Rank(tail) - 1,
		})
		return command.Accept(command.NewEvent(cmd, event.TypeNodeDeallocated, deallocatedJSON, now().UTC()))

	case command.TypeFullReset:
		if !s.HasEntryPoint() {
			return command.Reject(command.Rejection{
				Code:    string(apperrors.CodeEntryPointNotChosen),
				Message: "no entry point chosen",
			})
		}
		resetJSON, _ := json.Marshal(ResetPayload{
			EntryPointID:   s.EntryPointID,
			RefundedPoints: s.SpentPoints(),
		})
		return command.Accept(command.NewEvent(cmd, event.TypeReset, resetJSON, now().UTC()))

	case command.TypeSetAbilitySlot:
		var payload SetAbilitySlotPayload
		if err := json.Unmarshal(cmd.PayloadJSON, &payload); err != nil {
			return rejectDecode(cmd, err)
		}
		if payload.Slot < 0 || payload.Slot >= SlotCount {
			return command.Reject(command.Rejection{
				Code:     string(apperrors.CodeInvalidSlotIndex),
				Message:  fmt.Sprintf("slot %d is outside [0,%d)", payload.Slot, SlotCount),
				Metadata: map[string]string{"Slot": strconv.Itoa(payload.Slot)},
			})
		}
		if payload.AbilityID != "" && !s.AbilityUnlocked(cat, payload.AbilityID) {
			return command.Reject(command.Rejection{
				Code:     string(apperrors.CodeAbilityNotUnlocked),
				Message:  fmt.Sprintf("ability %s is not granted by any allocated node", payload.AbilityID),
				Metadata: map[string]string{"AbilityID": payload.AbilityID},
			})
		}
		slotJSON, _ := json.Marshal(SlotSetPayload{
			Slot:      payload.Slot,
			AbilityID: payload.AbilityID,
		})
		return command.Accept(command.NewEvent(cmd, event.TypeSlotSet, slotJSON, now().UTC()))
	}

	return command.Reject(command.Rejection{
		Code:    string(apperrors.CodeUnknown),
		Message: fmt.Sprintf("unknown command type %q", cmd.Type),
	})
}

func rejectDecode(cmd command.Command, err error) command.Decision {
	return command.Reject(command.Rejection{
		Code:    string(apperrors.CodePayloadDecodeFailed),
		Message: fmt.Sprintf("decode %s payload: %v", cmd.Type, err),
	})
}

func rejectError(err error) command.Decision {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return command.Reject(command.Rejection{
			Code:     string(domainErr.Code),
			Message:  domainErr.Message,
			Metadata: domainErr.Metadata,
		})
	}
	return command.Reject(command.Rejection{
		Code:    string(apperrors.CodeUnknown),
		Message: err.Error(),
	})
}
