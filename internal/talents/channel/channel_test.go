package channel

import (
	"context"
	"encoding/json"
	"testing"

	apperrors "github.com/Slatyo/Valheim-Viking/internal/platform/errors"
	"github.com/Slatyo/Valheim-Viking/internal/talents/authority"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/command"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/progression"
)

func TestBuildersProducePayloads(t *testing.T) {
	cmd, err := NewChooseEntryPoint("p1", "warrior")
	if err != nil {
		t.Fatalf("NewChooseEntryPoint: %v", err)
	}
	if cmd.Type != command.TypeChooseEntryPoint {
		t.Fatalf("cmd.Type = %q, want %q", cmd.Type, command.TypeChooseEntryPoint)
	}
	var choose progression.ChooseEntryPointPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &choose); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if choose.EntryPointID != "warrior" {
		t.Fatalf("EntryPointID = %q, want %q", choose.EntryPointID, "warrior")
	}

	cmd, err = NewSetAbilitySlot("p1", 3, "ability_war_cry")
	if err != nil {
		t.Fatalf("NewSetAbilitySlot: %v", err)
	}
	var slot progression.SetAbilitySlotPayload
	if err := json.Unmarshal(cmd.PayloadJSON, &slot); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if slot.Slot != 3 || slot.AbilityID != "ability_war_cry" {
		t.Fatalf("slot payload = %+v, want slot 3 ability_war_cry", slot)
	}

	for _, builder := range []func(string) (command.Command, error){NewBacktrack, NewFullReset} {
		cmd, err := builder("p1")
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if cmd.PlayerID != "p1" {
			t.Fatalf("cmd.PlayerID = %q, want %q", cmd.PlayerID, "p1")
		}
		if len(cmd.PayloadJSON) == 0 {
			t.Fatal("cmd.PayloadJSON is empty")
		}
	}
}

func TestForwarderStampsRequestID(t *testing.T) {
	var got command.Command
	forwarder := Forwarder{Send: func(ctx context.Context, cmd command.Command) (authority.Result, error) {
		got = cmd
		return authority.Result{}, nil
	}}

	cmd, err := NewAllocateNode("p1", "w_str_1")
	if err != nil {
		t.Fatalf("NewAllocateNode: %v", err)
	}
	if _, err := forwarder.Submit(context.Background(), cmd); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.RequestID == "" {
		t.Fatal("forwarded command has no request id")
	}

	cmd.RequestID = "req-42"
	if _, err := forwarder.Submit(context.Background(), cmd); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got.RequestID != "req-42" {
		t.Fatalf("forwarded RequestID = %q, want %q", got.RequestID, "req-42")
	}
}

func TestForwarderWithoutTransport(t *testing.T) {
	forwarder := Forwarder{}
	_, err := forwarder.Submit(context.Background(), command.Command{PlayerID: "p1", Type: command.TypeBacktrack})
	if apperrors.CodeOf(err) != apperrors.CodeNotAuthorized {
		t.Fatalf("err code = %q, want %q", apperrors.CodeOf(err), apperrors.CodeNotAuthorized)
	}
}

func TestLocalWithoutAuthority(t *testing.T) {
	local := Local{}
	_, err := local.Submit(context.Background(), command.Command{PlayerID: "p1", Type: command.TypeBacktrack})
	if err == nil {
		t.Fatal("submit without authority succeeded, want error")
	}
}
