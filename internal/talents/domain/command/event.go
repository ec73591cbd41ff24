package command

import (
	"time"

	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/event"
)

// NewEvent builds an event.Event by copying the shared envelope fields from a
// command. Callers supply the event-specific type, payload, and timestamp so
// deciders never assemble envelopes by hand.
func NewEvent(cmd Command, eventType event.Type, payloadJSON []byte, now time.Time) event.Event {
	return event.Event{
		PlayerID:    cmd.PlayerID,
		Type:        eventType,
		Timestamp:   now,
		RequestID:   cmd.RequestID,
		PayloadJSON: payloadJSON,
	}
}
