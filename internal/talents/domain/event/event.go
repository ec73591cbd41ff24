package event

import (
	"strings"
	"time"
)

// Type identifies the type of a progression event.
type Type string

// Progression events. Events represent facts that have occurred, not
// commands/requests.
const (
	// TypeEntryChosen records a player binding to an entry point.
	TypeEntryChosen Type = "talents.entry_chosen"
	// TypeNodeAllocated records one point spent on a node.
	TypeNodeAllocated Type = "talents.node_allocated"
	// TypeNodeDeallocated records the undo of the most recent allocation.
	TypeNodeDeallocated Type = "talents.node_deallocated"
	// TypeReset records a full reset back to the unchosen state.
	TypeReset Type = "talents.reset"
	// TypeSlotSet records an ability-slot write or clear. Journal-only:
	// downstream effect application keys off the four events above.
	TypeSlotSet Type = "talents.slot_set"
)

// Event represents an immutable fact in a player's progression journal.
type Event struct {
	// PlayerID is the player this event belongs to.
	PlayerID string
	// Seq is the event sequence number within the player's journal
	// (starts at 1). Assigned by storage on append.
	Seq uint64
	// Type identifies the kind of event.
	Type Type
	// Timestamp is when the event occurred.
	Timestamp time.Time
	// RequestID correlates the event with the command that produced it.
	RequestID string
	// PayloadJSON holds event-specific data as JSON.
	PayloadJSON []byte
}

// IsValid reports whether the event type is usable.
func (t Type) IsValid() bool {
	return strings.TrimSpace(string(t)) != ""
}
