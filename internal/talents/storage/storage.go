// Package storage declares the persistence contracts the authority depends
// on: a keyed snapshot store for per-player progression and an append-only
// event journal.
package storage

import (
	"context"
	"time"

	apperrors "github.com/Slatyo/Valheim-Viking/internal/platform/errors"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/event"
	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/progression"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to differentiate the legitimate "player has no record
// yet" state from transport or data corruption failures.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// StateRecord is the persisted progression snapshot for one player.
type StateRecord struct {
	PlayerID  string
	Snapshot  progression.Snapshot
	UpdatedAt time.Time
}

// StateStore persists per-player progression snapshots keyed by player id,
// decoupled from any notion of "currently connected".
type StateStore interface {
	// LoadState returns the stored record or ErrNotFound.
	LoadState(ctx context.Context, playerID string) (StateRecord, error)
	// SaveState upserts the record for its player id.
	SaveState(ctx context.Context, record StateRecord) error
}

// EventJournal appends progression events and reads them back in order.
type EventJournal interface {
	// AppendEvent atomically appends an event and returns it with its
	// per-player sequence number assigned.
	AppendEvent(ctx context.Context, evt event.Event) (event.Event, error)
	// ListEvents returns a player's events with Seq greater than afterSeq,
	// oldest first. A non-positive limit means no limit.
	ListEvents(ctx context.Context, playerID string, afterSeq uint64, limit int) ([]event.Event, error)
}

// Store bundles the persistence surfaces the authority needs.
type Store interface {
	StateStore
	EventJournal
}
