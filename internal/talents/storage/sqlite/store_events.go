package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/event"
)

// AppendEvent appends an event to a player's journal, assigning the next
// per-player sequence number inside a single transaction.
func (s *Store) AppendEvent(ctx context.Context, evt event.Event) (event.Event, error) {
	if err := ctx.Err(); err != nil {
		return event.Event{}, err
	}
	if s == nil || s.sqlDB == nil {
		return event.Event{}, fmt.Errorf("storage is not configured")
	}
	playerID := strings.TrimSpace(evt.PlayerID)
	if playerID == "" {
		return event.Event{}, fmt.Errorf("player id is required")
	}
	if !evt.Type.IsValid() {
		return event.Event{}, fmt.Errorf("event type %q is not valid", evt.Type)
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return event.Event{}, fmt.Errorf("begin append transaction: %w", err)
	}

	var seq uint64
	row := tx.QueryRowContext(
		ctx,
		`SELECT next_seq FROM talent_event_seq WHERE player_id = ?`,
		playerID,
	)
	if err := row.Scan(&seq); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			_ = tx.Rollback()
			return event.Event{}, fmt.Errorf("read event sequence: %w", err)
		}
		seq = 1
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO talent_event_seq (player_id, next_seq)
		 VALUES (?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET next_seq = excluded.next_seq`,
		playerID,
		seq+1,
	); err != nil {
		_ = tx.Rollback()
		return event.Event{}, fmt.Errorf("advance event sequence: %w", err)
	}

	payloadJSON := evt.PayloadJSON
	if len(payloadJSON) == 0 {
		payloadJSON = []byte("{}")
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO talent_events (player_id, seq, event_type, request_id, created_at, payload_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		playerID,
		seq,
		string(evt.Type),
		evt.RequestID,
		toMillis(evt.Timestamp),
		string(payloadJSON),
	); err != nil {
		_ = tx.Rollback()
		return event.Event{}, fmt.Errorf("append event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return event.Event{}, fmt.Errorf("commit append transaction: %w", err)
	}

	evt.PlayerID = playerID
	evt.Seq = seq
	evt.PayloadJSON = payloadJSON
	return evt, nil
}

// ListEvents returns a player's events with Seq greater than afterSeq,
// oldest first. A non-positive limit returns all remaining events.
func (s *Store) ListEvents(ctx context.Context, playerID string, afterSeq uint64, limit int) ([]event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("player id is required")
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT player_id, seq, event_type, request_id, created_at, payload_json
		 FROM talent_events
		 WHERE player_id = ? AND seq > ?
		 ORDER BY seq ASC
		 LIMIT ?`,
		playerID,
		afterSeq,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var (
			evt         event.Event
			eventType   string
			createdAt   int64
			payloadJSON string
		)
		if err := rows.Scan(
			&evt.PlayerID,
			&evt.Seq,
			&eventType,
			&evt.RequestID,
			&createdAt,
			&payloadJSON,
		); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		evt.Type = event.Type(eventType)
		evt.Timestamp = fromMillis(createdAt)
		evt.PayloadJSON = []byte(payloadJSON)
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
