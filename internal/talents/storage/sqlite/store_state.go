package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Slatyo/Valheim-Viking/internal/talents/domain/progression"
	"github.com/Slatyo/Valheim-Viking/internal/talents/storage"
)

// SaveState upserts one player's progression snapshot.
func (s *Store) SaveState(ctx context.Context, record storage.StateRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	playerID := strings.TrimSpace(record.PlayerID)
	if playerID == "" {
		return fmt.Errorf("player id is required")
	}
	snapshotJSON, err := progression.EncodeSnapshot(record.Snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO talent_state (player_id, snapshot_json, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(player_id) DO UPDATE SET
		   snapshot_json = excluded.snapshot_json,
		   updated_at = excluded.updated_at`,
		playerID,
		string(snapshotJSON),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// LoadState returns one player's progression snapshot.
func (s *Store) LoadState(ctx context.Context, playerID string) (storage.StateRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.StateRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.StateRecord{}, fmt.Errorf("storage is not configured")
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return storage.StateRecord{}, fmt.Errorf("player id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT player_id, snapshot_json, updated_at
		 FROM talent_state
		 WHERE player_id = ?`,
		playerID,
	)
	var record storage.StateRecord
	var snapshotJSON string
	var updatedAt int64
	err := row.Scan(&record.PlayerID, &snapshotJSON, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.StateRecord{}, storage.ErrNotFound
		}
		return storage.StateRecord{}, fmt.Errorf("load state: %w", err)
	}
	snapshot, err := progression.DecodeSnapshot([]byte(snapshotJSON))
	if err != nil {
		return storage.StateRecord{}, fmt.Errorf("decode snapshot: %w", err)
	}
	record.Snapshot = snapshot
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}
