package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CurrentIdentity returns the remembered username, or "" when no session
// was remembered.
func (db *DB) CurrentIdentity(ctx context.Context) (string, error) {
	var username string
	err := db.QueryRowContext(ctx, `SELECT username FROM session WHERE id = 1`).Scan(&username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get current identity: %w", err)
	}
	return username, nil
}

func (db *DB) SetCurrentIdentity(ctx context.Context, username string) error {
	query := `INSERT INTO session (id, username) VALUES (1, ?)
              ON CONFLICT(id) DO UPDATE SET username = excluded.username`
	if _, err := db.ExecContext(ctx, query, username); err != nil {
		return fmt.Errorf("failed to set current identity: %w", err)
	}
	return nil
}

func (db *DB) ClearCurrentIdentity(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear current identity: %w", err)
	}
	return nil
}
