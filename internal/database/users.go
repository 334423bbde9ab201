package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"darshan/internal/models"

	"github.com/mattn/go-sqlite3"
)

// PutUser inserts a new account record. Usernames are unique; inserting an
// existing one fails with ErrDuplicateUser and leaves the table unchanged.
func (db *DB) PutUser(ctx context.Context, username, credential string) error {
	query := `INSERT INTO users (username, credential, created_at) VALUES (?, ?, ?)`
	_, err := db.ExecContext(ctx, query, username, credential, time.Now())
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to put user: %w", err)
	}
	return nil
}

// GetUsers returns the full username -> credential table.
func (db *DB) GetUsers(ctx context.Context) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT username, credential FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	users := make(map[string]string)
	for rows.Next() {
		var username, credential string
		if err := rows.Scan(&username, &credential); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users[username] = credential
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (db *DB) GetUser(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT username, credential, created_at FROM users WHERE username = ?`

	var user models.User
	err := db.QueryRowContext(ctx, query, username).Scan(
		&user.Username, &user.Credential, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
