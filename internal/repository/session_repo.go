package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mywallet/internal/models"
)

type SessionSQLite struct {
	db *sql.DB
}

func NewSessionSQLite(db *sql.DB) *SessionSQLite { return &SessionSQLite{db: db} }

var _ SessionRepo = (*SessionSQLite)(nil)

const (
	insertSessionSQL        = `INSERT INTO sessions (user_id, token) VALUES (?, ?)`
	selectSessionByTokenSQL = `SELECT id, user_id, token FROM sessions WHERE token = ?`
)

// Create stores a new session. A user may hold any number of sessions.
func (r *SessionSQLite) Create(ctx context.Context, userID int, token string) error {
	if _, err := r.db.ExecContext(ctx, insertSessionSQL, userID, token); err != nil {
		return fmt.Errorf("insert session for user %d: %w", userID, err)
	}
	return nil
}

// GetByToken returns the session with exactly this token, or ErrNotFound.
func (r *SessionSQLite) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRowContext(ctx, selectSessionByTokenSQL, token).Scan(&s.ID, &s.UserID, &s.Token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	return &s, nil
}
