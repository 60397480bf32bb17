package repository

import (
	"context"
	"database/sql"
	"errors"

	"mywallet/internal/models"
)

var (
	// ErrNotFound indicates an entity was not located.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicateEmail is returned when the users.email UNIQUE constraint rejects an insert.
	ErrDuplicateEmail = errors.New("repository: email already registered")
)

type Authorization interface {
	Create(ctx context.Context, name, email, hash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// SessionRepo persists token -> user mappings. Tokens never expire.
type SessionRepo interface {
	Create(ctx context.Context, userID int, token string) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
}

type RecordRepo interface {
	Append(ctx context.Context, r models.Record) error
	ListByUser(ctx context.Context, userID int) ([]models.Record, error)
}

type Repository struct {
	Auth     Authorization
	Sessions SessionRepo
	Records  RecordRepo
}

// NewRepository builds the sqlite-backed repositories. A non-nil sessions
// store replaces the sqlite session table (e.g. SessionRedis).
func NewRepository(db *sql.DB, sessions SessionRepo) *Repository {
	if sessions == nil {
		sessions = NewSessionSQLite(db)
	}
	return &Repository{
		Auth:     NewUserRepository(db),
		Sessions: sessions,
		Records:  NewRecordSQLite(db),
	}
}
