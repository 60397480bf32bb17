package repository

import (
	"context"
	"database/sql"
	"fmt"

	"mywallet/internal/models"

	"github.com/google/uuid"
)

type RecordSQLite struct {
	db *sql.DB
}

func NewRecordSQLite(db *sql.DB) *RecordSQLite { return &RecordSQLite{db: db} }

var _ RecordRepo = (*RecordSQLite)(nil)

const (
	insertRecordSQL = `
		INSERT INTO records (id, user_id, owner_name, amount, description, date)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectRecordsByUserSQL = `SELECT id, user_id, owner_name, amount, description, date FROM records WHERE user_id = ? ORDER BY rowid ASC`
)

// Append inserts a new record. If ID is empty, one is generated.
func (r *RecordSQLite) Append(ctx context.Context, rec models.Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	_, err := r.db.ExecContext(ctx, insertRecordSQL,
		rec.ID,
		rec.UserID,
		rec.OwnerName,
		rec.Amount,
		rec.Description,
		rec.Date,
	)
	if err != nil {
		return fmt.Errorf("insert record for user %d: %w", rec.UserID, err)
	}
	return nil
}

// ListByUser returns the user's records in insertion order.
func (r *RecordSQLite) ListByUser(ctx context.Context, userID int) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx, selectRecordsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select records for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Record, 0, 16)
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.OwnerName, &rec.Amount, &rec.Description, &rec.Date); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
