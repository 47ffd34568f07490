package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ericfisherdev/invitegate/internal/domain/model"
	"github.com/ericfisherdev/invitegate/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.TransactionStore = (*TransactionRepo)(nil)

// sqliteTimeFormat matches the text produced by CURRENT_TIMESTAMP.
const sqliteTimeFormat = "2006-01-02 15:04:05"

// TransactionRepo is the SQLite implementation of the TransactionStore port interface.
type TransactionRepo struct {
	db *DB
}

// NewTransactionRepo creates a new TransactionRepo backed by the given DB.
func NewTransactionRepo(db *DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// Add inserts a transaction for an existing user. A zero CreatedAt is
// replaced with the current time.
func (r *TransactionRepo) Add(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	const query = `INSERT INTO transactions (user_id, amount_cents, description, created_at) VALUES (?, ?, ?, ?) RETURNING id`

	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	err := r.db.Writer.QueryRowContext(ctx, query,
		tx.UserID, tx.AmountCents, tx.Description, tx.CreatedAt.UTC().Format(sqliteTimeFormat),
	).Scan(&tx.ID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("add transaction for user %d: %w", tx.UserID, err)
	}

	return tx, nil
}

// CountByUser returns the number of transactions owned by userID. Unknown
// users have zero transactions.
func (r *TransactionRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM transactions WHERE user_id = ?`

	var count int
	if err := r.db.Reader.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count transactions for user %d: %w", userID, err)
	}

	return count, nil
}
