package model

import "time"

// Transaction is a ledger entry owned by a user. The auth flows only read the
// per-user count.
type Transaction struct {
	ID          int64
	UserID      int64
	AmountCents int64
	Description string
	CreatedAt   time.Time
}
