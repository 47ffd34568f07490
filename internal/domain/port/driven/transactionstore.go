package driven

import (
	"context"

	"github.com/ericfisherdev/invitegate/internal/domain/model"
)

// TransactionStore defines the driven port for transaction persistence.
type TransactionStore interface {
	Add(ctx context.Context, tx model.Transaction) (model.Transaction, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}
