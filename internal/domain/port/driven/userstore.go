package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/invitegate/internal/domain/model"
)

// ErrUsernameTaken is returned by UserStore.Create when the storage layer
// rejects the insert on its username uniqueness constraint.
var ErrUsernameTaken = errors.New("username already taken")

// UserStore defines the driven port for credential persistence.
type UserStore interface {
	// GetByUsername performs an exact-match lookup with no case folding.
	// Returns (nil, nil) if no user has that username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// GetByID returns (nil, nil) if the user does not exist.
	GetByID(ctx context.Context, id int64) (*model.User, error)

	// Create inserts a new user and returns it with ID and CreatedAt populated.
	// Returns ErrUsernameTaken on a uniqueness violation.
	Create(ctx context.Context, username, passwordHash string) (model.User, error)
}
