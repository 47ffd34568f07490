package application

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/ericfisherdev/invitegate/internal/domain/model"
	"github.com/ericfisherdev/invitegate/internal/domain/port/driven"
)

// Home is the session-gated view of the caller's account.
type Home struct {
	User  model.User
	Stats model.AccountStats
}

// AccountService resolves a validated token subject to the caller's account
// and aggregates their statistics.
type AccountService struct {
	users        driven.UserStore
	transactions driven.TransactionStore
	logger       *slog.Logger
}

// NewAccountService creates a new AccountService with the required dependencies.
func NewAccountService(users driven.UserStore, transactions driven.TransactionStore, logger *slog.Logger) *AccountService {
	return &AccountService{
		users:        users,
		transactions: transactions,
		logger:       logger,
	}
}

// Home loads the account named by subject. A subject whose user row no longer
// exists yields ErrUserNotFound.
func (s *AccountService) Home(ctx context.Context, subject string) (*Home, error) {
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		s.logger.Error("token subject is not a user id", "subject", subject, "error", err)
		return nil, ErrLoadFailed
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("home user lookup failed", "user_id", userID, "error", err)
		return nil, ErrLoadFailed
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	count, err := s.transactions.CountByUser(ctx, user.ID)
	if err != nil {
		s.logger.Error("transaction count failed", "user_id", user.ID, "error", err)
		return nil, ErrLoadFailed
	}

	return &Home{
		User:  *user,
		Stats: model.AccountStats{TotalTransactions: count},
	}, nil
}
