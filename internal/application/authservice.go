package application

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/ericfisherdev/invitegate/internal/domain/model"
	"github.com/ericfisherdev/invitegate/internal/domain/port/driven"
)

// RegisterInput is the registration request as received from the client.
type RegisterInput struct {
	Username   string
	Password   string
	InviteCode string
}

// LoginResult carries the issued bearer token and the authenticated user.
type LoginResult struct {
	AccessToken string
	User        model.User
}

// AuthService implements registration and login. It depends only on port
// interfaces and the invite code it is constructed with.
type AuthService struct {
	users      driven.UserStore
	hasher     driven.PasswordHasher
	tokens     driven.TokenIssuer
	inviteCode string
	logger     *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// dummyPassword is hashed once to give unknown-user logins a real digest to
// verify against, so they cost the same as a wrong password.
const dummyPassword = "invitegate-unknown-user"

// NewAuthService creates a new AuthService with the required dependencies.
func NewAuthService(
	users driven.UserStore,
	hasher driven.PasswordHasher,
	tokens driven.TokenIssuer,
	inviteCode string,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		hasher:     hasher,
		tokens:     tokens,
		inviteCode: inviteCode,
		logger:     logger,
	}
}

// Register creates a new account. The invite code is checked before anything
// else, so a wrong code fails with ErrInvalidInvite whatever the other fields hold.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	if !s.inviteMatches(in.InviteCode) {
		return ErrInvalidInvite
	}

	if in.Username == "" || in.Password == "" {
		return ErrBadInput
	}

	existing, err := s.users.GetByUsername(ctx, in.Username)
	if err != nil {
		s.logger.Error("registration lookup failed", "username", in.Username, "error", err)
		return ErrRegistrationFailed
	}
	if existing != nil {
		return ErrUsernameExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error("password hashing failed", "username", in.Username, "error", err)
		return ErrRegistrationFailed
	}

	user, err := s.users.Create(ctx, in.Username, hash)
	if err != nil {
		// A concurrent registration may have won the race after our lookup.
		if errors.Is(err, driven.ErrUsernameTaken) {
			return ErrUsernameExists
		}
		s.logger.Error("user insert failed", "username", in.Username, "error", err)
		return ErrRegistrationFailed
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return nil
}

// Login verifies credentials and issues a token. Unknown usernames and wrong
// passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrBadInput
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Error("login lookup failed", "username", username, "error", err)
		return nil, ErrLoginFailed
	}
	if user == nil {
		s.hasher.Verify(password, s.unknownUserHash())
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(strconv.FormatInt(user.ID, 10))
	if err != nil {
		s.logger.Error("token issue failed", "user_id", user.ID, "error", err)
		return nil, ErrLoginFailed
	}

	return &LoginResult{AccessToken: token, User: *user}, nil
}

// unknownUserHash returns a digest produced by the configured hasher, computed
// on first use.
func (s *AuthService) unknownUserHash() string {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash(dummyPassword)
		if err != nil {
			s.logger.Error("dummy hash failed", "error", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

// inviteMatches compares in constant time. An empty configured code never matches.
func (s *AuthService) inviteMatches(code string) bool {
	if s.inviteCode == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(s.inviteCode)) == 1
}
