package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ericfisherdev/invitegate/internal/domain/model"
	"github.com/ericfisherdev/invitegate/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.UserStore = (*UserRepo)(nil)

// UserRepo is the SQLite implementation of the UserStore port interface.
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a new UserRepo backed by the given DB.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user. The UNIQUE constraint on username is the
// authoritative duplicate check; a violation returns driven.ErrUsernameTaken.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (model.User, error) {
	const query = `INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id, created_at`

	user := model.User{Username: username, PasswordHash: passwordHash}
	var createdAt string

	err := r.db.Writer.QueryRowContext(ctx, query, username, passwordHash).Scan(&user.ID, &createdAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return model.User{}, fmt.Errorf("create user %q: %w", username, driven.ErrUsernameTaken)
		}
		return model.User{}, fmt.Errorf("create user %q: %w", username, err)
	}

	user.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.User{}, fmt.Errorf("parse created_at: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by exact username. Returns nil, nil if the
// user does not exist.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`

	user, err := scanUser(r.db.Reader.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}

	return user, nil
}

// GetByID retrieves a user by primary key. Returns nil, nil if the user does
// not exist.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, password_hash, created_at FROM users WHERE id = ?`

	user, err := scanUser(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}

	return user, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*model.User, error) {
	var user model.User
	var createdAt string

	err := s.Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt)
	if err != nil {
		return nil, err
	}

	user.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return &user, nil
}
