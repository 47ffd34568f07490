package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ericfisherdev/invitegate/internal/domain/model"
	"github.com/ericfisherdev/invitegate/internal/domain/port/driven"
)

// --- Mock implementations ---

type mockUserStore struct {
	mu      sync.Mutex
	users   []model.User
	nextID  int64
	getErr  error
	create  func(username, hash string) error
	created int
}

func (m *mockUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *mockUserStore) Create(_ context.Context, username, passwordHash string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.create != nil {
		if err := m.create(username, passwordHash); err != nil {
			return model.User{}, err
		}
	}
	m.nextID++
	u := model.User{ID: m.nextID, Username: username, PasswordHash: passwordHash}
	m.users = append(m.users, u)
	m.created++
	return u, nil
}

type mockTransactionStore struct {
	counts   map[int64]int
	countErr error
}

func (m *mockTransactionStore) Add(_ context.Context, tx model.Transaction) (model.Transaction, error) {
	if m.counts == nil {
		m.counts = map[int64]int{}
	}
	m.counts[tx.UserID]++
	return tx, nil
}

func (m *mockTransactionStore) CountByUser(_ context.Context, userID int64) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.counts[userID], nil
}

// fakeHasher prefixes the plaintext so tests can assert on stored values
// without paying bcrypt's cost.
type fakeHasher struct {
	hashErr  error
	verifies atomic.Int32
	verified []string
	mu       sync.Mutex
}

func (f *fakeHasher) Hash(plaintext string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + plaintext, nil
}

func (f *fakeHasher) Verify(plaintext, hash string) bool {
	f.verifies.Add(1)
	f.mu.Lock()
	f.verified = append(f.verified, hash)
	f.mu.Unlock()
	return strings.HasPrefix(hash, "hashed:") && hash == "hashed:"+plaintext
}

type fakeIssuer struct {
	issueErr error
	issued   []string
}

func (f *fakeIssuer) Issue(subject string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	f.issued = append(f.issued, subject)
	return "token-for-" + subject, nil
}

func (f *fakeIssuer) Validate(token string) (string, error) {
	if token == "" {
		return "", driven.ErrMissingAuthorization
	}
	sub, ok := strings.CutPrefix(token, "token-for-")
	if !ok {
		return "", driven.ErrTokenMalformed
	}
	return sub, nil
}

var errStore = errors.New("store down")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
