// Package users provides the user-record store behind the /api/users endpoints.
package users

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/placement-prep/internal/types"
)

// ErrUsernameExists is returned by CreateUser when the username is already stored.
var ErrUsernameExists = errors.New("username already exists")

// Store creates and reads user records. Lookups return nil, nil when absent.
type Store interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*types.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*types.User, error)
	GetUserByUsername(ctx context.Context, username string) (*types.User, error)
	Close() error
}

// MemStore keeps users in process memory.
type MemStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]types.User
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{users: make(map[uuid.UUID]types.User)}
}

func (m *MemStore) CreateUser(_ context.Context, username, passwordHash string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == username {
			return nil, ErrUsernameExists
		}
	}

	u := types.User{ID: uuid.New(), Username: username, Password: passwordHash}
	m.users[u.ID] = u
	return &u, nil
}

func (m *MemStore) GetUser(_ context.Context, id uuid.UUID) (*types.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *MemStore) GetUserByUsername(_ context.Context, username string) (*types.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MemStore) Close() error { return nil }
