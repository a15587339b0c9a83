package server

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/types"
	"github.com/jonathan/placement-prep/internal/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T, store users.Store) *UserService {
	t.Helper()
	pc, err := config.NewPasswordConfig(config.AuthConfig{BcryptCost: config.MinBcryptCost})
	require.NoError(t, err)
	return NewUserService(store, pc)
}

func TestRegister_ConcurrentSameUsername(t *testing.T) {
	store := users.NewMemStore()
	svc := newTestUserService(t, store)

	const workers = 8
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		ok    int
		taken int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), &types.CreateUserRequest{Username: "alice", Password: "correct-horse"})
			mu.Lock()
			defer mu.Unlock()
			var takenErr *ErrUsernameTaken
			switch {
			case err == nil:
				ok++
			case errors.As(err, &takenErr):
				taken++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, taken)
}

func TestRegister_StoreRejectsDuplicate(t *testing.T) {
	store := users.NewMemStore()
	_, err := store.CreateUser(context.Background(), "alice", "hash")
	require.NoError(t, err)

	// The pre-check misses, the store insert still refuses.
	svc := newTestUserService(t, &blindStore{Store: store})
	_, err = svc.Register(context.Background(), &types.CreateUserRequest{Username: "alice", Password: "correct-horse"})
	var takenErr *ErrUsernameTaken
	require.ErrorAs(t, err, &takenErr)
	assert.Equal(t, "alice", takenErr.Username)
}

// blindStore never finds users by name.
type blindStore struct {
	users.Store
}

func (b *blindStore) GetUserByUsername(context.Context, string) (*types.User, error) {
	return nil, nil
}
