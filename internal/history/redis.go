package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/placement-prep/internal/types"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the whole history as one JSON array under a single key. Append is
// GET then SET without a transaction; concurrent writers can overwrite each other.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore returns a store that uses key on client.
func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) List(ctx context.Context) ([]types.AnalysisResult, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []types.AnalysisResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get history from redis: %w", err)
	}
	return decode(data)
}

func (s *RedisStore) Append(ctx context.Context, r *types.AnalysisResult) error {
	results, err := s.List(ctx)
	if err != nil {
		return err
	}
	data, err := encode(prepend(results, r))
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set history in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*types.AnalysisResult, error) {
	results, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return find(results, id), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
