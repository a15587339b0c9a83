package history

import (
	"context"
	"fmt"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/logger"
	"github.com/jonathan/placement-prep/internal/metrics"
	"github.com/jonathan/placement-prep/internal/types"
	"github.com/redis/go-redis/v9"
)

// Open builds the backend named in cfg.History. The redis backend is pinged before use.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (Store, error) {
	var store Store
	switch cfg.History.Backend {
	case config.HistoryMemory:
		store = NewMemoryStore()
	case config.HistoryFile:
		store = NewFileStore(cfg.History.Path)
	case config.HistoryRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close() //nolint:errcheck,gosec // already failing
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		store = NewRedisStore(client, cfg.History.Key)
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.History.Backend)
	}

	log.Debug("history backend ready", map[string]interface{}{
		"backend": cfg.History.Backend,
	})
	return Instrument(store, cfg.History.Backend), nil
}

// Instrument counts every repository operation by backend and result.
func Instrument(store Store, backend string) Store {
	return &instrumented{next: store, backend: backend}
}

type instrumented struct {
	next    Store
	backend string
}

func (i *instrumented) observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.HistoryOperations.WithLabelValues(i.backend, op, result).Inc()
}

func (i *instrumented) List(ctx context.Context) ([]types.AnalysisResult, error) {
	out, err := i.next.List(ctx)
	i.observe("list", err)
	return out, err
}

func (i *instrumented) Append(ctx context.Context, r *types.AnalysisResult) error {
	err := i.next.Append(ctx, r)
	i.observe("append", err)
	return err
}

func (i *instrumented) Get(ctx context.Context, id string) (*types.AnalysisResult, error) {
	out, err := i.next.Get(ctx, id)
	i.observe("get", err)
	return out, err
}

func (i *instrumented) Close() error {
	return i.next.Close()
}
