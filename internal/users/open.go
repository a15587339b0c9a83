package users

import (
	"context"

	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/db"
	"github.com/jonathan/placement-prep/internal/logger"
	"github.com/jonathan/placement-prep/internal/metrics"
)

// Open picks the store once at startup. Without a database URL, or when the database
// cannot be reached or migrated, it logs and falls back to memory; it never fails.
func Open(ctx context.Context, cfg config.DatabaseConfig, log logger.Logger) Store {
	if cfg.URL == "" {
		log.Warn("DATABASE_URL not set, using in-memory user store", nil)
		return NewMemStore()
	}

	database, err := db.Connect(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("failed to connect to database, using in-memory user store", nil)
		metrics.UserStoreFallbacks.Inc()
		return NewMemStore()
	}

	if err := database.Migrate(ctx); err != nil {
		log.WithError(err).Error("failed to migrate database, using in-memory user store", nil)
		database.Close() //nolint:errcheck,gosec // already falling back
		metrics.UserStoreFallbacks.Inc()
		return NewMemStore()
	}

	log.Info("using relational user store", nil)
	return NewSQLStore(database, log)
}
