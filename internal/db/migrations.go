package db

import (
	"context"
	"fmt"
)

// Migration is one idempotent schema change.
type Migration struct {
	Name string
	SQL  string
}

// Migrations run in order on startup. Every statement must be safe to re-run.
var Migrations = []Migration{
	{
		Name: "create_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
	},
}

// Migrate applies every migration in order and stops at the first failure.
func (db *DB) Migrate(ctx context.Context) error {
	for _, m := range Migrations {
		if _, err := db.conn.ExecContext(ctx, m.SQL); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.Name, err)
		}
	}
	return nil
}
