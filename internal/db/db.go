// Package db provides PostgreSQL access for user records.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/types"
)

// DriverName is the database/sql driver registered by pgx.
const DriverName = "pgx"

// DB wraps a PostgreSQL connection pool
type DB struct {
	conn *sql.DB
}

// Connect opens a pool and verifies it with a ping bounded by cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	conn, err := sql.Open(DriverName, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close() //nolint:errcheck,gosec // already failing
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{conn: conn}, nil
}

// New wraps an existing pool.
func New(conn *sql.DB) *DB {
	return &DB{conn: conn}
}

// Close closes the connection pool
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// CreateUser inserts a user record. The caller assigns the ID.
func (db *DB) CreateUser(ctx context.Context, user *types.User) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, username, password) VALUES ($1, $2, $3)`,
		user.ID, user.Username, user.Password,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID. Returns nil, nil when no user exists.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE id = $1`, id)
	return scanUser(row, "get user")
}

// GetUserByUsername retrieves a user by username. Returns nil, nil when no user exists.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = $1`, username)
	return scanUser(row, "get user by username")
}

func scanUser(row *sql.Row, op string) (*types.User, error) {
	var u types.User
	err := row.Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	return &u, nil
}
