package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jonathan/placement-prep/internal/db"
	"github.com/jonathan/placement-prep/internal/logger"
	"github.com/jonathan/placement-prep/internal/types"
)

// SQLStore keeps users in PostgreSQL.
type SQLStore struct {
	db  *db.DB
	log logger.Logger
}

// NewSQLStore wraps an open database.
func NewSQLStore(database *db.DB, log logger.Logger) *SQLStore {
	return &SQLStore{db: database, log: log}
}

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// CreateUser inserts the user. A duplicate username returns ErrUsernameExists. Any other
// insert failure is logged and not returned: the caller still gets the user it asked for.
func (s *SQLStore) CreateUser(ctx context.Context, username, passwordHash string) (*types.User, error) {
	u := &types.User{ID: uuid.New(), Username: username, Password: passwordHash}

	if err := s.db.CreateUser(ctx, u); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrUsernameExists
		}
		s.log.WithError(err).Error("failed to insert user", map[string]interface{}{
			"user_id":  u.ID.String(),
			"username": username,
		})
	}
	return u, nil
}

func (s *SQLStore) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	return s.db.GetUser(ctx, id)
}

func (s *SQLStore) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	return s.db.GetUserByUsername(ctx, username)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
