package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/placement-prep/internal/config"
	"github.com/jonathan/placement-prep/internal/types"
	"github.com/jonathan/placement-prep/internal/users"
)

// UserService provides business logic for the user-record scaffold
type UserService struct {
	store          users.Store
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store users.Store, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// Register validates the request, hashes the password and stores the user.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, toValidationError(err)
	}

	existing, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, &ErrUsernameTaken{Username: req.Username}
	}

	hash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, req.Username, hash)
	if errors.Is(err, users.ErrUsernameExists) {
		return nil, &ErrUsernameTaken{Username: req.Username}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser returns the user or ErrUserNotFound.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: id}
	}
	return user, nil
}

// GetUserByUsername returns the user or ErrUserNotFound.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*types.User, error) {
	if username == "" {
		return nil, &ErrValidation{Field: "username", Message: "is required"}
	}
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	if user == nil {
		return nil, &ErrUserNotFound{Username: username}
	}
	return user, nil
}

// toValidationError reports the first failed field.
func toValidationError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed on '%s'", fe.Tag())}
	}
	return &ErrValidation{Message: err.Error()}
}
