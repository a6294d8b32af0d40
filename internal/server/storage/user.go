package storage

import (
	"context"

	"github.com/neonsoul/neonsoul/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrEmailTaken if email already exists
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateAvatar replaces the user's avatar sub-record entirely
	// Returns ErrUserNotFound if user doesn't exist
	UpdateAvatar(ctx context.Context, userID string, avatar *models.Avatar) error
}
