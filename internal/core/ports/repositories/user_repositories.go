package repositories

import (
	"context"

	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByUsername retrieves a user by their exact username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// UpdateUserEmail replaces a user's email address.
	UpdateUserEmail(ctx context.Context, userID int64, email string) error

	// UpdateUserPassword replaces a user's stored password credential.
	UpdateUserPassword(ctx context.Context, userID int64, credential string) error
}

// UserRepository combines all user repository interfaces.
type UserRepository interface {
	UserReader
	UserWriter
}
