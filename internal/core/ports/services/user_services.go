package services

import (
	"context"

	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// Authenticate verifies a username/password pair. A missing user and a
	// wrong password are indistinguishable to the caller: both return
	// apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// UserWriterSvc defines account maintenance operations.
type UserWriterSvc interface {
	// UpdateEmail replaces the user's email address.
	UpdateEmail(ctx context.Context, userID int64, email string) error

	// UpdatePassword verifies the current password (dual-mode: bcrypt or
	// legacy plaintext) and stores the new one bcrypt-hashed.
	UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserAuthSvc
	UserWriterSvc
}
