package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/activitydash/activity_dashboard_app/internal/apperrors"
	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	portsrepo "github.com/activitydash/activity_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/activitydash/activity_dashboard_app/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user service backed by the given repository.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

// Authenticate verifies the username/password pair. The stored credential
// may be a bcrypt hash or legacy plaintext; domain.Credential carries that
// decision from load time.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}
	if !user.Credential.Verify(password) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) UpdateEmail(ctx context.Context, userID int64, email string) error {
	if err := s.userRepo.UpdateUserEmail(ctx, userID, email); err != nil {
		return fmt.Errorf("failed to update email: %w", err)
	}
	return nil
}

// UpdatePassword verifies the current password against the stored
// credential (dual-mode) and stores the new password bcrypt-hashed. The
// legacy plaintext form is never written back.
func (s *userService) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to look up user for password update: %w", err)
	}

	if !user.Credential.Verify(currentPassword) {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrValidation)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdateUserPassword(ctx, userID, hashed); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return nil
}
