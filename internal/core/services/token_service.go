package services

import (
	"context"
	"fmt"

	"github.com/activitydash/activity_dashboard_app/internal/apperrors"
	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/activitydash/activity_dashboard_app/internal/platform/config"
	"github.com/activitydash/activity_dashboard_app/internal/utils"
)

// tokenService implements the TokenSvcFacade for the session JWT.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) IssueToken(ctx context.Context, user *domain.User) (string, error) {
	token, err := utils.GenerateSessionToken(user, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

func (s *tokenService) VerifyToken(ctx context.Context, token string) (*utils.SessionClaims, error) {
	claims, err := utils.ParseSessionToken(token, s.cfg.JWTSecret)
	if err != nil {
		// Both sentinels stay matchable: unauthorized for callers, the
		// jwt error for the expiry-specific response message.
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	return claims, nil
}
