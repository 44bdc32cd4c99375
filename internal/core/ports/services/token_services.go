package services

import (
	"context"

	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	"github.com/activitydash/activity_dashboard_app/internal/utils"
)

// TokenSvcFacade issues and verifies session tokens.
type TokenSvcFacade interface {
	// IssueToken signs a session JWT mirroring the user row as of issuance.
	IssueToken(ctx context.Context, user *domain.User) (string, error)

	// VerifyToken parses and validates a session token. Invalid signature
	// or expiry returns apperrors.ErrUnauthorized, never a panic.
	VerifyToken(ctx context.Context, token string) (*utils.SessionClaims, error)
}
