package services

import (
	"context"

	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	"github.com/activitydash/activity_dashboard_app/internal/dto"
)

// TallySvcFacade defines the weekly tally operations.
type TallySvcFacade interface {
	// ListWeeks returns a user's weeks ordered by week number ascending,
	// each with seven entries ordered Monday through Sunday.
	ListWeeks(ctx context.Context, userID int64) ([]domain.Week, error)

	// CreateWeek creates a week and its seven zero-valued entries as one
	// unit. Duplicate (userID, weekNumber) returns apperrors.ErrDuplicate.
	CreateWeek(ctx context.Context, userID int64, req dto.CreateWeekRequest) (int64, error)

	// PatchEntry updates one counter on one entry. Unknown field names
	// return apperrors.ErrValidation; negative values are clamped to zero.
	PatchEntry(ctx context.Context, entryID int64, field string, value int) error
}
