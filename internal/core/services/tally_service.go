package services

import (
	"context"
	"fmt"
	"time"

	"github.com/activitydash/activity_dashboard_app/internal/apperrors"
	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	portsrepo "github.com/activitydash/activity_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/activitydash/activity_dashboard_app/internal/dto"
)

type tallyService struct {
	tallyRepo portsrepo.TallyRepository
}

// NewTallyService creates the weekly tally service.
func NewTallyService(tallyRepo portsrepo.TallyRepository) portssvc.TallySvcFacade {
	return &tallyService{tallyRepo: tallyRepo}
}

var _ portssvc.TallySvcFacade = (*tallyService)(nil)

func (s *tallyService) ListWeeks(ctx context.Context, userID int64) ([]domain.Week, error) {
	weeks, err := s.tallyRepo.FindWeeksByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}
	return weeks, nil
}

func (s *tallyService) CreateWeek(ctx context.Context, userID int64, req dto.CreateWeekRequest) (int64, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", req.StartDate, apperrors.ErrValidation)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", req.EndDate, apperrors.ErrValidation)
	}

	weekID, err := s.tallyRepo.CreateWeek(ctx, userID, req.WeekNumber, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("failed to create week: %w", err)
	}
	return weekID, nil
}

func (s *tallyService) PatchEntry(ctx context.Context, entryID int64, field string, value int) error {
	tallyField, err := domain.ParseTallyField(field)
	if err != nil {
		return fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	// The client clamps before submitting but is not trusted to.
	if value < 0 {
		value = 0
	}

	if err := s.tallyRepo.UpdateEntryField(ctx, entryID, tallyField, value); err != nil {
		return fmt.Errorf("failed to patch entry: %w", err)
	}
	return nil
}
