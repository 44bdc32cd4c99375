package repositories

import (
	"context"
	"time"

	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
)

// TallyReader defines read operations for weekly tally data.
type TallyReader interface {
	// FindWeeksByUser retrieves a user's weeks ordered by week number
	// ascending, each with its entries ordered Monday through Sunday.
	FindWeeksByUser(ctx context.Context, userID int64) ([]domain.Week, error)
}

// TallyWriter defines write operations for weekly tally data.
type TallyWriter interface {
	// CreateWeek inserts a week row and its seven zero-valued entries as
	// one transaction. A duplicate (userID, weekNumber) pair returns
	// apperrors.ErrDuplicate.
	CreateWeek(ctx context.Context, userID int64, weekNumber int, startDate, endDate time.Time) (int64, error)

	// UpdateEntryField sets a single counter column on an entry.
	UpdateEntryField(ctx context.Context, entryID int64, field domain.TallyField, value int) error
}

// TallyRepository combines all tally repository interfaces.
type TallyRepository interface {
	TallyReader
	TallyWriter
}
