package dto

import "github.com/activitydash/activity_dashboard_app/internal/core/domain"

// TallyEntryResponse is one day's counters within a week.
type TallyEntryResponse struct {
	ID                int64  `json:"id"`
	Day               string `json:"day"`
	TextNewRecruits   int    `json:"textNewRecruits"`
	CallsToRecruits   int    `json:"callsToRecruits"`
	TextInterviews    int    `json:"textInterviews"`
	InstaDMs          int    `json:"instaDMs"`
	InitialInterviews int    `json:"initialInterviews"`
}

// WeekResponse is a tracked week with its seven entries, Monday first.
type WeekResponse struct {
	ID         int64                `json:"id"`
	WeekNumber int                  `json:"weekNumber"`
	StartDate  string               `json:"startDate"`
	EndDate    string               `json:"endDate"`
	Entries    []TallyEntryResponse `json:"entries"`
}

// ListWeeksResponse wraps GET /api/tally.
type ListWeeksResponse struct {
	Weeks []WeekResponse `json:"weeks"`
}

// CreateWeekRequest is the payload for POST /api/tally.
type CreateWeekRequest struct {
	WeekNumber int    `json:"weekNumber" binding:"required"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate" binding:"required"`
}

// CreateWeekResponse acknowledges week creation.
type CreateWeekResponse struct {
	Success bool  `json:"success"`
	WeekID  int64 `json:"weekId"`
}

// PatchEntryRequest is the payload for PATCH /api/tally/entry. Value uses a
// pointer so an explicit zero is distinguishable from an omitted field.
type PatchEntryRequest struct {
	EntryID int64  `json:"entryId" binding:"required"`
	Field   string `json:"field" binding:"required"`
	Value   *int   `json:"value" binding:"required"`
}

// ToWeekResponse converts a domain.Week with entries to its DTO.
func ToWeekResponse(week domain.Week) WeekResponse {
	entries := make([]TallyEntryResponse, len(week.Entries))
	for i, e := range week.Entries {
		entries[i] = TallyEntryResponse{
			ID:                e.EntryID,
			Day:               e.Day,
			TextNewRecruits:   e.TextNewRecruits,
			CallsToRecruits:   e.CallsToRecruits,
			TextInterviews:    e.TextInterviews,
			InstaDMs:          e.InstaDMs,
			InitialInterviews: e.InitialInterviews,
		}
	}
	return WeekResponse{
		ID:         week.WeekID,
		WeekNumber: week.WeekNumber,
		StartDate:  week.StartDate.Format("2006-01-02"),
		EndDate:    week.EndDate.Format("2006-01-02"),
		Entries:    entries,
	}
}

// ToListWeeksResponse converts a slice of domain weeks.
func ToListWeeksResponse(weeks []domain.Week) ListWeeksResponse {
	out := make([]WeekResponse, len(weeks))
	for i, w := range weeks {
		out[i] = ToWeekResponse(w)
	}
	return ListWeeksResponse{Weeks: out}
}
