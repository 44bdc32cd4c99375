package dto

// ActivityRecord is the denormalized, UI-ready projection of one call or
// message. Produced fresh on every fetch; never persisted.
type ActivityRecord struct {
	ID        string `json:"id"`
	Employee  string `json:"employee"`
	Extension string `json:"extension"`
	Channel   string `json:"channel"`
	Direction string `json:"direction"`
	Status    string `json:"status"`
	Contact   string `json:"contact"`
	Duration  string `json:"duration"`
	Timestamp string `json:"timestamp"`
}

// ActivityFeedResponse wraps GET /api/activity.
type ActivityFeedResponse struct {
	Records []ActivityRecord `json:"records"`
}
