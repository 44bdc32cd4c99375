package domain

import (
	"fmt"
	"time"
)

// Weekdays is the fixed Monday-first ordering used everywhere a week's
// entries are listed or seeded.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Week is one tracked week of tally entries for a user.
type Week struct {
	WeekID     int64
	UserID     int64
	WeekNumber int
	StartDate  time.Time
	EndDate    time.Time
	Entries    []TallyEntry
}

// TallyEntry holds the five activity counters for one day of a week.
type TallyEntry struct {
	EntryID           int64
	WeekID            int64
	Day               string
	TextNewRecruits   int
	CallsToRecruits   int
	TextInterviews    int
	InstaDMs          int
	InitialInterviews int
}

// TallyField is the closed enumeration of patchable activity counters.
type TallyField string

const (
	FieldTextNewRecruits   TallyField = "textNewRecruits"
	FieldCallsToRecruits   TallyField = "callsToRecruits"
	FieldTextInterviews    TallyField = "textInterviews"
	FieldInstaDMs          TallyField = "instaDMs"
	FieldInitialInterviews TallyField = "initialInterviews"
)

var tallyFieldColumns = map[TallyField]string{
	FieldTextNewRecruits:   "text_new_recruits",
	FieldCallsToRecruits:   "calls_to_recruits",
	FieldTextInterviews:    "text_interviews",
	FieldInstaDMs:          "insta_dms",
	FieldInitialInterviews: "initial_interviews",
}

// ParseTallyField validates a client-supplied field name against the
// closed counter set. Anything else is rejected at the boundary.
func ParseTallyField(s string) (TallyField, error) {
	f := TallyField(s)
	if _, ok := tallyFieldColumns[f]; !ok {
		return "", fmt.Errorf("invalid tally field: %q", s)
	}
	return f, nil
}

// Column returns the database column backing this counter.
func (f TallyField) Column() string {
	return tallyFieldColumns[f]
}
