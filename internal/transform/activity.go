// Package transform maps raw provider records into denormalized, UI-ready
// activity records. Every function here is pure and total: no input shape
// (missing nested fields, absent arrays, unparseable times) may panic, and
// every optional field has a documented fallback.
package transform

import (
	"fmt"
	"sort"
	"time"

	"github.com/activitydash/activity_dashboard_app/internal/dto"
)

// Detailed status vocabulary for call and message views.
const (
	StatusCompleted = "Completed"
	StatusMissed    = "Missed"
	StatusVoicemail = "Voicemail"
	StatusBusy      = "Busy"
	StatusPending   = "Pending"
	StatusFailed    = "Failed"
	StatusRead      = "Read"
	StatusUnread    = "Unread"
	StatusDelivered = "Delivered"
)

// Fallbacks when a record cannot be attributed.
const (
	unknownContact    = "Unknown"
	unknownEmployee   = "Unknown User"
	placeholderUser   = "Current User"
	defaultExtension  = "101"
	displayTimeLayout = "2006-01-02 15:04:05"
	noDurationDisplay = "-"
)

// FormatDuration renders integer seconds as M:SS with zero-padded seconds,
// or "-" when the duration is zero or absent.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return noDurationDisplay
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ResolveCallContact picks the counterparty display string for a call:
// name, falling back to phone number, falling back to "Unknown". Inbound
// records resolve the caller, outbound the destination.
func ResolveCallContact(record dto.CallLogRecord) string {
	party := record.To
	if record.Direction == "Inbound" {
		party = record.From
	}
	if party == nil {
		return unknownContact
	}
	if party.Name != "" {
		return party.Name
	}
	if party.PhoneNumber != "" {
		return party.PhoneNumber
	}
	return unknownContact
}

// ResolveMessageContact picks the counterparty display string for a
// message. Outbound messages resolve the first recipient.
func ResolveMessageContact(record dto.MessageRecord) string {
	if record.Direction == "Inbound" {
		if record.From != nil {
			if record.From.Name != "" {
				return record.From.Name
			}
			if record.From.PhoneNumber != "" {
				return record.From.PhoneNumber
			}
		}
		return unknownContact
	}
	if len(record.To) > 0 {
		if record.To[0].Name != "" {
			return record.To[0].Name
		}
		if record.To[0].PhoneNumber != "" {
			return record.To[0].PhoneNumber
		}
	}
	return unknownContact
}

// ClassifyCallResult maps the provider's call result onto the detailed
// status vocabulary.
func ClassifyCallResult(result string) string {
	switch result {
	case "Missed":
		return StatusMissed
	case "Voicemail":
		return StatusVoicemail
	case "Rejected":
		return StatusBusy
	default:
		return StatusCompleted
	}
}

// ClassifyMessage maps the provider's message status onto the detailed
// vocabulary, refined by read-receipt data when present.
func ClassifyMessage(record dto.MessageRecord) string {
	switch record.MessageStatus {
	case "Queued":
		return StatusPending
	case "SendingFailed", "DeliveryFailed":
		return StatusFailed
	}
	switch record.ReadStatus {
	case "Read":
		return StatusRead
	case "Unread":
		if record.MessageStatus == "Delivered" {
			return StatusDelivered
		}
		return StatusUnread
	}
	return StatusCompleted
}

// resolveEmployee attributes a record to an employee through the extension
// id lookup map. Without a map the caller only fetched messages, and
// attribution degrades to a generic placeholder.
func resolveEmployee(extensionID string, extensionMap map[string]dto.ExtensionInfo) (employee, extension string) {
	if extensionMap == nil {
		if extensionID != "" {
			return placeholderUser, extensionID
		}
		return placeholderUser, defaultExtension
	}
	if info, ok := extensionMap[extensionID]; ok {
		return info.Name, info.ExtensionNumber
	}
	if extensionID != "" {
		return unknownEmployee, extensionID
	}
	return unknownEmployee, defaultExtension
}

// CallActivity projects one call record into the combined activity feed.
// The feed status vocabulary folds Voicemail to Pending.
func CallActivity(record dto.CallLogRecord, extensionMap map[string]dto.ExtensionInfo) dto.ActivityRecord {
	extensionID := ""
	if record.Extension != nil {
		extensionID = record.Extension.ID
	}
	employee, extension := resolveEmployee(extensionID, extensionMap)

	status := ClassifyCallResult(record.Result)
	if status == StatusVoicemail {
		status = StatusPending
	}

	return dto.ActivityRecord{
		ID:        record.ID,
		Employee:  employee,
		Extension: extension,
		Channel:   "Voice",
		Direction: record.Direction,
		Status:    status,
		Contact:   ResolveCallContact(record),
		Duration:  FormatDuration(record.Duration),
		Timestamp: displayTime(record.StartTime),
	}
}

// MessageActivity projects one message record into the combined activity
// feed. The feed status vocabulary folds failures to Missed and read
// refinements to Completed.
func MessageActivity(record dto.MessageRecord, extensionMap map[string]dto.ExtensionInfo) dto.ActivityRecord {
	employee, extension := resolveEmployee("", extensionMap)

	status := StatusCompleted
	switch record.MessageStatus {
	case "Queued":
		status = StatusPending
	case "SendingFailed", "DeliveryFailed":
		status = StatusMissed
	}

	return dto.ActivityRecord{
		ID:        record.ID,
		Employee:  employee,
		Extension: extension,
		Channel:   "SMS",
		Direction: record.Direction,
		Status:    status,
		Contact:   ResolveMessageContact(record),
		Duration:  noDurationDisplay,
		Timestamp: displayTime(record.CreationTime),
	}
}

// CombineActivity concatenates transformed call and message records and
// sorts them by timestamp descending. The sort is stable: records with
// equal (or equally unparseable) timestamps keep their original relative
// order. Either input may be nil.
func CombineActivity(callLog *dto.CallLogResponse, messages *dto.MessageResponse) []dto.ActivityRecord {
	var extensionMap map[string]dto.ExtensionInfo
	if callLog != nil {
		extensionMap = callLog.ExtensionMap
	}

	type timedRecord struct {
		record dto.ActivityRecord
		at     time.Time
	}
	var timed []timedRecord

	if callLog != nil {
		for _, call := range callLog.Records {
			timed = append(timed, timedRecord{
				record: CallActivity(call, extensionMap),
				at:     parseTime(call.StartTime),
			})
		}
	}
	if messages != nil {
		for _, msg := range messages.Records {
			timed = append(timed, timedRecord{
				record: MessageActivity(msg, extensionMap),
				at:     parseTime(msg.CreationTime),
			})
		}
	}

	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].at.After(timed[j].at)
	})

	records := make([]dto.ActivityRecord, len(timed))
	for i, t := range timed {
		records[i] = t.record
	}
	return records
}

// parseTime reads a provider timestamp. Unparseable values collapse to the
// zero time and sort last.
func parseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// displayTime renders a provider timestamp for the UI, passing the raw
// value through when it cannot be parsed.
func displayTime(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format(displayTimeLayout)
}
