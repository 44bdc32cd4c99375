package transform_test

import (
	"testing"

	"github.com/activitydash/activity_dashboard_app/internal/dto"
	"github.com/activitydash/activity_dashboard_app/internal/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "-", transform.FormatDuration(0))
	assert.Equal(t, "-", transform.FormatDuration(-5))
	assert.Equal(t, "0:05", transform.FormatDuration(5))
	assert.Equal(t, "1:05", transform.FormatDuration(65))
	assert.Equal(t, "61:01", transform.FormatDuration(3661))
}

func TestResolveCallContact_Fallbacks(t *testing.T) {
	inbound := dto.CallLogRecord{
		Direction: "Inbound",
		From:      &dto.CallParty{Name: "Alice", PhoneNumber: "+15551234567"},
		To:        &dto.CallParty{Name: "Reception"},
	}
	assert.Equal(t, "Alice", transform.ResolveCallContact(inbound))

	inbound.From.Name = ""
	assert.Equal(t, "+15551234567", transform.ResolveCallContact(inbound))

	inbound.From = nil
	assert.Equal(t, "Unknown", transform.ResolveCallContact(inbound))

	outbound := dto.CallLogRecord{
		Direction: "Outbound",
		From:      &dto.CallParty{Name: "Reception"},
		To:        &dto.CallParty{PhoneNumber: "+15559876543"},
	}
	assert.Equal(t, "+15559876543", transform.ResolveCallContact(outbound))
}

func TestResolveMessageContact_Fallbacks(t *testing.T) {
	outbound := dto.MessageRecord{
		Direction: "Outbound",
		To:        []dto.MessageParty{{PhoneNumber: "+15550001111"}},
	}
	assert.Equal(t, "+15550001111", transform.ResolveMessageContact(outbound))

	outbound.To = nil
	assert.Equal(t, "Unknown", transform.ResolveMessageContact(outbound))

	inbound := dto.MessageRecord{
		Direction: "Inbound",
		From:      &dto.MessageParty{Name: "Bob"},
	}
	assert.Equal(t, "Bob", transform.ResolveMessageContact(inbound))

	inbound.From = nil
	assert.Equal(t, "Unknown", transform.ResolveMessageContact(inbound))
}

func TestClassifyCallResult(t *testing.T) {
	assert.Equal(t, transform.StatusMissed, transform.ClassifyCallResult("Missed"))
	assert.Equal(t, transform.StatusVoicemail, transform.ClassifyCallResult("Voicemail"))
	assert.Equal(t, transform.StatusBusy, transform.ClassifyCallResult("Rejected"))
	assert.Equal(t, transform.StatusCompleted, transform.ClassifyCallResult("Call connected"))
	assert.Equal(t, transform.StatusCompleted, transform.ClassifyCallResult(""))
}

func TestClassifyMessage(t *testing.T) {
	assert.Equal(t, transform.StatusPending, transform.ClassifyMessage(dto.MessageRecord{MessageStatus: "Queued"}))
	assert.Equal(t, transform.StatusFailed, transform.ClassifyMessage(dto.MessageRecord{MessageStatus: "SendingFailed"}))
	assert.Equal(t, transform.StatusFailed, transform.ClassifyMessage(dto.MessageRecord{MessageStatus: "DeliveryFailed"}))
	assert.Equal(t, transform.StatusRead, transform.ClassifyMessage(dto.MessageRecord{MessageStatus: "Delivered", ReadStatus: "Read"}))
	assert.Equal(t, transform.StatusDelivered, transform.ClassifyMessage(dto.MessageRecord{MessageStatus: "Delivered", ReadStatus: "Unread"}))
	assert.Equal(t, transform.StatusUnread, transform.ClassifyMessage(dto.MessageRecord{MessageStatus: "Received", ReadStatus: "Unread"}))
	assert.Equal(t, transform.StatusCompleted, transform.ClassifyMessage(dto.MessageRecord{}))
}

func TestCallActivity_EmployeeAttribution(t *testing.T) {
	extensionMap := map[string]dto.ExtensionInfo{
		"301": {Name: "Amelia Mauriello", ExtensionNumber: "102"},
	}

	known := transform.CallActivity(dto.CallLogRecord{
		ID:        "c1",
		Direction: "Outbound",
		Extension: &dto.ExtensionRef{ID: "301"},
	}, extensionMap)
	assert.Equal(t, "Amelia Mauriello", known.Employee)
	assert.Equal(t, "102", known.Extension)
	assert.Equal(t, "Voice", known.Channel)

	unknown := transform.CallActivity(dto.CallLogRecord{
		ID:        "c2",
		Extension: &dto.ExtensionRef{ID: "999"},
	}, extensionMap)
	assert.Equal(t, "Unknown User", unknown.Employee)
	assert.Equal(t, "999", unknown.Extension)

	noMap := transform.CallActivity(dto.CallLogRecord{ID: "c3"}, nil)
	assert.Equal(t, "Current User", noMap.Employee)
	assert.Equal(t, "101", noMap.Extension)
}

func TestCallActivity_FeedFoldsVoicemailToPending(t *testing.T) {
	record := transform.CallActivity(dto.CallLogRecord{ID: "c1", Result: "Voicemail"}, nil)
	assert.Equal(t, transform.StatusPending, record.Status)
}

func TestMessageActivity_FeedFoldsFailuresToMissed(t *testing.T) {
	record := transform.MessageActivity(dto.MessageRecord{ID: "m1", MessageStatus: "DeliveryFailed"}, nil)
	assert.Equal(t, transform.StatusMissed, record.Status)
	assert.Equal(t, "-", record.Duration)
	assert.Equal(t, "SMS", record.Channel)
}

func TestCombineActivity_SortsByTimestampDescending(t *testing.T) {
	callLog := &dto.CallLogResponse{
		Records: []dto.CallLogRecord{
			{ID: "old-call", StartTime: "2026-08-01T10:00:00Z"},
			{ID: "new-call", StartTime: "2026-08-03T10:00:00Z"},
		},
	}
	messages := &dto.MessageResponse{
		Records: []dto.MessageRecord{
			{ID: "mid-message", CreationTime: "2026-08-02T10:00:00Z"},
		},
	}

	records := transform.CombineActivity(callLog, messages)
	require.Len(t, records, 3)
	assert.Equal(t, "new-call", records[0].ID)
	assert.Equal(t, "mid-message", records[1].ID)
	assert.Equal(t, "old-call", records[2].ID)
}

func TestCombineActivity_UnparseableTimestampsSortLast(t *testing.T) {
	callLog := &dto.CallLogResponse{
		Records: []dto.CallLogRecord{
			{ID: "garbage-time", StartTime: "not-a-time"},
			{ID: "real-time", StartTime: "2026-08-03T10:00:00Z"},
		},
	}

	records := transform.CombineActivity(callLog, nil)
	require.Len(t, records, 2)
	assert.Equal(t, "real-time", records[0].ID)
	assert.Equal(t, "garbage-time", records[1].ID)
	// The raw value passes through for display.
	assert.Equal(t, "not-a-time", records[1].Timestamp)
}

func TestCombineActivity_NilInputs(t *testing.T) {
	assert.Empty(t, transform.CombineActivity(nil, nil))
}
