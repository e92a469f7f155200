package service

import "context"

// CheckInEvent announces a committed check-in.
type CheckInEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventID     string `json:"event_id"`
	CheckInID   int64  `json:"checkin_id"`
	UserID      string `json:"user_id"`
	Date        string `json:"date"`          // YYYY-MM-DD
	CheckInTime string `json:"check_in_time"` // RFC 3339, UTC
}

// EventPublisher sends domain events to a message queue.
type EventPublisher interface {
	// PublishCheckInEvent publishes a committed check-in for async processing.
	PublishCheckInEvent(ctx context.Context, event *CheckInEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
