package store

import "time"

// Calendar groups events for one schedule.
type Calendar struct {
	ID        int64
	Name      string
	Color     *string
	CreatedAt time.Time
}

// Event statuses. Only visible statuses are returned to grid queries by
// default; hidden events stay in the table for auditing.
const (
	StatusPublish = "publish"
	StatusFuture  = "future"
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPrivate = "private"
	StatusHidden  = "hidden"
	StatusPassed  = "passed"
)

// VisibleStatuses are the statuses a grid query includes by default.
var VisibleStatuses = []string{StatusPublish, StatusFuture, StatusPrivate, StatusPassed}

// Event is one stored occurrence. UID is stable per calendar so imports
// can upsert; EndsAt and ExpiresAt are nullable.
type Event struct {
	ID             int64
	CalendarID     int64
	UID            string
	Title          string
	StartsAt       time.Time
	EndsAt         *time.Time
	AllDay         bool
	Location       string
	Description    string
	RepeatInterval string
	ExpiresAt      *time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
