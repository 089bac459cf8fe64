package store

import (
	"context"
	"time"
)

// CalendarRepository handles calendar lifecycle.
type CalendarRepository interface {
	GetByID(ctx context.Context, id int64) (*Calendar, error)
	List(ctx context.Context) ([]Calendar, error)
	Create(ctx context.Context, cal Calendar) (*Calendar, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// EventRepository handles event storage. ListInRange returns events
// overlapping the half-open window [start, end), restricted to the given
// statuses, ordered by start time then id so grid placement is stable.
type EventRepository interface {
	Upsert(ctx context.Context, event Event) (*Event, error)
	GetByUID(ctx context.Context, calendarID int64, uid string) (*Event, error)
	DeleteByUID(ctx context.Context, calendarID int64, uid string) error
	ListInRange(ctx context.Context, calendarID int64, start, end time.Time, statuses []string) ([]Event, error)
}
