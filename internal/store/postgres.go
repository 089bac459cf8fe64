package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// calendarRepo implements CalendarRepository.
type calendarRepo struct {
	pool *pgxpool.Pool
}

func (r *calendarRepo) GetByID(ctx context.Context, id int64) (*Calendar, error) {
	defer observeDB(ctx, "db.calendars.get")()

	const q = `SELECT id, name, color, created_at FROM calendars WHERE id = $1`

	var cal Calendar
	err := r.pool.QueryRow(ctx, q, id).Scan(&cal.ID, &cal.Name, &cal.Color, &cal.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get calendar %d: %w", id, err)
	}
	return &cal, nil
}

func (r *calendarRepo) List(ctx context.Context) ([]Calendar, error) {
	defer observeDB(ctx, "db.calendars.list")()

	const q = `SELECT id, name, color, created_at FROM calendars ORDER BY name, id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	defer rows.Close()

	var cals []Calendar
	for rows.Next() {
		var cal Calendar
		if err := rows.Scan(&cal.ID, &cal.Name, &cal.Color, &cal.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calendar: %w", err)
		}
		cals = append(cals, cal)
	}
	return cals, rows.Err()
}

func (r *calendarRepo) Create(ctx context.Context, cal Calendar) (*Calendar, error) {
	defer observeDB(ctx, "db.calendars.create")()

	const q = `INSERT INTO calendars (name, color) VALUES ($1, $2)
RETURNING id, name, color, created_at`

	var created Calendar
	err := r.pool.QueryRow(ctx, q, cal.Name, cal.Color).
		Scan(&created.ID, &created.Name, &created.Color, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create calendar: %w", err)
	}
	return &created, nil
}

func (r *calendarRepo) Rename(ctx context.Context, id int64, name string) error {
	defer observeDB(ctx, "db.calendars.rename")()

	tag, err := r.pool.Exec(ctx, `UPDATE calendars SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("rename calendar %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *calendarRepo) Delete(ctx context.Context, id int64) error {
	defer observeDB(ctx, "db.calendars.delete")()

	tag, err := r.pool.Exec(ctx, `DELETE FROM calendars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete calendar %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// eventRepo implements EventRepository.
type eventRepo struct {
	pool *pgxpool.Pool
}

const eventColumns = `id, calendar_id, uid, title, starts_at, ends_at, all_day,
location, description, repeat_interval, expires_at, status, created_at, updated_at`

func (r *eventRepo) Upsert(ctx context.Context, event Event) (*Event, error) {
	defer observeDB(ctx, "db.events.upsert")()

	if event.Status == "" {
		event.Status = StatusPublish
	}

	q := `INSERT INTO events
(calendar_id, uid, title, starts_at, ends_at, all_day, location, description, repeat_interval, expires_at, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (calendar_id, uid) DO UPDATE SET
	title = EXCLUDED.title,
	starts_at = EXCLUDED.starts_at,
	ends_at = EXCLUDED.ends_at,
	all_day = EXCLUDED.all_day,
	location = EXCLUDED.location,
	description = EXCLUDED.description,
	repeat_interval = EXCLUDED.repeat_interval,
	expires_at = EXCLUDED.expires_at,
	status = EXCLUDED.status,
	updated_at = NOW()
RETURNING ` + eventColumns

	row := r.pool.QueryRow(ctx, q,
		event.CalendarID, event.UID, event.Title, event.StartsAt, event.EndsAt,
		event.AllDay, event.Location, event.Description, event.RepeatInterval,
		event.ExpiresAt, event.Status)

	saved, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("upsert event %s: %w", event.UID, err)
	}
	return saved, nil
}

func (r *eventRepo) GetByUID(ctx context.Context, calendarID int64, uid string) (*Event, error) {
	defer observeDB(ctx, "db.events.get")()

	q := `SELECT ` + eventColumns + ` FROM events WHERE calendar_id = $1 AND uid = $2`

	ev, err := scanEvent(r.pool.QueryRow(ctx, q, calendarID, uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", uid, err)
	}
	return ev, nil
}

func (r *eventRepo) DeleteByUID(ctx context.Context, calendarID int64, uid string) error {
	defer observeDB(ctx, "db.events.delete")()

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM events WHERE calendar_id = $1 AND uid = $2`, calendarID, uid)
	if err != nil {
		return fmt.Errorf("delete event %s: %w", uid, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepo) ListInRange(ctx context.Context, calendarID int64, start, end time.Time, statuses []string) ([]Event, error) {
	defer observeDB(ctx, "db.events.list_in_range")()

	if len(statuses) == 0 {
		statuses = VisibleStatuses
	}

	// An event without an end is a point in time; it overlaps the window
	// when its start does.
	q := `SELECT ` + eventColumns + ` FROM events
WHERE calendar_id = $1
  AND starts_at < $3
  AND COALESCE(ends_at, starts_at) >= $2
  AND status = ANY($4)
ORDER BY starts_at, id`

	rows, err := r.pool.Query(ctx, q, calendarID, start, end, statuses)
	if err != nil {
		return nil, fmt.Errorf("list events in range: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *ev)
	}
	return events, rows.Err()
}

func scanEvent(row pgx.Row) (*Event, error) {
	var ev Event
	err := row.Scan(&ev.ID, &ev.CalendarID, &ev.UID, &ev.Title, &ev.StartsAt,
		&ev.EndsAt, &ev.AllDay, &ev.Location, &ev.Description,
		&ev.RepeatInterval, &ev.ExpiresAt, &ev.Status, &ev.CreatedAt, &ev.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}
