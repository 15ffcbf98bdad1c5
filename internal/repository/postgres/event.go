package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO events (city, date_time, is_upcoming, cancelled) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, e.City, e.DateTime, e.Upcoming, e.Cancelled).Scan(&e.ID); err != nil {
		return err
	}

	spaceQuery := `INSERT INTO spaces (event_id, space_template_id) VALUES ($1, $2) RETURNING id`
	for i := range e.Spaces {
		e.Spaces[i].EventID = e.ID
		if err := tx.QueryRowContext(ctx, spaceQuery, e.ID, e.Spaces[i].TemplateID).Scan(&e.Spaces[i].ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT id, city, date_time, is_upcoming, cancelled FROM events WHERE id = $1`
	e := &domain.Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.City, &e.DateTime, &e.Upcoming, &e.Cancelled)
	if err != nil {
		return nil, err
	}
	if err := r.loadSpaces(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *eventRepository) ListAll(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT id, city, date_time, is_upcoming, cancelled FROM events ORDER BY date_time DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.City, &e.DateTime, &e.Upcoming, &e.Cancelled); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range events {
		if err := r.loadSpaces(ctx, &events[i]); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (r *eventRepository) FirstCancelledAfter(ctx context.Context, t time.Time) (*domain.Event, error) {
	query := `SELECT id, city, date_time, is_upcoming, cancelled FROM events
	          WHERE cancelled = TRUE AND date_time > $1 ORDER BY date_time ASC LIMIT 1`
	return r.firstEvent(ctx, query, t)
}

func (r *eventRepository) FirstUpcomingAfter(ctx context.Context, t time.Time) (*domain.Event, error) {
	query := `SELECT id, city, date_time, is_upcoming, cancelled FROM events
	          WHERE is_upcoming = TRUE AND cancelled = FALSE AND date_time > $1 ORDER BY date_time ASC LIMIT 1`
	return r.firstEvent(ctx, query, t)
}

func (r *eventRepository) firstEvent(ctx context.Context, query string, t time.Time) (*domain.Event, error) {
	e := &domain.Event{}
	err := r.db.QueryRowContext(ctx, query, t).Scan(&e.ID, &e.City, &e.DateTime, &e.Upcoming, &e.Cancelled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadSpaces(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) MarkCancelled(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE events SET cancelled = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *eventRepository) MarkPastEvents(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE events SET is_upcoming = FALSE WHERE is_upcoming = TRUE AND date_time < $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

// loadSpaces populates the event's spaces with template names/colors and
// the booking user's email, ordered by space id for stable rendering.
func (r *eventRepository) loadSpaces(ctx context.Context, e *domain.Event) error {
	query := `SELECT s.id, s.space_template_id, s.event_id, t.name, t.color, s.user_id, COALESCE(u.email, '')
	          FROM spaces s
	          JOIN space_templates t ON s.space_template_id = t.id
	          LEFT JOIN users u ON s.user_id = u.id
	          WHERE s.event_id = $1 ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, query, e.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	e.Spaces = nil
	for rows.Next() {
		var sp domain.Space
		var color string
		var userID sql.NullInt64
		if err := rows.Scan(&sp.ID, &sp.TemplateID, &sp.EventID, &sp.Name, &color, &userID, &sp.BookedByEmail); err != nil {
			return err
		}
		sp.Color = domain.SpaceColor(color)
		if userID.Valid {
			sp.BookedByID = &userID.Int64
		}
		e.Spaces = append(e.Spaces, sp)
	}
	return rows.Err()
}
