package postgres

import (
	"context"
	"database/sql"
	"time"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/repository"
)

type spaceRepository struct {
	db *sql.DB
}

func NewSpaceRepository(db *sql.DB) repository.SpaceRepository {
	return &spaceRepository{db: db}
}

const spaceSelect = `SELECT s.id, s.space_template_id, s.event_id, t.name, t.color, s.user_id, COALESCE(u.email, '')
	FROM spaces s
	JOIN space_templates t ON s.space_template_id = t.id
	LEFT JOIN users u ON s.user_id = u.id`

func scanSpace(row interface{ Scan(...any) error }) (*domain.Space, error) {
	sp := &domain.Space{}
	var color string
	var userID sql.NullInt64
	err := row.Scan(&sp.ID, &sp.TemplateID, &sp.EventID, &sp.Name, &color, &userID, &sp.BookedByEmail)
	if err != nil {
		return nil, err
	}
	sp.Color = domain.SpaceColor(color)
	if userID.Valid {
		sp.BookedByID = &userID.Int64
	}
	return sp, nil
}

func (r *spaceRepository) GetByEventAndID(ctx context.Context, eventID, spaceID int64) (*domain.Space, error) {
	query := spaceSelect + ` WHERE s.event_id = $1 AND s.id = $2`
	return scanSpace(r.db.QueryRowContext(ctx, query, eventID, spaceID))
}

func (r *spaceRepository) GetByID(ctx context.Context, spaceID int64) (*domain.Space, error) {
	query := spaceSelect + ` WHERE s.id = $1`
	return scanSpace(r.db.QueryRowContext(ctx, query, spaceID))
}

func (r *spaceRepository) Exists(ctx context.Context, spaceID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM spaces WHERE id = $1)`, spaceID).Scan(&exists)
	return exists, err
}

func (r *spaceRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM spaces WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *spaceRepository) CountByUserAndEvent(ctx context.Context, userID, eventID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM spaces WHERE user_id = $1 AND event_id = $2`, userID, eventID).Scan(&count)
	return count, err
}

// Book assigns the space atomically so a concurrent booking of the same
// space cannot double-assign it; 0 rows means someone got there first.
func (r *spaceRepository) Book(ctx context.Context, eventID, spaceID, userID int64) (int64, error) {
	query := `UPDATE spaces SET user_id = $3 WHERE id = $2 AND event_id = $1 AND user_id IS NULL`
	res, err := r.db.ExecContext(ctx, query, eventID, spaceID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CancelIfOwnedByUser frees the space atomically, guarding against another
// request cancelling or rebooking it between validation and save.
func (r *spaceRepository) CancelIfOwnedByUser(ctx context.Context, spaceID, userID int64) (int64, error) {
	query := `UPDATE spaces SET user_id = NULL WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, spaceID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *spaceRepository) ListRemindersBetween(ctx context.Context, from, to time.Time) ([]repository.BookingReminder, error) {
	query := `SELECT u.email, u.first_name, e.city, e.date_time, t.name
		FROM spaces s
		JOIN users u ON s.user_id = u.id
		JOIN events e ON s.event_id = e.id
		JOIN space_templates t ON s.space_template_id = t.id
		WHERE e.cancelled = FALSE AND e.date_time >= $1 AND e.date_time < $2
		ORDER BY e.date_time, u.email`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []repository.BookingReminder
	for rows.Next() {
		var rem repository.BookingReminder
		if err := rows.Scan(&rem.Email, &rem.FirstName, &rem.City, &rem.DateTime, &rem.SpaceName); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}
