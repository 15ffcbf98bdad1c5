package repository

import (
	"context"
	"time"

	"velvetden-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error)
}

type EventRepository interface {
	// Create persists the event together with its spaces.
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// ListAll returns all events, newest first, with spaces populated.
	ListAll(ctx context.Context) ([]domain.Event, error)
	// FirstCancelledAfter returns the earliest cancelled event with a date
	// after t, or nil if there is none.
	FirstCancelledAfter(ctx context.Context, t time.Time) (*domain.Event, error)
	// FirstUpcomingAfter returns the earliest upcoming, non-cancelled event
	// with a date after t, or nil if there is none.
	FirstUpcomingAfter(ctx context.Context, t time.Time) (*domain.Event, error)
	MarkCancelled(ctx context.Context, id int64) error
	// MarkPastEvents clears the upcoming flag on events whose date has
	// passed and returns how many rows changed.
	MarkPastEvents(ctx context.Context, now time.Time) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// BookingReminder is one booked space on an upcoming event, flattened for
// the reminder mailer.
type BookingReminder struct {
	Email     string
	FirstName string
	City      string
	DateTime  time.Time
	SpaceName string
}

type SpaceRepository interface {
	GetByEventAndID(ctx context.Context, eventID, spaceID int64) (*domain.Space, error)
	GetByID(ctx context.Context, spaceID int64) (*domain.Space, error)
	Exists(ctx context.Context, spaceID int64) (bool, error)
	// CountByUser counts spaces currently booked by the user across events.
	CountByUser(ctx context.Context, userID int64) (int, error)
	// CountByUserAndEvent counts spaces the user holds on one event.
	CountByUserAndEvent(ctx context.Context, userID, eventID int64) (int, error)
	// Book assigns the space to the user only if it is still unbooked;
	// returns the number of rows changed (0 means it was taken).
	Book(ctx context.Context, eventID, spaceID, userID int64) (int64, error)
	// CancelIfOwnedByUser frees the space only if this user holds it;
	// returns the number of rows changed.
	CancelIfOwnedByUser(ctx context.Context, spaceID, userID int64) (int64, error)
	// ListRemindersBetween returns one row per booked space on a live event
	// starting inside the window.
	ListRemindersBetween(ctx context.Context, from, to time.Time) ([]BookingReminder, error)
}

type SpaceTemplateRepository interface {
	Create(ctx context.Context, template *domain.SpaceTemplate) error
	GetByID(ctx context.Context, id int64) (*domain.SpaceTemplate, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.SpaceTemplate, error)
	List(ctx context.Context) ([]domain.SpaceTemplate, error)
	Count(ctx context.Context) (int64, error)
}
