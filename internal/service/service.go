package service

import (
	"context"
	"time"

	"velvetden-backend/internal/domain"
)

type AuthService interface {
	// Login verifies credentials and returns the user with a signed access
	// token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

// ProfileUpdate carries the optional self-service profile fields; nil means
// "leave unchanged".
type ProfileUpdate struct {
	Age      *int
	Location *string
	Height   *string
	Size     *string
}

type UserService interface {
	Register(ctx context.Context, email, password, firstName, lastName, imagePath string) (*domain.User, error)
	GetProfile(ctx context.Context, userID int64) (*domain.User, int, error)
	UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*domain.User, int, error)
	// UpdateVerificationImage replaces the verification image and puts the
	// account back in review. Only allowed while a new picture is requested.
	UpdateVerificationImage(ctx context.Context, userID int64, imagePath string) (*domain.User, error)
}

type EventService interface {
	GetUpcomingEvent(ctx context.Context) (*domain.Event, error)
	GetAllEvents(ctx context.Context) ([]domain.Event, error)
	CreateEvent(ctx context.Context, city string, dateTime time.Time, spaceTemplateIDs []int64) (*domain.Event, error)
	CancelEvent(ctx context.Context, eventID int64) (*domain.Event, error)
}

type SpaceService interface {
	BookSpace(ctx context.Context, eventID, spaceID int64, user *domain.User) (*domain.Space, error)
	// BookSpaceForUser is the admin equivalent: the approval gate does not
	// apply, the one-space limit still does.
	BookSpaceForUser(ctx context.Context, eventID, spaceID int64, user *domain.User) (*domain.Space, error)
	CancelBooking(ctx context.Context, spaceID int64, user *domain.User) error
}

type SpaceTemplateService interface {
	ListTemplates(ctx context.Context) ([]domain.SpaceTemplate, error)
	GetTemplate(ctx context.Context, id int64) (*domain.SpaceTemplate, error)
	CreateTemplate(ctx context.Context, name string, color domain.SpaceColor, description string) (*domain.SpaceTemplate, error)
}

// AdminUserUpdate carries the fields an admin may edit on a user record.
type AdminUserUpdate struct {
	Age           *int
	Location      *string
	Height        *string
	Size          *string
	AdminComments *string
}

// CreateUserParams is the admin walk-in creation form; empty email and
// password fall back to generated values.
type CreateUserParams struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	Status        string
	ImagePath     string
	Age           *int
	Location      string
	Height        string
	Size          string
	AdminComments string
}

type AdminService interface {
	SetUserStatus(ctx context.Context, userID int64, status domain.UserStatus) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListUsers returns users with their booked-space counts; an invalid
	// status filter falls back to the unfiltered list.
	ListUsers(ctx context.Context, statusFilter string) ([]domain.User, []int, error)
	UpdateUser(ctx context.Context, userID int64, update AdminUserUpdate) (*domain.User, int, error)
	CreateUser(ctx context.Context, params CreateUserParams) (*domain.User, error)
}

type EmailService interface {
	// SendRegistrationNotification tells the admin a new registration (or
	// re-uploaded picture) is awaiting review, verification image attached.
	SendRegistrationNotification(ctx context.Context, user *domain.User) error
	// SendStatusNotification tells a user their review status changed.
	SendStatusNotification(ctx context.Context, user *domain.User) error
	// SendEventReminder reminds a booked user of an imminent event.
	SendEventReminder(ctx context.Context, email, firstName, city string, dateTime time.Time, spaceName string) error
}
