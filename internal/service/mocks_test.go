package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepo) ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *mockEventRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventRepo) ListAll(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventRepo) FirstCancelledAfter(ctx context.Context, t time.Time) (*domain.Event, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *mockEventRepo) FirstUpcomingAfter(ctx context.Context, t time.Time) (*domain.Event, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *mockEventRepo) MarkCancelled(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockEventRepo) MarkPastEvents(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockEventRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockSpaceRepo struct {
	mock.Mock
}

func (m *mockSpaceRepo) GetByEventAndID(ctx context.Context, eventID, spaceID int64) (*domain.Space, error) {
	args := m.Called(ctx, eventID, spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Space), args.Error(1)
}

func (m *mockSpaceRepo) GetByID(ctx context.Context, spaceID int64) (*domain.Space, error) {
	args := m.Called(ctx, spaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Space), args.Error(1)
}

func (m *mockSpaceRepo) Exists(ctx context.Context, spaceID int64) (bool, error) {
	args := m.Called(ctx, spaceID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSpaceRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockSpaceRepo) CountByUserAndEvent(ctx context.Context, userID, eventID int64) (int, error) {
	args := m.Called(ctx, userID, eventID)
	return args.Int(0), args.Error(1)
}

func (m *mockSpaceRepo) Book(ctx context.Context, eventID, spaceID, userID int64) (int64, error) {
	args := m.Called(ctx, eventID, spaceID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSpaceRepo) CancelIfOwnedByUser(ctx context.Context, spaceID, userID int64) (int64, error) {
	args := m.Called(ctx, spaceID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSpaceRepo) ListRemindersBetween(ctx context.Context, from, to time.Time) ([]repository.BookingReminder, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingReminder), args.Error(1)
}

type mockTemplateRepo struct {
	mock.Mock
}

func (m *mockTemplateRepo) Create(ctx context.Context, template *domain.SpaceTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *mockTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.SpaceTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpaceTemplate), args.Error(1)
}

func (m *mockTemplateRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.SpaceTemplate, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SpaceTemplate), args.Error(1)
}

func (m *mockTemplateRepo) List(ctx context.Context) ([]domain.SpaceTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SpaceTemplate), args.Error(1)
}

func (m *mockTemplateRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendRegistrationNotification(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockEmailService) SendStatusNotification(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockEmailService) SendEventReminder(ctx context.Context, email, firstName, city string, dateTime time.Time, spaceName string) error {
	args := m.Called(ctx, email, firstName, city, dateTime, spaceName)
	return args.Error(0)
}
