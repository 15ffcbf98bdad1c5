package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/repository"
)

var ErrInvalidStatus = errors.New("Invalid user status")

// temporary password for admin-created walk-in accounts, matching what the
// front desk hands out on paper.
const walkInPassword = "temp123"

type adminService struct {
	users  repository.UserRepository
	spaces repository.SpaceRepository
	emails EmailService
}

func NewAdminService(users repository.UserRepository, spaces repository.SpaceRepository, emails EmailService) AdminService {
	return &adminService{users: users, spaces: spaces, emails: emails}
}

func (s *adminService) SetUserStatus(ctx context.Context, userID int64, status domain.UserStatus) (*domain.User, error) {
	if _, ok := domain.ParseUserStatus(string(status)); !ok {
		return nil, ErrInvalidStatus
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user.Status = status
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logger.Info("User status changed", "user_id", userID, "email", user.Email, "status", status)
	s.notifyUser(user)
	return user, nil
}

func (s *adminService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *adminService) ListUsers(ctx context.Context, statusFilter string) ([]domain.User, []int, error) {
	var (
		users []domain.User
		err   error
	)
	if status, ok := domain.ParseUserStatus(statusFilter); ok {
		users, err = s.users.ListByStatus(ctx, status)
	} else {
		users, err = s.users.List(ctx)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}

	counts := make([]int, len(users))
	for i := range users {
		counts[i], err = s.spaces.CountByUser(ctx, users[i].ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to count bookings: %w", err)
		}
	}
	return users, counts, nil
}

func (s *adminService) UpdateUser(ctx context.Context, userID int64, update AdminUserUpdate) (*domain.User, int, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, fmt.Errorf("failed to load user: %w", err)
	}

	if update.Age != nil {
		user.Age = update.Age
	}
	if update.Location != nil {
		user.Location = *update.Location
	}
	if update.Height != nil {
		user.Height = *update.Height
	}
	if update.Size != nil {
		user.Size = *update.Size
	}
	if update.AdminComments != nil {
		user.AdminComments = *update.AdminComments
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, 0, fmt.Errorf("failed to update user: %w", err)
	}

	count, err := s.spaces.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return user, count, nil
}

func (s *adminService) CreateUser(ctx context.Context, params CreateUserParams) (*domain.User, error) {
	email := strings.TrimSpace(params.Email)
	if email == "" {
		// Walk-in guests often have no email on file yet; mint a
		// placeholder the admin can correct later.
		email = fmt.Sprintf("walkin-%s@velvetden.local", uuid.New().String()[:8])
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	password := params.Password
	if password == "" {
		password = walkInPassword
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	status, ok := domain.ParseUserStatus(params.Status)
	if !ok {
		status = domain.UserStatusApproved
	}

	user := &domain.User{
		Email:                 email,
		PasswordHash:          hash,
		FirstName:             params.FirstName,
		LastName:              params.LastName,
		Status:                status,
		VerificationImagePath: params.ImagePath,
		Age:                   params.Age,
		Location:              params.Location,
		Height:                params.Height,
		Size:                  params.Size,
		AdminComments:         params.AdminComments,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User created by admin", "email", user.Email, "user_id", user.ID, "status", status)
	return user, nil
}

func (s *adminService) notifyUser(user *domain.User) {
	if s.emails == nil {
		return
	}
	snapshot := *user
	go func() {
		if err := s.emails.SendStatusNotification(context.Background(), &snapshot); err != nil {
			logger.Error("Failed to send status notification", "email", snapshot.Email, "error", err)
		}
	}()
}
