package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/repository"
)

var (
	ErrEmailTaken          = errors.New("Email already registered")
	ErrUserNotFound        = errors.New("User not found")
	ErrPictureNotRequested = errors.New("A new picture has not been requested for this account")
)

type userService struct {
	users  repository.UserRepository
	spaces repository.SpaceRepository
	emails EmailService
}

func NewUserService(users repository.UserRepository, spaces repository.SpaceRepository, emails EmailService) UserService {
	return &userService{users: users, spaces: spaces, emails: emails}
}

func (s *userService) Register(ctx context.Context, email, password, firstName, lastName, imagePath string) (*domain.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:                 email,
		PasswordHash:          hash,
		FirstName:             firstName,
		LastName:              lastName,
		Status:                domain.UserStatusInReview,
		VerificationImagePath: imagePath,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User registered", "email", user.Email, "user_id", user.ID)
	s.notifyAdmin(user)
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (*domain.User, int, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, fmt.Errorf("failed to load user: %w", err)
	}

	count, err := s.spaces.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return user, count, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*domain.User, int, error) {
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

	if err := s.users.Update(ctx, user); err != nil {
		return nil, 0, fmt.Errorf("failed to update user: %w", err)
	}

	count, err := s.spaces.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return user, count, nil
}

func (s *userService) UpdateVerificationImage(ctx context.Context, userID int64, imagePath string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user.Status != domain.UserStatusPictureRequested {
		return nil, ErrPictureNotRequested
	}

	user.VerificationImagePath = imagePath
	user.Status = domain.UserStatusInReview
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logger.Info("Verification picture replaced", "email", user.Email, "user_id", user.ID)
	s.notifyAdmin(user)
	return user, nil
}

// notifyAdmin sends the review notification in the background; a mail
// failure must never fail the request that triggered it.
func (s *userService) notifyAdmin(user *domain.User) {
	if s.emails == nil {
		return
	}
	snapshot := *user
	go func() {
		if err := s.emails.SendRegistrationNotification(context.Background(), &snapshot); err != nil {
			logger.Error("Failed to send registration notification", "email", snapshot.Email, "error", err)
		}
	}()
}
