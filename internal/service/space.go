package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"velvetden-backend/internal/booking"
	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/repository"
)

type spaceService struct {
	spaces repository.SpaceRepository
	events repository.EventRepository
}

func NewSpaceService(spaces repository.SpaceRepository, events repository.EventRepository) SpaceService {
	return &spaceService{spaces: spaces, events: events}
}

func (s *spaceService) BookSpace(ctx context.Context, eventID, spaceID int64, user *domain.User) (*domain.Space, error) {
	if !user.Approved() {
		return nil, booking.ErrNotApproved
	}
	return s.book(ctx, eventID, spaceID, user, booking.ErrOneSpacePerEvent)
}

func (s *spaceService) BookSpaceForUser(ctx context.Context, eventID, spaceID int64, user *domain.User) (*domain.Space, error) {
	return s.book(ctx, eventID, spaceID, user, booking.ErrUserAlreadyBooked)
}

// book runs the shared validation chain. The caller picks which error to
// surface when the user already holds a space on this event, since the self
// and admin flows phrase it differently.
func (s *spaceService) book(ctx context.Context, eventID, spaceID int64, user *domain.User, limitErr error) (*domain.Space, error) {
	count, err := s.spaces.CountByUserAndEvent(ctx, user.ID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	if count > 0 {
		return nil, limitErr
	}

	exists, err := s.events.Exists(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return nil, booking.ErrEventNotFound
	}

	space, err := s.spaces.GetByEventAndID(ctx, eventID, spaceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrSpaceNotFound
		}
		return nil, fmt.Errorf("failed to load space: %w", err)
	}
	if !space.Available() {
		return nil, booking.ErrSpaceAlreadyBooked
	}

	affected, err := s.spaces.Book(ctx, eventID, spaceID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to book space: %w", err)
	}
	if affected == 0 {
		// Someone else won the race between the read and the update.
		return nil, booking.ErrSpaceAlreadyBooked
	}

	space.BookedByID = &user.ID
	space.BookedByEmail = user.Email
	logger.Info("Space booked", "event_id", eventID, "space_id", spaceID, "user", user.Email)
	return space, nil
}

func (s *spaceService) CancelBooking(ctx context.Context, spaceID int64, user *domain.User) error {
	exists, err := s.spaces.Exists(ctx, spaceID)
	if err != nil {
		return fmt.Errorf("failed to check space: %w", err)
	}
	if !exists {
		return booking.ErrSpaceNotFound
	}

	affected, err := s.spaces.CancelIfOwnedByUser(ctx, spaceID, user.ID)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if affected > 0 {
		logger.Info("Booking cancelled", "space_id", spaceID, "user", user.Email)
		return nil
	}

	// Nothing changed; distinguish an unbooked space from someone else's.
	space, err := s.spaces.GetByID(ctx, spaceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking.ErrSpaceNotFound
		}
		return fmt.Errorf("failed to load space: %w", err)
	}
	if space.BookedByID == nil {
		return booking.ErrSpaceNotBooked
	}
	return booking.ErrNotYourBooking
}
