package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"velvetden-backend/internal/booking"
	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/repository"
)

var (
	ErrInvalidSpaceCount = errors.New("An event must have between 1 and 6 spaces")
	ErrTemplateNotFound  = errors.New("Space template not found")
	ErrEventCancelled    = errors.New("Event is already cancelled")
)

type eventService struct {
	events    repository.EventRepository
	templates repository.SpaceTemplateRepository
	now       func() time.Time
}

func NewEventService(events repository.EventRepository, templates repository.SpaceTemplateRepository) EventService {
	return &eventService{events: events, templates: templates, now: time.Now}
}

// GetUpcomingEvent returns the next event by date, cancelled or not, so a
// cancellation notice still shows on the landing page. A live event wins a
// same-instant tie over a cancelled one. Nil means nothing is scheduled.
func (s *eventService) GetUpcomingEvent(ctx context.Context) (*domain.Event, error) {
	now := s.now()

	cancelled, err := s.events.FirstCancelledAfter(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load cancelled events: %w", err)
	}
	upcoming, err := s.events.FirstUpcomingAfter(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming events: %w", err)
	}

	switch {
	case upcoming == nil:
		return cancelled, nil
	case cancelled == nil:
		return upcoming, nil
	case cancelled.DateTime.Before(upcoming.DateTime):
		return cancelled, nil
	default:
		return upcoming, nil
	}
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) CreateEvent(ctx context.Context, city string, dateTime time.Time, spaceTemplateIDs []int64) (*domain.Event, error) {
	if len(spaceTemplateIDs) < 1 || len(spaceTemplateIDs) > 6 {
		return nil, ErrInvalidSpaceCount
	}

	templates, err := s.templates.GetByIDs(ctx, spaceTemplateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	byID := make(map[int64]domain.SpaceTemplate, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}

	event := &domain.Event{
		City:     city,
		DateTime: dateTime,
		Upcoming: dateTime.After(s.now()),
	}
	for _, id := range spaceTemplateIDs {
		tmpl, ok := byID[id]
		if !ok {
			return nil, ErrTemplateNotFound
		}
		event.Spaces = append(event.Spaces, domain.Space{
			TemplateID: tmpl.ID,
			Name:       tmpl.Name,
			Color:      tmpl.Color,
		})
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	logger.Info("Event created", "event_id", event.ID, "city", city, "spaces", len(event.Spaces))
	return event, nil
}

func (s *eventService) CancelEvent(ctx context.Context, eventID int64) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	if event.Cancelled {
		return nil, ErrEventCancelled
	}

	if err := s.events.MarkCancelled(ctx, eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to cancel event: %w", err)
	}

	event.Cancelled = true
	logger.Info("Event cancelled", "event_id", eventID, "city", event.City)
	return event, nil
}
