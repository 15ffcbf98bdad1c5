package seed

import (
	"context"
	"fmt"
	"time"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/repository/postgres"
	"velvetden-backend/internal/service"
)

// Run inserts demo data for local development: an admin, one approved and
// one pending user, six space templates and an upcoming event built from
// them. Existing rows are left alone, so running it twice is safe.
func Run(ctx context.Context, store *postgres.Store) error {
	if err := seedUsers(ctx, store); err != nil {
		return err
	}
	templates, err := seedTemplates(ctx, store)
	if err != nil {
		return err
	}
	return seedEvent(ctx, store, templates)
}

func seedUsers(ctx context.Context, store *postgres.Store) error {
	demo := []struct {
		email    string
		password string
		first    string
		last     string
		status   domain.UserStatus
		isAdmin  bool
	}{
		{"admin@example.com", "admin123", "Ada", "Admin", domain.UserStatusApproved, true},
		{"verified@example.com", "password123", "Vera", "Verified", domain.UserStatusApproved, false},
		{"pending@example.com", "password123", "Pat", "Pending", domain.UserStatusInReview, false},
	}

	for _, d := range demo {
		exists, err := store.UserRepository.ExistsByEmail(ctx, d.email)
		if err != nil {
			return fmt.Errorf("failed to check demo user: %w", err)
		}
		if exists {
			continue
		}

		hash, err := service.HashPassword(d.password)
		if err != nil {
			return err
		}
		user := &domain.User{
			Email:        d.email,
			PasswordHash: hash,
			FirstName:    d.first,
			LastName:     d.last,
			Status:       d.status,
			IsAdmin:      d.isAdmin,
		}
		if err := store.UserRepository.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", d.email, err)
		}
		logger.Info("Seeded demo user", "email", d.email, "status", d.status)
	}
	return nil
}

func seedTemplates(ctx context.Context, store *postgres.Store) ([]domain.SpaceTemplate, error) {
	count, err := store.SpaceTemplateRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count templates: %w", err)
	}
	if count > 0 {
		return store.SpaceTemplateRepository.List(ctx)
	}

	demo := []domain.SpaceTemplate{
		{Name: "Buddy", Color: domain.SpaceColorGreen},
		{Name: "Max", Color: domain.SpaceColorYellow},
		{Name: "Rocky", Color: domain.SpaceColorOrange},
		{Name: "Charlie", Color: domain.SpaceColorBlue},
		{Name: "Duke", Color: domain.SpaceColorPurple},
		{Name: "Cooper", Color: domain.SpaceColorWhite},
	}

	templates := make([]domain.SpaceTemplate, 0, len(demo))
	for _, t := range demo {
		tmpl := t
		if err := store.SpaceTemplateRepository.Create(ctx, &tmpl); err != nil {
			return nil, fmt.Errorf("failed to seed template %s: %w", t.Name, err)
		}
		templates = append(templates, tmpl)
	}
	logger.Info("Seeded space templates", "count", len(templates))
	return templates, nil
}

func seedEvent(ctx context.Context, store *postgres.Store, templates []domain.SpaceTemplate) error {
	count, err := store.EventRepository.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count events: %w", err)
	}
	if count > 0 || len(templates) == 0 {
		return nil
	}

	event := &domain.Event{
		City:     "San Francisco",
		DateTime: time.Now().UTC().AddDate(0, 0, 30).Truncate(time.Hour),
		Upcoming: true,
	}
	for _, t := range templates {
		event.Spaces = append(event.Spaces, domain.Space{
			TemplateID: t.ID,
			Name:       t.Name,
			Color:      t.Color,
		})
	}
	if err := store.EventRepository.Create(ctx, event); err != nil {
		return fmt.Errorf("failed to seed event: %w", err)
	}
	logger.Info("Seeded demo event", "city", event.City, "date", event.DateTime, "spaces", len(event.Spaces))
	return nil
}
