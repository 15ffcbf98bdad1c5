package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/repository"
)

type spaceTemplateService struct {
	templates repository.SpaceTemplateRepository
}

func NewSpaceTemplateService(templates repository.SpaceTemplateRepository) SpaceTemplateService {
	return &spaceTemplateService{templates: templates}
}

func (s *spaceTemplateService) ListTemplates(ctx context.Context) ([]domain.SpaceTemplate, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (s *spaceTemplateService) CreateTemplate(ctx context.Context, name string, color domain.SpaceColor, description string) (*domain.SpaceTemplate, error) {
	template := &domain.SpaceTemplate{Name: name, Color: color, Description: description}
	if err := s.templates.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return template, nil
}

func (s *spaceTemplateService) GetTemplate(ctx context.Context, id int64) (*domain.SpaceTemplate, error) {
	template, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return template, nil
}
