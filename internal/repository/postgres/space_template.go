package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/repository"
)

type spaceTemplateRepository struct {
	db *sql.DB
}

func NewSpaceTemplateRepository(db *sql.DB) repository.SpaceTemplateRepository {
	return &spaceTemplateRepository{db: db}
}

func (r *spaceTemplateRepository) Create(ctx context.Context, t *domain.SpaceTemplate) error {
	query := `INSERT INTO space_templates (name, color, description) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.Name, t.Color, t.Description).Scan(&t.ID)
}

func (r *spaceTemplateRepository) GetByID(ctx context.Context, id int64) (*domain.SpaceTemplate, error) {
	t := &domain.SpaceTemplate{}
	var color string
	query := `SELECT id, name, color, COALESCE(description, '') FROM space_templates WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &color, &t.Description)
	if err != nil {
		return nil, err
	}
	t.Color = domain.SpaceColor(color)
	return t, nil
}

func (r *spaceTemplateRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.SpaceTemplate, error) {
	query := `SELECT id, name, color, COALESCE(description, '') FROM space_templates WHERE id = ANY($1) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTemplates(rows)
}

func (r *spaceTemplateRepository) List(ctx context.Context) ([]domain.SpaceTemplate, error) {
	query := `SELECT id, name, color, COALESCE(description, '') FROM space_templates ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTemplates(rows)
}

func (r *spaceTemplateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM space_templates`).Scan(&count)
	return count, err
}

func collectTemplates(rows *sql.Rows) ([]domain.SpaceTemplate, error) {
	var templates []domain.SpaceTemplate
	for rows.Next() {
		var t domain.SpaceTemplate
		var color string
		if err := rows.Scan(&t.ID, &t.Name, &color, &t.Description); err != nil {
			return nil, err
		}
		t.Color = domain.SpaceColor(color)
		templates = append(templates, t)
	}
	return templates, rows.Err()
}
