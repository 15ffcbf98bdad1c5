package postgres

import (
	"database/sql"

	"velvetden-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.EventRepository
	repository.SpaceRepository
	repository.SpaceTemplateRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		EventRepository:         NewEventRepository(db),
		SpaceRepository:         NewSpaceRepository(db),
		SpaceTemplateRepository: NewSpaceTemplateRepository(db),
	}
}
