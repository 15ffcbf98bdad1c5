package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"velvetden-backend/internal/domain"
)

func TestEventRepository_CreateInsertsSpacesInOneTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEventRepository(db)
	ctx := context.Background()

	event := &domain.Event{
		City:     "San Francisco",
		DateTime: time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC),
		Upcoming: true,
		Spaces: []domain.Space{
			{TemplateID: 1, Name: "Buddy", Color: domain.SpaceColorGreen},
			{TemplateID: 2, Name: "Max", Color: domain.SpaceColorYellow},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO events").
		WithArgs(event.City, event.DateTime, true, false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("INSERT INTO spaces").
		WithArgs(int64(7), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(71))
	mock.ExpectQuery("INSERT INTO spaces").
		WithArgs(int64(7), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(72))
	mock.ExpectCommit()

	err = repo.Create(ctx, event)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), event.ID)
	assert.Equal(t, int64(71), event.Spaces[0].ID)
	assert.Equal(t, int64(7), event.Spaces[1].EventID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_FirstUpcomingAfterNone(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEventRepository(db)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM events`).
		WithArgs(now).
		WillReturnError(sql.ErrNoRows)

	event, err := repo.FirstUpcomingAfter(ctx, now)
	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestEventRepository_MarkCancelledMissingEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEventRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE events SET cancelled = TRUE WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkCancelled(ctx, 404)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestEventRepository_MarkPastEvents(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewEventRepository(db)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectExec(`UPDATE events SET is_upcoming = FALSE`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	changed, err := repo.MarkPastEvents(ctx, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), changed)
}
