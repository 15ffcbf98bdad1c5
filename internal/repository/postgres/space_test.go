package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSpaceRepository_Book(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSpaceRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE spaces SET user_id = \$3 WHERE id = \$2 AND event_id = \$1 AND user_id IS NULL`).
			WithArgs(int64(1), int64(2), int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.Book(ctx, 1, 2, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("AlreadyTaken", func(t *testing.T) {
		mock.ExpectExec(`UPDATE spaces SET user_id = \$3 WHERE id = \$2 AND event_id = \$1 AND user_id IS NULL`).
			WithArgs(int64(1), int64(2), int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.Book(ctx, 1, 2, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestSpaceRepository_CancelIfOwnedByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSpaceRepository(db)
	ctx := context.Background()

	t.Run("Owned", func(t *testing.T) {
		mock.ExpectExec(`UPDATE spaces SET user_id = NULL WHERE id = \$1 AND user_id = \$2`).
			WithArgs(int64(2), int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		affected, err := repo.CancelIfOwnedByUser(ctx, 2, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	})

	t.Run("NotOwned", func(t *testing.T) {
		mock.ExpectExec(`UPDATE spaces SET user_id = NULL WHERE id = \$1 AND user_id = \$2`).
			WithArgs(int64(2), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		affected, err := repo.CancelIfOwnedByUser(ctx, 2, 99)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})
}

func TestSpaceRepository_GetByEventAndID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSpaceRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "space_template_id", "event_id", "name", "color", "user_id", "email"}).
		AddRow(2, 1, 1, "Buddy", "GREEN", 10, "user@example.com")

	mock.ExpectQuery(`SELECT (.+) FROM spaces s`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(rows)

	space, err := repo.GetByEventAndID(ctx, 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, "Buddy", space.Name)
	assert.False(t, space.Available())
	assert.Equal(t, int64(10), *space.BookedByID)
	assert.Equal(t, "user@example.com", space.BookedByEmail)
}

func TestSpaceRepository_CountByUserAndEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSpaceRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM spaces WHERE user_id = \$1 AND event_id = \$2`).
		WithArgs(int64(10), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountByUserAndEvent(ctx, 10, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSpaceRepository_ListRemindersBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewSpaceRepository(db)
	ctx := context.Background()

	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	rows := sqlmock.NewRows([]string{"email", "first_name", "city", "date_time", "name"}).
		AddRow("user@example.com", "Vera", "San Francisco", from.Add(12*time.Hour), "Buddy")

	mock.ExpectQuery(`SELECT (.+) FROM spaces s`).
		WithArgs(from, to).
		WillReturnRows(rows)

	reminders, err := repo.ListRemindersBetween(ctx, from, to)
	assert.NoError(t, err)
	assert.Len(t, reminders, 1)
	assert.Equal(t, "Vera", reminders[0].FirstName)
	assert.Equal(t, "Buddy", reminders[0].SpaceName)
}
