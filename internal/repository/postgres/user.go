package postgres

import (
	"context"
	"database/sql"
	"time"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, status,
	COALESCE(verification_image_path, ''), is_admin, age,
	COALESCE(location, ''), COALESCE(height, ''), COALESCE(size, ''),
	COALESCE(admin_comments, ''), created_at`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, first_name, last_name, status, verification_image_path, is_admin, age, location, height, size, admin_comments, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	return r.db.QueryRowContext(ctx, query,
		u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Status,
		u.VerificationImagePath, u.IsAdmin, u.Age, u.Location, u.Height,
		u.Size, u.AdminComments, u.CreatedAt,
	).Scan(&u.ID)
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	var status string
	var age sql.NullInt64
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&status, &u.VerificationImagePath, &u.IsAdmin, &age, &u.Location,
		&u.Height, &u.Size, &u.AdminComments, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	if parsed, ok := domain.ParseUserStatus(status); ok {
		u.Status = parsed
	} else {
		u.Status = domain.UserStatusInReview
	}
	if age.Valid {
		v := int(age.Int64)
		u.Age = &v
	}
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	return exists, err
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=$1, password_hash=$2, first_name=$3, last_name=$4, status=$5, verification_image_path=$6, age=$7, location=$8, height=$9, size=$10, admin_comments=$11 WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query,
		u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Status,
		u.VerificationImagePath, u.Age, u.Location, u.Height, u.Size,
		u.AdminComments, u.ID)
	return err
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	return r.queryUsers(ctx, query)
}

func (r *userRepository) ListByStatus(ctx context.Context, status domain.UserStatus) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE status = $1 ORDER BY created_at DESC`
	return r.queryUsers(ctx, query, status)
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
