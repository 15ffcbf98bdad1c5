package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/security"
)

func testTokenManager() security.TokenManager {
	return security.NewTokenManager("unit-test-secret-unit-test-secret!!!", 60)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "verified@example.com").Return(&domain.User{
		ID:           1,
		Email:        "verified@example.com",
		PasswordHash: hash,
		Status:       domain.UserStatusApproved,
	}, nil)

	svc := NewAuthService(users, testTokenManager())

	user, token, err := svc.Login(context.Background(), "verified@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "verified@example.com", user.Email)
	assert.NotEmpty(t, token)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "verified@example.com").Return(&domain.User{
		Email:        "verified@example.com",
		PasswordHash: hash,
	}, nil)

	svc := NewAuthService(users, testTokenManager())

	_, _, err = svc.Login(context.Background(), "verified@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, sql.ErrNoRows)

	svc := NewAuthService(users, testTokenManager())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_TokenCarriesAdminFlag(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(&domain.User{
		Email:        "admin@example.com",
		PasswordHash: hash,
		IsAdmin:      true,
	}, nil)

	tm := testTokenManager()
	svc := NewAuthService(users, tm)

	_, token, err := svc.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "admin@example.com", claims.Email)
}
