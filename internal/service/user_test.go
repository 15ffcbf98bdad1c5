package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"velvetden-backend/internal/domain"
)

func TestUserService_Register(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" &&
			u.Status == domain.UserStatusInReview &&
			u.VerificationImagePath == "uploads/abc.jpg" &&
			u.PasswordHash != "" && u.PasswordHash != "password123"
	})).Return(nil)

	svc := NewUserService(users, new(mockSpaceRepo), nil)

	user, err := svc.Register(context.Background(), "new@example.com", "password123", "Ada", "Lovelace", "uploads/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusInReview, user.Status)
	users.AssertExpectations(t)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := NewUserService(users, new(mockSpaceRepo), nil)

	_, err := svc.Register(context.Background(), "taken@example.com", "pw", "A", "B", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_GetProfileIncludesBookingCount(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Email: "u@example.com"}, nil)

	spaces := new(mockSpaceRepo)
	spaces.On("CountByUser", mock.Anything, int64(7)).Return(2, nil)

	svc := NewUserService(users, spaces, nil)

	user, count, err := svc.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "u@example.com", user.Email)
	assert.Equal(t, 2, count)
}

func TestUserService_UpdateProfilePartial(t *testing.T) {
	age := 30
	existingAge := 25
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{
		ID: 7, Age: &existingAge, Location: "Berlin", Height: "170cm",
	}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		// Only age changes; untouched fields keep their values.
		return *u.Age == 30 && u.Location == "Berlin" && u.Height == "170cm"
	})).Return(nil)

	spaces := new(mockSpaceRepo)
	spaces.On("CountByUser", mock.Anything, int64(7)).Return(0, nil)

	svc := NewUserService(users, spaces, nil)

	user, _, err := svc.UpdateProfile(context.Background(), 7, ProfileUpdate{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, 30, *user.Age)
	users.AssertExpectations(t)
}

func TestUserService_UpdateVerificationImage(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{
		ID:     3,
		Status: domain.UserStatusPictureRequested,
	}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Status == domain.UserStatusInReview && u.VerificationImagePath == "uploads/new.jpg"
	})).Return(nil)

	svc := NewUserService(users, new(mockSpaceRepo), nil)

	user, err := svc.UpdateVerificationImage(context.Background(), 3, "uploads/new.jpg")
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusInReview, user.Status)
}

func TestUserService_UpdateVerificationImageNotRequested(t *testing.T) {
	for _, status := range []domain.UserStatus{
		domain.UserStatusInReview,
		domain.UserStatusApproved,
		domain.UserStatusRejected,
	} {
		users := new(mockUserRepo)
		users.On("GetByID", mock.Anything, int64(3)).Return(&domain.User{ID: 3, Status: status}, nil)

		svc := NewUserService(users, new(mockSpaceRepo), nil)

		_, err := svc.UpdateVerificationImage(context.Background(), 3, "uploads/new.jpg")
		assert.ErrorIs(t, err, ErrPictureNotRequested, "status %s", status)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	}
}
