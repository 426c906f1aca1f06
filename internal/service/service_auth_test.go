package service

import (
	"context"
	"errors"
	"testing"

	"github.com/backmeup/credstore/internal/logger"
	"github.com/backmeup/credstore/internal/mock"
	"github.com/backmeup/credstore/internal/store"
	"github.com/backmeup/credstore/internal/utils"
	"github.com/backmeup/credstore/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(mockRepo, logger.Nop())
	return svc, mockRepo
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{
		Username: "john",
		Email:    "john@backmeup.com",
		FullName: "John Doe",
	}

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEqual(t, "secret-password", u.Password, "plaintext must never reach the repository")
			assert.True(t, utils.CheckPassword(u.Password, "secret-password"))
			assert.True(t, u.IsActive)
			assert.Empty(t, u.Role, "unset role is left to the schema default")
			u.ID = 1
			u.Role = models.RoleUser
			return u, nil
		},
	)

	registered, err := svc.Register(ctx, user, "secret-password")
	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.ID)
	assert.Equal(t, models.RoleUser, registered.Role)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	tests := []struct {
		name     string
		user     models.User
		password string
	}{
		{"no username", models.User{Email: "a@b.com"}, "secret-password"},
		{"no email", models.User{Username: "john"}, "secret-password"},
		{"no password", models.User{Username: "john", Email: "a@b.com"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.user, tt.password)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_PasswordTooShort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.Register(context.Background(), models.User{Username: "john", Email: "a@b.com"}, "12345")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.Register(ctx, models.User{Username: "john", Email: "a@b.com"}, "secret-password")
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	stored := models.User{
		ID:       1,
		Username: "john",
		Password: hash,
		IsActive: true,
		Role:     models.RoleUser,
	}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByUsername(ctx, "john").Return(stored, nil),
		mockRepo.EXPECT().UpdateLastLogin(ctx, int64(1)).Return(nil),
	)

	user, err := svc.Login(ctx, "john", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "john", user.Username)
}

func TestAuthService_Login_LastLoginStampFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	stored := models.User{ID: 1, Username: "john", Password: hash, IsActive: true}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByUsername(ctx, "john").Return(stored, nil),
		mockRepo.EXPECT().UpdateLastLogin(ctx, int64(1)).Return(errors.New("transient db error")),
	)

	_, err = svc.Login(ctx, "john", "secret-password")
	require.NoError(t, err)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "secret-password")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(ctx, "john", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByUsername(ctx, "ghost").
		Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, "ghost", "secret-password")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	stored := models.User{ID: 1, Username: "john", Password: hash, IsActive: false}

	mockRepo.EXPECT().FindUserByUsername(ctx, "john").Return(stored, nil)

	_, err = svc.Login(ctx, "john", "secret-password")
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)

	stored := models.User{ID: 1, Username: "john", Password: hash, IsActive: true}

	mockRepo.EXPECT().FindUserByUsername(ctx, "john").Return(stored, nil)

	_, err = svc.Login(ctx, "john", "not-the-password")
	assert.ErrorIs(t, err, ErrWrongPassword)
}
