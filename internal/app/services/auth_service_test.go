package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/auth"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeUsers, *auth.JWTService) {
	t.Helper()
	users := newFakeUsers(
		&models.User{ID: 1, Email: "admin@school.tw", Password: mustHash(t, "secret-admin"), Name: "教務處", Role: models.RoleAdmin, IsActive: true},
		&models.User{ID: 2, Email: "lin@school.tw", Password: mustHash(t, "secret-lin"), Name: "林老師", Role: models.RoleTeacher, AssignedClasses: []string{"一年甲班"}, IsActive: true},
		&models.User{ID: 3, Email: "gone@school.tw", Password: mustHash(t, "secret-gone"), Name: "離職", Role: models.RoleTeacher, IsActive: false},
	)
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", AccessTokenExp: time.Hour, TokenIssuer: "homeroom-test"})
	return NewAuthService(users, jwtService, zerolog.Nop()), users, jwtService
}

func TestLogin(t *testing.T) {
	svc, users, jwtService := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "lin@school.tw", Password: "secret-lin"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, []string{"一年甲班"}, resp.User.AssignedClasses)
	assert.NotNil(t, users.users[2].LastLoginAt)

	claims, err := jwtService.ValidateAndExtractClaims(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, claims.Role)
	assert.Equal(t, int64(2), claims.UserID)
}

func TestLoginFailures(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	tests := []struct {
		name    string
		req     dto.LoginRequest
		wantErr error
	}{
		{"unknown email", dto.LoginRequest{Email: "who@school.tw", Password: "x"}, apperrors.ErrInvalidCredentials},
		{"wrong password", dto.LoginRequest{Email: "lin@school.tw", Password: "nope"}, apperrors.ErrInvalidCredentials},
		{"disabled account", dto.LoginRequest{Email: "gone@school.tw", Password: "secret-gone"}, apperrors.ErrAccountDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateUserNormalises(t *testing.T) {
	svc, users, _ := newAuthFixture(t)

	resp, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Email:           " Chen@School.TW ",
		Password:        "password-1",
		Name:            "陳老師",
		Role:            "part-time",
		AssignedClasses: []string{"一年甲班", " 一年甲班", "", "二年乙班"},
	})
	require.NoError(t, err)
	assert.Equal(t, "chen@school.tw", resp.Email)
	assert.Equal(t, []string{"一年甲班", "二年乙班"}, resp.AssignedClasses)
	assert.True(t, auth.CheckPassword(users.users[resp.ID].Password, "password-1"))

	_, err = svc.CreateUser(context.Background(), &dto.CreateUserRequest{Email: "chen@school.tw", Password: "password-1", Name: "x", Role: "teacher"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLastAdminIsProtected(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()
	teacher := string(models.RoleTeacher)
	inactive := false

	_, err := svc.UpdateUser(ctx, 1, &dto.UpdateUserRequest{Role: &teacher})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	_, err = svc.UpdateUser(ctx, 1, &dto.UpdateUserRequest{IsActive: &inactive})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	other := Actor{UserID: 2, Permission: models.Permission{Role: models.RoleAdmin}}
	assert.ErrorIs(t, svc.DeleteUser(ctx, other, 1), apperrors.ErrConflict)

	admin := string(models.RoleAdmin)
	_, err = svc.UpdateUser(ctx, 2, &dto.UpdateUserRequest{Role: &admin})
	require.NoError(t, err)
	_, err = svc.UpdateUser(ctx, 1, &dto.UpdateUserRequest{Role: &teacher})
	require.NoError(t, err)
}

func TestDeleteUser(t *testing.T) {
	svc, users, _ := newAuthFixture(t)

	err := svc.DeleteUser(context.Background(), adminActor, adminActor.UserID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	require.NoError(t, svc.DeleteUser(context.Background(), adminActor, 3))
	assert.NotContains(t, users.users, int64(3))

	err = svc.DeleteUser(context.Background(), adminActor, 3)
	assert.True(t, errors.Is(err, apperrors.ErrUserNotFound))
}

func TestMe(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	me, err := svc.Me(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "林老師", me.Name)
	assert.Equal(t, models.RoleTeacher, me.Role)

	list, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
