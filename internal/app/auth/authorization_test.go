package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
)

type stubUsers map[int64]*models.User

func (s stubUsers) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

type stubStudents map[string]*models.Student

func (s stubStudents) GetStudentByID(_ context.Context, id string) (*models.Student, error) {
	if st, ok := s[id]; ok {
		return st, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func TestResolvePermission(t *testing.T) {
	svc := NewAuthorizationService(stubUsers{
		1: {ID: 1, Role: models.RoleTeacher, AssignedClasses: []string{"一年甲班"}, IsActive: true},
		2: {ID: 2, Role: models.RoleTeacher, IsActive: false},
	}, stubStudents{})

	perm, err := svc.ResolvePermission(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, perm.Role)
	assert.Equal(t, []string{"一年甲班"}, perm.AssignedClasses)

	_, err = svc.ResolvePermission(context.Background(), 2)
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)

	_, err = svc.ResolvePermission(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAuthorizeStudent(t *testing.T) {
	moved := "二年乙班"
	svc := NewAuthorizationService(stubUsers{}, stubStudents{
		"S1": {StudentID: "S1", ClassName: "一年甲班"},
		"S2": {StudentID: "S2", ClassName: "一年甲班", CurrentClass: &moved},
	})
	teacher := models.Permission{Role: models.RoleTeacher, AssignedClasses: []string{"一年甲班"}}

	st, err := svc.AuthorizeStudent(context.Background(), teacher, "S1")
	require.NoError(t, err)
	assert.Equal(t, "S1", st.StudentID)

	_, err = svc.AuthorizeStudent(context.Background(), teacher, "S2")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.AuthorizeStudent(context.Background(), models.Permission{Role: models.RoleAdmin}, "S2")
	assert.NoError(t, err)

	_, err = svc.AuthorizeStudent(context.Background(), teacher, "missing")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
