package auth

import (
	"context"
	"errors"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/logger"
)

type userReader interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type studentReader interface {
	GetStudentByID(ctx context.Context, studentID string) (*models.Student, error)
}

// AuthorizationService resolves the current reader and checks access to
// single students and classes.
type AuthorizationService struct {
	users    userReader
	students studentReader
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(users userReader, students studentReader) *AuthorizationService {
	return &AuthorizationService{users: users, students: students}
}

// ResolvePermission loads the current role and classes of a user. Tokens
// carry a copy, but an admin may have changed them since it was issued.
func (s *AuthorizationService) ResolvePermission(ctx context.Context, userID int64) (models.Permission, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Error().Err(err).Int64("userID", userID).Msg("Error loading user for permission check")
		}
		return models.Permission{}, err
	}
	if !user.IsActive {
		return models.Permission{}, apperrors.ErrAccountDisabled
	}
	return user.Permission(), nil
}

// AuthorizeClass fails with a forbidden error unless className is visible
func (s *AuthorizationService) AuthorizeClass(perm models.Permission, className string) error {
	if !CanViewClass(perm, className) {
		return apperrors.NewForbiddenError("class " + className + " is not assigned to you")
	}
	return nil
}

// AuthorizeStudent loads a student and checks that its current class is
// visible to the reader.
func (s *AuthorizationService) AuthorizeStudent(ctx context.Context, perm models.Permission, studentID string) (*models.Student, error) {
	student, err := s.students.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeClass(perm, student.EffectiveClass()); err != nil {
		return nil, err
	}
	return student, nil
}
