package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwraps(t *testing.T) {
	err := NewCustomError(ErrStudentNotFound, "學生 S001 不存在").WithCode("RES_001")
	wrapped := fmt.Errorf("loading roster: %w", err)

	assert.ErrorIs(t, wrapped, ErrStudentNotFound)
	assert.Equal(t, "學生 S001 不存在", err.Error())

	var custom *CustomError
	assert.True(t, errors.As(wrapped, &custom))
	assert.Equal(t, "RES_001", custom.Code)
}

func TestIsAny(t *testing.T) {
	err := NewForbiddenError("class not assigned")

	assert.True(t, Is(err, ErrUserNotFound, ErrPermissionDenied))
	assert.False(t, Is(err, ErrUserNotFound, ErrConflict))
}

func TestCustomErrorFallbackMessage(t *testing.T) {
	assert.Equal(t, "bad request", (&CustomError{Err: ErrBadRequest}).Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}
