package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/logger"
)

type errorMapping struct {
	targets []error
	status  int
	code    dto.ErrorCode
	message string
}

var errorMappings = []errorMapping{
	{[]error{apperrors.ErrInvalidCredentials}, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{[]error{apperrors.ErrAccountDisabled}, http.StatusForbidden, dto.ErrorCodeAccountDisabled, "Account is disabled"},
	{[]error{apperrors.ErrTokenExpired}, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{[]error{apperrors.ErrTokenInvalid}, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{[]error{apperrors.ErrPermissionDenied}, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},
	{
		[]error{
			apperrors.ErrResourceNotFound,
			apperrors.ErrUserNotFound,
			apperrors.ErrStudentNotFound,
			apperrors.ErrCounselingRecordNotFound,
			apperrors.ErrAnnouncementNotFound,
			apperrors.ErrSettingsNotFound,
		},
		http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found",
	},
	{
		[]error{apperrors.ErrEmailAlreadyExists, apperrors.ErrStudentIDAlreadyExists, apperrors.ErrResourceAlreadyExists},
		http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists",
	},
	{[]error{apperrors.ErrConflict}, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},
	{[]error{apperrors.ErrValidationFailed, apperrors.ErrChangeNoteRequired}, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{
		[]error{
			apperrors.ErrBadRequest,
			apperrors.ErrInactivePeriod,
			apperrors.ErrInvalidPeriod,
			apperrors.ErrInvalidStatus,
			apperrors.ErrNoSchoolOnDate,
		},
		http.StatusBadRequest, dto.ErrorCodeInvalidRequest, "Invalid request",
	},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !apperrors.Is(err, m.targets[0], m.targets[1:]...) {
			continue
		}
		detail := dto.NewErrorDetail(m.code, m.message).WithDetails(errorMessage(err))
		c.JSON(m.status, dto.NewErrorResponse(detail))
		return
	}

	// driver errors the repositories did not translate; the server message stays in the log
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		logger.FromContext(c.Request.Context()).Error().Err(err).
			Str("path", c.FullPath()).
			Str("sqlState", pgErr.Code).
			Msg("Database error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database error").WithSeverity(dto.ErrorSeverityCritical),
		))
		return
	}

	logger.FromContext(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
	))
}

// errorMessage prefers the message of a CustomError
func errorMessage(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.StatusMsg != "" {
			return custom.StatusMsg
		}
		return custom.Error()
	}
	return err.Error()
}
