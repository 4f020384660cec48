package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubResolver struct {
	perms map[int64]models.Permission
}

func (s stubResolver) ResolvePermission(_ context.Context, userID int64) (models.Permission, error) {
	p, ok := s.perms[userID]
	if !ok {
		return models.Permission{}, apperrors.ErrAccountDisabled
	}
	return p, nil
}

func newJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{SecretKey: "mw-secret", AccessTokenExp: time.Hour, TokenIssuer: "homeroom-test"})
}

func tokenFor(t *testing.T, svc *auth.JWTService, user *models.User) string {
	t.Helper()
	token, _, err := svc.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp
}

func protectedRouter(m *AuthMiddleware, roles ...models.Role) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{m.JWTAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, m.RoleRequired(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		perm := c.MustGet(ContextPermission).(models.Permission)
		c.JSON(http.StatusOK, gin.H{
			"userID":  c.GetInt64(ContextUserID),
			"role":    perm.Role,
			"classes": perm.AssignedClasses,
		})
	})
	r.GET("/p", handlers...)
	return r
}

func TestJWTAuth(t *testing.T) {
	jwtService := newJWT()
	teacher := &models.User{ID: 5, Email: "t@school.tw", Role: models.RoleTeacher, AssignedClasses: []string{"一年甲班"}}
	resolver := stubResolver{perms: map[int64]models.Permission{
		5: {Role: models.RoleTeacher, AssignedClasses: []string{"二年乙班"}},
	}}
	token := tokenFor(t, jwtService, teacher)

	tests := []struct {
		name       string
		resolver   PermissionResolver
		setup      func(r *http.Request)
		wantStatus int
		wantCode   dto.ErrorCode
		wantClass  string
	}{
		{"missing header", nil, func(*http.Request) {}, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, ""},
		{"garbage token", nil, func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc.def.ghi") }, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, ""},
		{"token claims", nil, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK, "", "一年甲班"},
		{"resolved permission wins", resolver, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusOK, "", "二年乙班"},
		{"query token ignored without upgrade", nil, func(r *http.Request) { r.URL.RawQuery = "token=" + token }, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, ""},
		{"query token on websocket upgrade", nil, func(r *http.Request) {
			r.URL.RawQuery = "token=" + token
			r.Header.Set("Connection", "Upgrade")
			r.Header.Set("Upgrade", "websocket")
		}, http.StatusOK, "", "一年甲班"},
		{"disabled account", stubResolver{}, func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusUnauthorized, dto.ErrorCodeAccountDisabled, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := protectedRouter(NewAuthMiddleware(jwtService, tt.resolver))
			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
				return
			}
			var body struct {
				UserID  int64    `json:"userID"`
				Classes []string `json:"classes"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, int64(5), body.UserID)
			assert.Equal(t, []string{tt.wantClass}, body.Classes)
		})
	}
}

func TestRoleRequired(t *testing.T) {
	jwtService := newJWT()
	m := NewAuthMiddleware(jwtService, nil)
	router := protectedRouter(m, models.RoleAdmin)

	for role, want := range map[models.Role]int{
		models.RoleAdmin:    http.StatusOK,
		models.RoleTeacher:  http.StatusForbidden,
		models.RolePartTime: http.StatusForbidden,
	} {
		t.Run(string(role), func(t *testing.T) {
			token := tokenFor(t, jwtService, &models.User{ID: 1, Email: "u@school.tw", Role: role})
			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, want, w.Code)
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeAccountDisabled},
		{apperrors.NewForbiddenError("class 二年乙班 is not assigned to you"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{fmt.Errorf("loading: %w", apperrors.ErrStudentNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrSettingsNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.NewConflictError("at least one active admin must remain"), http.StatusConflict, dto.ErrorCodeConflict},
		{apperrors.ErrChangeNoteRequired, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{apperrors.NewCustomError(apperrors.ErrInactivePeriod, "第五節 is not held on 2025-09-05"), http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{apperrors.ErrNoSchoolOnDate, http.StatusBadRequest, dto.ErrorCodeInvalidRequest},
		{fmt.Errorf("saving attendance: %w", &pgconn.PgError{Code: "57P01", Message: "terminating connection"}), http.StatusInternalServerError, dto.ErrorCodeDatabaseError},
		{errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
		})
	}
}

func TestHandleAPIErrorHidesDatabaseDetails(t *testing.T) {
	var buf strings.Builder
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/attendance", func(c *gin.Context) {
		HandleAPIError(c, fmt.Errorf("saving attendance: %w", &pgconn.PgError{
			Code:    "42P01",
			Message: `relation "attendance_records" does not exist`,
		}))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/attendance", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeDatabaseError, resp.Error.Code)
	assert.Equal(t, dto.ErrorSeverityCritical, resp.Error.Severity)
	assert.NotContains(t, w.Body.String(), "attendance_records")
	assert.Contains(t, buf.String(), `"sqlState":"42P01"`)
}

func TestHandleAPIErrorKeepsCustomMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleAPIError(c, apperrors.NewBadRequestError("end date must not be before start date"))

	resp := decodeError(t, w)
	assert.Equal(t, "end date must not be before start date", resp.Error.Details)
}

type loginBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func TestValidateRequest(t *testing.T) {
	r := gin.New()
	r.POST("/login", ValidateRequest(func() *loginBody { return &loginBody{} }), func(c *gin.Context) {
		body, ok := ValidatedBody[loginBody](c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": body.Email})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.tw","password":"x"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.tw")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"nope"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestCORS(t *testing.T) {
	newRouter := func(origins []string) *gin.Engine {
		r := gin.New()
		r.Use(CORS(origins), RequestLogger(zerolog.Nop()))
		r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}
	send := func(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/x", nil)
		req.Header.Set("Origin", origin)
		if method == http.MethodOptions {
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("listed origin gets credentials", func(t *testing.T) {
		r := newRouter([]string{"https://dash.school.tw/"})

		w := send(r, http.MethodOptions, "https://dash.school.tw")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://dash.school.tw", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

		w = send(r, http.MethodGet, "https://dash.school.tw")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://dash.school.tw", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		w := send(newRouter([]string{"https://dash.school.tw"}), http.MethodGet, "https://evil.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	for _, origins := range [][]string{nil, {"*"}} {
		t.Run(fmt.Sprintf("open policy %v never sends credentials", origins), func(t *testing.T) {
			w := send(newRouter(origins), http.MethodGet, "https://evil.example")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf strings.Builder
	lgr := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestLogger(lgr))
	r.GET("/fail", func(c *gin.Context) {
		HandleAPIError(c, errors.New("disk full"))
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	// both the error and the access line carry the id
	assert.Equal(t, 2, strings.Count(buf.String(), `"requestId":"req-42"`))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}
