package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/auth"
	"github.com/yigit/homeroom/internal/pkg/websocket"
)

// Context keys set by JWTAuth
const (
	ContextUserID     = websocket.ContextUserID
	ContextPermission = websocket.ContextPermission
	ContextEmail      = "email"
	ContextName       = "name"
)

// PermissionResolver loads the current role and classes of a user
type PermissionResolver interface {
	ResolvePermission(ctx context.Context, userID int64) (models.Permission, error)
}

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
	resolver   PermissionResolver
}

// NewAuthMiddleware creates a new AuthMiddleware. With a nil resolver the
// permission carried by the token is trusted as is.
func NewAuthMiddleware(jwtService *auth.JWTService, resolver PermissionResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		resolver:   resolver,
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, details string) {
	errorDetail := dto.NewErrorDetail(code, "Authentication required").WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		// browsers cannot set headers on a WebSocket handshake
		if authHeader == "" && websocket.IsUpgradeRequest(c.Request) {
			authHeader = c.Query("token")
		}
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeTokenNotFound, "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(strings.Trim(authHeader, "\"'"))
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid token")
			return
		}

		perm := claims.Permission()
		if m.resolver != nil {
			perm, err = m.resolver.ResolvePermission(c.Request.Context(), claims.UserID)
			if err != nil {
				if apperrors.Is(err, apperrors.ErrUserNotFound, apperrors.ErrAccountDisabled) {
					abortUnauthorized(c, dto.ErrorCodeAccountDisabled, "Account is disabled or no longer exists")
					return
				}
				HandleAPIError(c, err)
				c.Abort()
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)
		c.Set(ContextPermission, perm)

		c.Next()
	}
}

// RoleRequired lets the request through when the user has one of roles
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextPermission)
		perm, ok := value.(models.Permission)
		if !exists || !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "User role not found")
			return
		}

		for _, r := range roles {
			if perm.Role == r {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("You don't have sufficient permissions for this operation").
			WithSeverity(dto.ErrorSeverityError)
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}
