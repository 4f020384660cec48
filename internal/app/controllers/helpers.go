package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/services"
	"github.com/yigit/homeroom/internal/middleware"
)

// currentActor builds the acting user from the values JWTAuth stored
func currentActor(ctx *gin.Context) (services.Actor, bool) {
	value, exists := ctx.Get(middleware.ContextPermission)
	perm, ok := value.(models.Permission)
	if !exists || !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
			WithDetails("User information not found in request context")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return services.Actor{}, false
	}
	return services.Actor{
		UserID:     ctx.GetInt64(middleware.ContextUserID),
		Name:       ctx.GetString(middleware.ContextName),
		Email:      ctx.GetString(middleware.ContextEmail),
		Permission: perm,
	}, true
}

// parseID reads a positive numeric path parameter
func parseID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid "+name).
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
