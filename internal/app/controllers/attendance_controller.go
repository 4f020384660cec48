package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/services"
	"github.com/yigit/homeroom/internal/middleware"
)

// AttendanceController handles period roll-calls
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// GetSheet returns the roll-call sheet of a class on a day
// @Summary Get roll-call sheet
// @Description Returns the active periods of the day, the class roster and the marks already recorded
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param className query string true "Class"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=services.AttendanceSheet}
// @Failure 400 {object} dto.ErrorResponse "No school on that day"
// @Failure 403 {object} dto.ErrorResponse "Class not assigned"
// @Router /attendance [get]
func (c *AttendanceController) GetSheet(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.AttendanceFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	sheet, err := c.attendanceService.GetSheet(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sheet})
}

// SubmitRollCall stores the marks of a class on a day
// @Summary Submit roll-call
// @Description Saves period marks for students of one class. A repeated (student, period) keeps its last entry and an existing mark is overwritten.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RollCallRequest true "Roll-call"
// @Success 200 {object} dto.APIResponse{data=dto.RollCallResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid period, status or student"
// @Failure 403 {object} dto.ErrorResponse "Class not assigned"
// @Router /attendance [post]
func (c *AttendanceController) SubmitRollCall(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.RollCallRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.attendanceService.SubmitRollCall(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ImportAttendance loads attendance records in bulk
// @Summary Import attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ImportAttendanceRequest true "Records"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResult}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /attendance/import [post]
func (c *AttendanceController) ImportAttendance(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.ImportAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.attendanceService.Import(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
