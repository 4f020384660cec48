package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/reporting"
	"github.com/yigit/homeroom/internal/app/services"
	"github.com/yigit/homeroom/internal/middleware"
)

// StatisticsController serves the attendance and counseling reports
type StatisticsController struct {
	statisticsService *services.StatisticsService
}

// NewStatisticsController creates a new StatisticsController
func NewStatisticsController(statisticsService *services.StatisticsService) *StatisticsController {
	return &StatisticsController{statisticsService: statisticsService}
}

// AttendanceTable returns attendance rates per class, grade and school
// @Summary Attendance overview
// @Description Rates for today, this week, last week, this month and last month. Non-admins only see their classes; part-time staff get no school row.
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param asOf query string false "Reference day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceTableResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Router /statistics/attendance [get]
func (c *StatisticsController) AttendanceTable(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.StatisticsRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.statisticsService.AttendanceTable(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// StudentCounts returns non-present counts per student of a class
// @Summary Per-student absence counts
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param className query string true "Class"
// @Param asOf query string false "Reference day (YYYY-MM-DD)"
// @Param mask query bool false "Mask student names"
// @Success 200 {object} dto.APIResponse{data=dto.StudentCountResponse}
// @Failure 403 {object} dto.ErrorResponse "Class not assigned"
// @Router /statistics/students [get]
func (c *StatisticsController) StudentCounts(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.StudentCountRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.statisticsService.StudentCounts(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// AtRisk lists the students flagged by an at-risk rule
// @Summary At-risk students
// @Description Modes: fixed_periods (default 20), semester_ratio (threshold 3, 4 or 5), recent_periods (default 10, last 14 days)
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param mode query string true "Rule" Enums(fixed_periods, semester_ratio, recent_periods)
// @Param threshold query int false "Threshold"
// @Param className query string false "Class"
// @Param asOf query string false "Reference day (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.AtRiskResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid rule"
// @Router /statistics/at-risk [get]
func (c *StatisticsController) AtRisk(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.AtRiskRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.statisticsService.AtRisk(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// CounselingStats reports counseling coverage
// @Summary Counseling coverage
// @Description Counseled ratio and record-type counts per class and grade, plus a school row for admins and teachers. Defaults to the current term.
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param academicYear query string false "Academic year"
// @Param semester query string false "Semester" Enums(1, 2)
// @Success 200 {object} dto.APIResponse{data=dto.CounselingStatsResponse}
// @Router /statistics/counseling [get]
func (c *StatisticsController) CounselingStats(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	year, semester := ctx.Query("academicYear"), ctx.Query("semester")
	if year == "" && semester == "" {
		term := reporting.TermOf(c.statisticsService.Today())
		year, semester = term.AcademicYear, term.Semester
	}
	resp, err := c.statisticsService.CounselingStats(ctx.Request.Context(), actor, year, semester)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
