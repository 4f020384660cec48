package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/services"
	"github.com/yigit/homeroom/internal/middleware"
)

// SemesterController handles semester settings
type SemesterController struct {
	semesterService *services.SemesterService
	today           func() time.Time
}

// NewSemesterController creates a new SemesterController. today supplies
// the local calendar day used to pick the current semester.
func NewSemesterController(semesterService *services.SemesterService, today func() time.Time) *SemesterController {
	return &SemesterController{semesterService: semesterService, today: today}
}

// SaveSemester creates or replaces the settings of a semester
// @Summary Save semester settings
// @Description The school-day total is recomputed from the dates and holidays on every save
// @Tags semesters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveSemesterRequest true "Settings"
// @Success 200 {object} dto.APIResponse{data=dto.SemesterResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /semesters [post]
func (c *SemesterController) SaveSemester(ctx *gin.Context) {
	var req dto.SaveSemesterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.semesterService.Save(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ListSemesters returns all saved semesters
// @Summary List semesters
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SemesterResponse}
// @Router /semesters [get]
func (c *SemesterController) ListSemesters(ctx *gin.Context) {
	resp, err := c.semesterService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// CurrentSemester returns the semester covering today
// @Summary Current semester
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SemesterResponse}
// @Failure 404 {object} dto.ErrorResponse "No settings saved"
// @Router /semesters/current [get]
func (c *SemesterController) CurrentSemester(ctx *gin.Context) {
	resp, err := c.semesterService.Current(ctx.Request.Context(), c.today())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// DeleteSemester removes semester settings
// @Summary Delete semester settings
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param id path int true "Semester ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Settings not found"
// @Router /semesters/{id} [delete]
func (c *SemesterController) DeleteSemester(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.semesterService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "學期設定已刪除"}})
}

// HolidayPreset returns the national holiday calendar of an academic year
// @Summary Holiday preset
// @Tags semesters
// @Produce json
// @Security BearerAuth
// @Param academicYear path string true "Academic year" example(114)
// @Success 200 {object} dto.APIResponse{data=dto.HolidayPresetResponse}
// @Failure 404 {object} dto.ErrorResponse "No preset for that year"
// @Router /semesters/presets/{academicYear} [get]
func (c *SemesterController) HolidayPreset(ctx *gin.Context) {
	resp, err := c.semesterService.Preset(ctx.Param("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
