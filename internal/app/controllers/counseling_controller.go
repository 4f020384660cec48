package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/services"
	"github.com/yigit/homeroom/internal/middleware"
)

// CounselingController handles counseling notes
type CounselingController struct {
	counselingService *services.CounselingService
}

// NewCounselingController creates a new CounselingController
func NewCounselingController(counselingService *services.CounselingService) *CounselingController {
	return &CounselingController{counselingService: counselingService}
}

// CreateRecord adds a counseling note
// @Summary Create counseling note
// @Description Admins and teachers only. The term is derived from the date.
// @Tags counseling
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCounselingRequest true "Note"
// @Success 201 {object} dto.APIResponse{data=dto.CounselingRecordResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 403 {object} dto.ErrorResponse "Not allowed"
// @Router /counseling [post]
func (c *CounselingController) CreateRecord(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.CreateCounselingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	record, err := c.counselingService.Create(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: record})
}

// DeleteRecord removes a counseling note
// @Summary Delete counseling note
// @Tags counseling
// @Produce json
// @Security BearerAuth
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Not allowed"
// @Failure 404 {object} dto.ErrorResponse "Record not found"
// @Router /counseling/{id} [delete]
func (c *CounselingController) DeleteRecord(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.counselingService.Delete(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "輔導紀錄已刪除"}})
}

// CountOnDay counts the notes written about a student on a day
// @Summary Count counseling notes on a day
// @Tags counseling
// @Produce json
// @Security BearerAuth
// @Param studentId query string true "Student ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param typePrefix query string false "Counseling type prefix"
// @Success 200 {object} dto.APIResponse{data=dto.CountResponse}
// @Router /counseling/count [get]
func (c *CounselingController) CountOnDay(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.CounselingCountRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.counselingService.CountOnDay(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ListTypes returns the counseling type codes
// @Summary List counseling types
// @Tags counseling
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]services.CounselingType}
// @Router /counseling/types [get]
func (c *CounselingController) ListTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: c.counselingService.Types()})
}
