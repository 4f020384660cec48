package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/services"
	"github.com/yigit/homeroom/internal/middleware"
	"github.com/yigit/homeroom/internal/pkg/helpers"
)

// AnnouncementController handles announcements
type AnnouncementController struct {
	announcementService *services.AnnouncementService
	statisticsService   *services.StatisticsService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService *services.AnnouncementService, statisticsService *services.StatisticsService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		statisticsService:   statisticsService,
	}
}

// attachment returns the optional "file" part of a multipart request
func attachment(ctx *gin.Context) (*multipart.FileHeader, bool) {
	file, err := ctx.FormFile("file")
	if err == nil {
		return file, true
	}
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, true
	}
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid attachment").WithDetails(err.Error()),
	))
	return nil, false
}

// ListAnnouncements returns announcements, newest first
// @Summary List announcements
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.AnnouncementListResponse}
// @Router /announcements [get]
func (c *AnnouncementController) ListAnnouncements(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	resp, err := c.announcementService.List(ctx.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetAnnouncement returns one announcement
// @Summary Get announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=dto.AnnouncementResponse}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [get]
func (c *AnnouncementController) GetAnnouncement(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.announcementService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// CountAnnouncements counts the announcements dated on a day
// @Summary Count announcements on a day
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.CountResponse}
// @Router /announcements/count [get]
func (c *AnnouncementController) CountAnnouncements(ctx *gin.Context) {
	var req dto.AnnouncementCountRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.announcementService.CountOn(ctx.Request.Context(), req.Date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// CreateAnnouncement publishes an announcement
// @Summary Create announcement
// @Description Connected dashboards receive an announcement.created event
// @Tags announcements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param date formData string false "Day (YYYY-MM-DD), defaults to today"
// @Param file formData file false "Attachment"
// @Success 201 {object} dto.APIResponse{data=dto.AnnouncementResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.AnnouncementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	file, ok := attachment(ctx)
	if !ok {
		return
	}
	resp, err := c.announcementService.Create(ctx.Request.Context(), actor, &req, file, c.statisticsService.Today())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}

// UpdateAnnouncement edits an announcement
// @Summary Update announcement
// @Tags announcements
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param date formData string false "Day (YYYY-MM-DD)"
// @Param removeFile formData bool false "Drop the current attachment"
// @Param file formData file false "Replacement attachment"
// @Success 200 {object} dto.APIResponse{data=dto.AnnouncementResponse}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [put]
func (c *AnnouncementController) UpdateAnnouncement(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.AnnouncementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	file, ok := attachment(ctx)
	if !ok {
		return
	}
	resp, err := c.announcementService.Update(ctx.Request.Context(), actor, id, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// DeleteAnnouncement removes an announcement and its attachment
// @Summary Delete announcement
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.announcementService.Delete(ctx.Request.Context(), actor, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "公告已刪除"}})
}
