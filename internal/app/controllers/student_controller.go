package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/services"
	"github.com/yigit/homeroom/internal/middleware"
)

// StudentController handles student record operations
type StudentController struct {
	studentService    *services.StudentService
	attendanceService *services.AttendanceService
	counselingService *services.CounselingService
	statisticsService *services.StatisticsService
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService *services.StudentService,
	attendanceService *services.AttendanceService,
	counselingService *services.CounselingService,
	statisticsService *services.StatisticsService,
) *StudentController {
	return &StudentController{
		studentService:    studentService,
		attendanceService: attendanceService,
		counselingService: counselingService,
		statisticsService: statisticsService,
	}
}

// ListStudents returns the students visible to the caller
// @Summary List students
// @Description Lists students of the caller's classes (all classes for admins), with search, status filter and paging
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or student ID fragment"
// @Param className query string false "Effective class"
// @Param status query string false "Status code" Enums(1,2,3,4)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 403 {object} dto.ErrorResponse "Class not assigned"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.StudentFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.studentService.ListStudents(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// GetStudent returns one student
// @Summary Get student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 403 {object} dto.ErrorResponse "Class not assigned"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	student, err := c.studentService.GetStudent(ctx.Request.Context(), actor, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student})
}

// ListClasses returns the classes visible to the caller
// @Summary List classes
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /classes [get]
func (c *StudentController) ListClasses(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	classes, err := c.studentService.ListClasses(ctx.Request.Context(), actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: classes})
}

// StudentAttendance lists the roll-call marks of a student
// @Summary Student attendance
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceRecordResponse}
// @Failure 403 {object} dto.ErrorResponse "Class not assigned"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/attendance [get]
func (c *StudentController) StudentAttendance(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	records, err := c.attendanceService.ListByStudent(ctx.Request.Context(), actor, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: records})
}

// StudentCounseling lists the counseling notes about a student that the caller may read
// @Summary Student counseling notes
// @Description Notes hidden from the caller are left out. Part-time staff always get an empty list.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CounselingRecordResponse}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{studentId}/counseling [get]
func (c *StudentController) StudentCounseling(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	records, err := c.counselingService.ListByStudent(ctx.Request.Context(), actor, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: records})
}

// BatchUpdate changes status or class of several students
// @Summary Batch update students
// @Description Sets a status code and/or a new class. Every change appends a change-log entry carrying the mandatory note.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BatchUpdateStudentsRequest true "Changes"
// @Success 200 {object} dto.APIResponse{data=dto.AffectedResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error or missing note"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/batch [put]
func (c *StudentController) BatchUpdate(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.BatchUpdateStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.studentService.BatchUpdate(ctx.Request.Context(), actor, &req, c.statisticsService.Today())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ImportStudents loads a roster
// @Summary Import students
// @Description Adds students or, in overwrite mode, replaces the whole roster. Repeated IDs keep their last row.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ImportStudentsRequest true "Roster"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResult}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Router /students/import [post]
func (c *StudentController) ImportStudents(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.ImportStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.studentService.Import(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// DeleteStudents removes students with their attendance and counseling records
// @Summary Delete students
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteStudentsRequest true "Student IDs"
// @Success 200 {object} dto.APIResponse{data=dto.AffectedResponse}
// @Router /students/delete [post]
func (c *StudentController) DeleteStudents(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	var req dto.DeleteStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindingError(ctx, err)
		return
	}
	resp, err := c.studentService.Delete(ctx.Request.Context(), actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
