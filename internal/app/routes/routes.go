package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/homeroom/internal/app/controllers"
	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/middleware"
	"github.com/yigit/homeroom/internal/pkg/websocket"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Student      *controllers.StudentController
	Attendance   *controllers.AttendanceController
	Counseling   *controllers.CounselingController
	Semester     *controllers.SemesterController
	Statistics   *controllers.StatisticsController
	Announcement *controllers.AnnouncementController
	Events       *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login",
			middleware.ValidateRequest(func() *dto.LoginRequest { return &dto.LoginRequest{} }),
			c.Auth.Login,
		)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)

	authenticated.GET("/auth/me", c.Auth.Me)

	users := authenticated.Group("/users", adminOnly)
	{
		users.GET("", c.Auth.ListUsers)
		users.POST("", c.Auth.CreateUser)
		users.PUT("/:id", c.Auth.UpdateUser)
		users.DELETE("/:id", c.Auth.DeleteUser)
	}

	authenticated.GET("/classes", c.Student.ListClasses)

	students := authenticated.Group("/students")
	{
		students.GET("", c.Student.ListStudents)
		students.GET("/:studentId", c.Student.GetStudent)
		students.GET("/:studentId/attendance", c.Student.StudentAttendance)
		students.GET("/:studentId/counseling", c.Student.StudentCounseling)

		students.PUT("/batch", adminOnly, c.Student.BatchUpdate)
		students.POST("/import", adminOnly, c.Student.ImportStudents)
		students.POST("/delete", adminOnly, c.Student.DeleteStudents)
	}

	attendance := authenticated.Group("/attendance")
	{
		attendance.GET("", c.Attendance.GetSheet)
		attendance.POST("", c.Attendance.SubmitRollCall)
		attendance.POST("/import", adminOnly, c.Attendance.ImportAttendance)
	}

	counseling := authenticated.Group("/counseling")
	{
		counseling.GET("/types", c.Counseling.ListTypes)
		counseling.GET("/count", c.Counseling.CountOnDay)
		counseling.POST("", authMiddleware.RoleRequired(models.RoleAdmin, models.RoleTeacher), c.Counseling.CreateRecord)
		counseling.DELETE("/:id", authMiddleware.RoleRequired(models.RoleAdmin, models.RoleTeacher), c.Counseling.DeleteRecord)
	}

	statistics := authenticated.Group("/statistics")
	{
		statistics.GET("/attendance", c.Statistics.AttendanceTable)
		statistics.GET("/students", c.Statistics.StudentCounts)
		statistics.GET("/at-risk", c.Statistics.AtRisk)
		statistics.GET("/counseling", c.Statistics.CounselingStats)
	}

	semesters := authenticated.Group("/semesters")
	{
		semesters.GET("", c.Semester.ListSemesters)
		semesters.GET("/current", c.Semester.CurrentSemester)
		semesters.GET("/presets/:academicYear", c.Semester.HolidayPreset)
		semesters.POST("", adminOnly, c.Semester.SaveSemester)
		semesters.DELETE("/:id", adminOnly, c.Semester.DeleteSemester)
	}

	announcements := authenticated.Group("/announcements")
	{
		announcements.GET("", c.Announcement.ListAnnouncements)
		announcements.GET("/count", c.Announcement.CountAnnouncements)
		announcements.GET("/:id", c.Announcement.GetAnnouncement)
		announcements.POST("", adminOnly, c.Announcement.CreateAnnouncement)
		announcements.PUT("/:id", adminOnly, c.Announcement.UpdateAnnouncement)
		announcements.DELETE("/:id", adminOnly, c.Announcement.DeleteAnnouncement)
	}

	authenticated.GET("/events/ws", c.Events.HandleConnection)
}
