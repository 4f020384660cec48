package services

import (
	"context"
	"time"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/repositories"
)

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID int64
	Name   string
	Email  string
	models.Permission
}

type userStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	DeleteUser(ctx context.Context, id int64) error
	CountAdmins(ctx context.Context) (int64, error)
}

type studentStore interface {
	ListStudents(ctx context.Context, filter repositories.StudentFilter) ([]models.Student, error)
	GetStudentByID(ctx context.Context, studentID string) (*models.Student, error)
	GetStudentsByIDs(ctx context.Context, ids []string) ([]models.Student, error)
	ListClasses(ctx context.Context) ([]string, error)
	ImportStudents(ctx context.Context, students []models.Student, replace bool) (int, error)
	ApplyChanges(ctx context.Context, changes []repositories.StudentChange) (int64, error)
	DeleteStudents(ctx context.Context, ids []string) (int64, error)
}

type attendanceStore interface {
	UpsertRecords(ctx context.Context, records []models.AttendanceRecord) (int64, error)
	ListByClassAndDate(ctx context.Context, className string, date time.Time) ([]models.AttendanceRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.AttendanceRecord, error)
	ListInRange(ctx context.Context, filter repositories.AttendanceRangeFilter) ([]models.AttendanceRecord, error)
}

type counselingStore interface {
	Create(ctx context.Context, c *models.CounselingRecord) error
	GetByID(ctx context.Context, id int64) (*models.CounselingRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.CounselingRecord, error)
	ListAll(ctx context.Context, academicYear, semester string) ([]models.CounselingRecord, error)
	Delete(ctx context.Context, id int64) error
	CountOnDay(ctx context.Context, studentID string, date time.Time, typePrefix string) (int64, error)
}

type semesterStore interface {
	Upsert(ctx context.Context, s *models.SemesterSettings) error
	List(ctx context.Context) ([]models.SemesterSettings, error)
	GetCovering(ctx context.Context, date time.Time) (*models.SemesterSettings, error)
	GetLatest(ctx context.Context) (*models.SemesterSettings, error)
	Delete(ctx context.Context, id int64) error
}

type announcementStore interface {
	Create(ctx context.Context, a *models.Announcement) error
	Update(ctx context.Context, a *models.Announcement) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	List(ctx context.Context, offset, limit int) ([]models.Announcement, int64, error)
	CountCreatedOn(ctx context.Context, day time.Time) (int64, error)
}

var (
	_ userStore         = (*repositories.UserRepository)(nil)
	_ studentStore      = (*repositories.StudentRepository)(nil)
	_ attendanceStore   = (*repositories.AttendanceRepository)(nil)
	_ counselingStore   = (*repositories.CounselingRepository)(nil)
	_ semesterStore     = (*repositories.SemesterRepository)(nil)
	_ announcementStore = (*repositories.AnnouncementRepository)(nil)
)
