package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql is the statement builder shared by all repositories
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	AttendanceRepository   *AttendanceRepository
	CounselingRepository   *CounselingRepository
	SemesterRepository     *SemesterRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		CounselingRepository:   NewCounselingRepository(db),
		SemesterRepository:     NewSemesterRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
	}
}
