package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/homeroom/internal/app/auth"
	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/reporting"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/websocket"
)

// AttendanceSheet is the roll-call sheet of one class on one day
type AttendanceSheet struct {
	ClassName string                         `json:"className"`
	Date      string                         `json:"date"`
	Periods   []models.Period                `json:"periods"`
	Students  []dto.StudentResponse          `json:"students"`
	Records   []dto.AttendanceRecordResponse `json:"records"`
}

// AttendanceService records and reads period roll-calls
type AttendanceService struct {
	attendanceRepo attendanceStore
	studentRepo    studentStore
	semesterRepo   semesterStore
	authz          *auth.AuthorizationService
	events         EventPublisher
	logger         zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	attendanceRepo attendanceStore,
	studentRepo studentStore,
	semesterRepo semesterStore,
	authz *auth.AuthorizationService,
	events EventPublisher,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		semesterRepo:   semesterRepo,
		authz:          authz,
		events:         events,
		logger:         logger,
	}
}

// activePeriods returns the periods held on date, or ErrNoSchoolOnDate
func (s *AttendanceService) activePeriods(ctx context.Context, date string) ([]models.Period, error) {
	day, err := reporting.ParseDate(date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date " + date)
	}
	cal, err := resolveTermCalendar(ctx, s.semesterRepo, day)
	if err != nil {
		return nil, fmt.Errorf("error resolving school calendar: %w", err)
	}
	n := cal.PeriodsPerDay(day)
	if n == 0 {
		return nil, apperrors.ErrNoSchoolOnDate
	}
	return models.Periods[:n], nil
}

// GetSheet returns the roster and saved marks of a class on a day
func (s *AttendanceService) GetSheet(ctx context.Context, actor Actor, req *dto.AttendanceFilterRequest) (*AttendanceSheet, error) {
	if err := s.authz.AuthorizeClass(actor.Permission, req.ClassName); err != nil {
		return nil, err
	}
	day, err := reporting.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date " + req.Date)
	}
	periods, err := s.activePeriods(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	students, err := s.classRoster(ctx, req.ClassName)
	if err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListByClassAndDate(ctx, req.ClassName, day)
	if err != nil {
		return nil, fmt.Errorf("error loading attendance: %w", err)
	}

	sheet := &AttendanceSheet{
		ClassName: req.ClassName,
		Date:      reporting.DateKey(day),
		Periods:   periods,
		Students:  make([]dto.StudentResponse, 0, len(students)),
		Records:   make([]dto.AttendanceRecordResponse, 0, len(records)),
	}
	for i := range students {
		sheet.Students = append(sheet.Students, dto.NewStudentResponse(&students[i]))
	}
	for i := range records {
		sheet.Records = append(sheet.Records, dto.NewAttendanceRecordResponse(&records[i]))
	}
	return sheet, nil
}

func (s *AttendanceService) classRoster(ctx context.Context, className string) ([]models.Student, error) {
	filter, err := visibleFilter(models.Permission{Role: models.RoleAdmin}, className)
	if err != nil {
		return nil, err
	}
	filter.Status = models.StudentStatusActive
	students, err := s.studentRepo.ListStudents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error loading roster: %w", err)
	}
	return students, nil
}

// SubmitRollCall saves the marks of a class for one day. Only the periods
// held on that weekday are accepted, every student must currently be in the
// class, and a repeated student/period cell keeps its last entry.
func (s *AttendanceService) SubmitRollCall(ctx context.Context, actor Actor, req *dto.RollCallRequest) (*dto.RollCallResponse, error) {
	if err := s.authz.AuthorizeClass(actor.Permission, req.ClassName); err != nil {
		return nil, err
	}
	periods, err := s.activePeriods(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	day, _ := reporting.ParseDate(req.Date)

	ids := make([]string, 0, len(req.Entries))
	for _, e := range req.Entries {
		ids = append(ids, e.StudentID)
	}
	students, err := s.studentRepo.GetStudentsByIDs(ctx, uniqueStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("error loading students: %w", err)
	}
	byID := make(map[string]*models.Student, len(students))
	for i := range students {
		byID[students[i].StudentID] = &students[i]
	}

	records := make([]models.AttendanceRecord, 0, len(req.Entries))
	index := make(map[string]int, len(req.Entries))
	for _, e := range req.Entries {
		period := models.Period(e.Period)
		pos := models.PeriodIndex(period)
		if pos < 0 {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidPeriod, "unknown period "+e.Period)
		}
		if pos >= len(periods) {
			return nil, apperrors.NewCustomError(apperrors.ErrInactivePeriod, e.Period+" is not held on "+req.Date)
		}
		status := models.AttendanceStatus(e.Status)
		if !status.Valid() {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, "unknown status "+e.Status)
		}
		student, ok := byID[e.StudentID]
		if !ok {
			return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "student "+e.StudentID+" not found")
		}
		if student.EffectiveClass() != req.ClassName {
			return nil, apperrors.NewBadRequestError("student " + e.StudentID + " is not in class " + req.ClassName)
		}

		rec := models.AttendanceRecord{
			StudentID:   student.StudentID,
			StudentName: student.Name,
			ClassName:   req.ClassName,
			Date:        day,
			Period:      period,
			Status:      status,
		}
		key := e.StudentID + "|" + e.Period
		if i, ok := index[key]; ok {
			records[i] = rec
			continue
		}
		index[key] = len(records)
		records = append(records, rec)
	}

	if _, err := s.attendanceRepo.UpsertRecords(ctx, records); err != nil {
		return nil, err
	}
	s.events.Publish(websocket.Event{
		Type:      websocket.EventAttendanceSaved,
		ClassName: req.ClassName,
		Payload:   map[string]string{"date": req.Date},
	})
	s.logger.Info().
		Str("class", req.ClassName).
		Str("date", req.Date).
		Int("marks", len(records)).
		Int64("by", actor.UserID).
		Msg("Roll call saved")
	return &dto.RollCallResponse{Saved: len(records), Periods: periods}, nil
}

// Import stores marks in bulk, overwriting existing ones. The class
// snapshot is each student's current class.
func (s *AttendanceService) Import(ctx context.Context, actor Actor, req *dto.ImportAttendanceRequest) (*dto.ImportResult, error) {
	ids := make([]string, 0, len(req.Records))
	for _, r := range req.Records {
		ids = append(ids, r.StudentID)
	}
	students, err := s.studentRepo.GetStudentsByIDs(ctx, uniqueStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("error loading students: %w", err)
	}
	byID := make(map[string]*models.Student, len(students))
	for i := range students {
		byID[students[i].StudentID] = &students[i]
	}

	records := make([]models.AttendanceRecord, 0, len(req.Records))
	index := make(map[string]int, len(req.Records))
	for _, item := range req.Records {
		day, err := reporting.ParseDate(item.Date)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid date " + item.Date)
		}
		period := models.Period(item.Period)
		if models.PeriodIndex(period) < 0 {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidPeriod, "unknown period "+item.Period)
		}
		status := models.AttendanceStatus(item.Status)
		if !status.Valid() {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, "unknown status "+item.Status)
		}
		student, ok := byID[item.StudentID]
		if !ok {
			return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "student "+item.StudentID+" not found")
		}

		rec := models.AttendanceRecord{
			StudentID:   student.StudentID,
			StudentName: student.Name,
			ClassName:   student.EffectiveClass(),
			Date:        day,
			Period:      period,
			Status:      status,
		}
		key := item.StudentID + "|" + reporting.DateKey(day) + "|" + item.Period
		if i, ok := index[key]; ok {
			records[i] = rec
			continue
		}
		index[key] = len(records)
		records = append(records, rec)
	}

	if _, err := s.attendanceRepo.UpsertRecords(ctx, records); err != nil {
		return nil, err
	}
	s.logger.Info().Int("marks", len(records)).Int64("by", actor.UserID).Msg("Attendance imported")
	return &dto.ImportResult{Imported: len(records), Skipped: len(req.Records) - len(records)}, nil
}

// ListByStudent returns the marks of one visible student
func (s *AttendanceService) ListByStudent(ctx context.Context, actor Actor, studentID string) ([]dto.AttendanceRecordResponse, error) {
	if _, err := s.authz.AuthorizeStudent(ctx, actor.Permission, studentID); err != nil {
		return nil, err
	}
	records, err := s.attendanceRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading attendance: %w", err)
	}
	out := make([]dto.AttendanceRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, dto.NewAttendanceRecordResponse(&records[i]))
	}
	return out, nil
}
