package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/homeroom/internal/app/auth"
	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/reporting"
	"github.com/yigit/homeroom/internal/app/repositories"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/helpers"
)

// StudentService manages administrative student records
type StudentService struct {
	studentRepo studentStore
	authz       *auth.AuthorizationService
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo studentStore, authz *auth.AuthorizationService, logger zerolog.Logger) *StudentService {
	return &StudentService{studentRepo: studentRepo, authz: authz, logger: logger}
}

// visibleFilter limits a repository filter to the classes of the actor
func visibleFilter(perm models.Permission, className string) (repositories.StudentFilter, error) {
	var filter repositories.StudentFilter
	switch {
	case className != "":
		if !auth.CanViewClass(perm, className) {
			return filter, apperrors.NewForbiddenError("class " + className + " is not assigned to you")
		}
		filter.Classes = []string{className}
	case perm.Role != models.RoleAdmin:
		filter.Classes = append([]string{}, perm.AssignedClasses...)
	}
	return filter, nil
}

// ListStudents returns a page of the students visible to the actor
func (s *StudentService) ListStudents(ctx context.Context, actor Actor, req *dto.StudentFilterRequest) (*dto.StudentListResponse, error) {
	filter, err := visibleFilter(actor.Permission, req.ClassName)
	if err != nil {
		return nil, err
	}
	filter.Search = strings.TrimSpace(req.Search)
	filter.Status = models.StudentStatus(req.Status)

	students, err := s.studentRepo.ListStudents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	students = auth.FilterStudents(actor.Permission, students)

	size := req.Size
	if size <= 0 {
		size = helpers.DefaultPageSize
	}
	start, end := helpers.CalculateSliceIndices(req.Page, size, len(students))

	out := make([]dto.StudentResponse, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, dto.NewStudentResponse(&students[i]))
	}
	return &dto.StudentListResponse{
		Students:   out,
		Pagination: helpers.NewPaginationInfo(int64(len(students)), req.Page, size),
	}, nil
}

// GetStudent returns one student if its class is visible to the actor
func (s *StudentService) GetStudent(ctx context.Context, actor Actor, studentID string) (*dto.StudentResponse, error) {
	student, err := s.authz.AuthorizeStudent(ctx, actor.Permission, studentID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// ListClasses returns the classes visible to the actor
func (s *StudentService) ListClasses(ctx context.Context, actor Actor) ([]string, error) {
	classes, err := s.studentRepo.ListClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing classes: %w", err)
	}
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if auth.CanViewClass(actor.Permission, c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// BatchUpdate changes the status and/or class of students. Every change
// appends a dated change-log entry carrying the mandatory note.
func (s *StudentService) BatchUpdate(ctx context.Context, actor Actor, req *dto.BatchUpdateStudentsRequest, today time.Time) (*dto.AffectedResponse, error) {
	note := strings.TrimSpace(req.Note)
	if note == "" {
		return nil, apperrors.ErrChangeNoteRequired
	}
	if req.StatusCode == nil && req.NewClass == nil {
		return nil, apperrors.NewBadRequestError("nothing to change: give a status code or a new class")
	}

	day, err := helpers.ParseDateOr(req.Date, today)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date " + req.Date)
	}
	dateKey := reporting.DateKey(day)

	var status *models.StudentStatus
	if req.StatusCode != nil {
		st := models.StudentStatus(*req.StatusCode)
		if !st.Valid() {
			return nil, apperrors.NewBadRequestError("unknown status code " + *req.StatusCode)
		}
		status = &st
	}
	var newClass *string
	if req.NewClass != nil {
		c := strings.TrimSpace(*req.NewClass)
		if c == "" {
			return nil, apperrors.NewBadRequestError("new class must not be empty")
		}
		newClass = &c
	}

	changes := make([]repositories.StudentChange, 0, len(req.StudentIDs))
	for _, id := range uniqueStrings(req.StudentIDs) {
		change := repositories.StudentChange{StudentID: id, StatusCode: status, CurrentClass: newClass}
		if status != nil {
			change.LogEntries = append(change.LogEntries, models.ChangeLogEntry{
				Date: dateKey,
				Type: "狀態變更為「" + status.Label() + "」",
				Note: note,
			})
		}
		if newClass != nil {
			change.LogEntries = append(change.LogEntries, models.ChangeLogEntry{
				Date: dateKey,
				Type: "班級異動至「" + *newClass + "」",
				Note: note,
			})
		}
		changes = append(changes, change)
	}

	affected, err := s.studentRepo.ApplyChanges(ctx, changes)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("affected", affected).Int64("by", actor.UserID).Msg("Students updated")
	return &dto.AffectedResponse{Affected: affected}, nil
}

// Import adds or, in overwrite mode, replaces the roster. Repeated student
// ids keep their last row.
func (s *StudentService) Import(ctx context.Context, actor Actor, req *dto.ImportStudentsRequest) (*dto.ImportResult, error) {
	byID := make(map[string]int, len(req.Students))
	students := make([]models.Student, 0, len(req.Students))
	for _, item := range req.Students {
		status := models.StudentStatus(item.StatusCode)
		if status == "" {
			status = models.StudentStatusActive
		}
		if !status.Valid() {
			return nil, apperrors.NewBadRequestError("unknown status code " + item.StatusCode + " for " + item.StudentID)
		}
		st := models.Student{
			StudentID:    strings.TrimSpace(item.StudentID),
			Name:         strings.TrimSpace(item.Name),
			ClassName:    strings.TrimSpace(item.ClassName),
			CurrentClass: item.CurrentClass,
			SeatNumber:   strings.TrimSpace(item.SeatNumber),
			StatusCode:   status,
			NationalID:   item.NationalID,
			Email:        item.Email,
		}
		if i, ok := byID[st.StudentID]; ok {
			students[i] = st
			continue
		}
		byID[st.StudentID] = len(students)
		students = append(students, st)
	}

	imported, err := s.studentRepo.ImportStudents(ctx, students, req.Mode == "overwrite")
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("imported", imported).Str("mode", req.Mode).Int64("by", actor.UserID).Msg("Students imported")
	return &dto.ImportResult{Imported: imported, Skipped: len(req.Students) - len(students)}, nil
}

// Delete removes students and their records
func (s *StudentService) Delete(ctx context.Context, actor Actor, req *dto.DeleteStudentsRequest) (*dto.AffectedResponse, error) {
	affected, err := s.studentRepo.DeleteStudents(ctx, uniqueStrings(req.StudentIDs))
	if err != nil {
		return nil, err
	}
	s.logger.Warn().Int64("affected", affected).Int64("by", actor.UserID).Msg("Students deleted")
	return &dto.AffectedResponse{Affected: affected}, nil
}

func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
