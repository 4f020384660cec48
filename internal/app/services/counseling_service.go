package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/homeroom/internal/app/auth"
	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/reporting"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
)

// CounselingType is one entry of the counseling category list
type CounselingType struct {
	Code  string `json:"code" example:"E4"`
	Label string `json:"label" example:"心理衛生-情緒困擾"`
}

// CounselingService manages counseling notes behind the visibility gate
type CounselingService struct {
	counselingRepo counselingStore
	studentRepo    studentStore
	authz          *auth.AuthorizationService
	logger         zerolog.Logger
}

// NewCounselingService creates a new CounselingService
func NewCounselingService(counselingRepo counselingStore, studentRepo studentStore, authz *auth.AuthorizationService, logger zerolog.Logger) *CounselingService {
	return &CounselingService{
		counselingRepo: counselingRepo,
		studentRepo:    studentRepo,
		authz:          authz,
		logger:         logger,
	}
}

// ListByStudent returns the notes about a student that the actor may see.
// Hidden notes are left out rather than reported as an error.
func (s *CounselingService) ListByStudent(ctx context.Context, actor Actor, studentID string) ([]dto.CounselingRecordResponse, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	records, err := s.counselingRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading counseling records: %w", err)
	}
	visible := auth.FilterCounseling(actor.Permission, records, map[string]string{student.StudentID: student.EffectiveClass()})

	out := make([]dto.CounselingRecordResponse, 0, len(visible))
	for i := range visible {
		out = append(out, dto.NewCounselingRecordResponse(&visible[i]))
	}
	return out, nil
}

// Create records a counseling note. Teachers may only write about students
// of their own classes.
func (s *CounselingService) Create(ctx context.Context, actor Actor, req *dto.CreateCounselingRequest) (*dto.CounselingRecordResponse, error) {
	if !auth.CanWriteCounseling(actor.Role) {
		return nil, apperrors.NewForbiddenError("your role cannot write counseling records")
	}
	if _, ok := models.CounselingTypes[req.CounselingType]; !ok {
		return nil, apperrors.NewBadRequestError("unknown counseling type " + req.CounselingType)
	}
	recordType := models.CounselingRecordType(req.RecordType)
	if !recordType.Valid() {
		return nil, apperrors.NewBadRequestError("unknown record type " + req.RecordType)
	}
	day, err := reporting.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date " + req.Date)
	}

	student, err := s.authz.AuthorizeStudent(ctx, actor.Permission, req.StudentID)
	if err != nil {
		return nil, err
	}

	visible := models.YesNo(req.VisibleToTeacher)
	if visible == "" {
		// a teacher's own note stays readable by its author
		visible = models.No
		if actor.Role == models.RoleTeacher {
			visible = models.Yes
		}
	}

	term := reporting.TermOf(day)
	record := &models.CounselingRecord{
		StudentID:        student.StudentID,
		ClassName:        student.EffectiveClass(),
		RecordType:       recordType,
		Date:             day,
		CounselingType:   req.CounselingType,
		Notes:            strings.TrimSpace(req.Notes),
		AcademicYear:     term.AcademicYear,
		Semester:         term.Semester,
		InquiryMethod:    req.InquiryMethod,
		ContactPerson:    req.ContactPerson,
		VisibleToTeacher: visible,
		AuthorName:       actor.Name,
		AuthorEmail:      actor.Email,
		AuthorRole:       actor.Role,
	}
	if err := s.counselingRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", record.ID).Str("studentID", record.StudentID).Int64("by", actor.UserID).Msg("Counseling record created")
	resp := dto.NewCounselingRecordResponse(record)
	return &resp, nil
}

// Delete removes a note. Admins may delete any note, teachers only their own.
func (s *CounselingService) Delete(ctx context.Context, actor Actor, id int64) error {
	record, err := s.counselingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	switch actor.Role {
	case models.RoleAdmin:
	case models.RoleTeacher:
		if !strings.EqualFold(record.AuthorEmail, actor.Email) {
			return apperrors.NewForbiddenError("you can only delete your own counseling records")
		}
	default:
		return apperrors.NewForbiddenError("your role cannot delete counseling records")
	}

	if err := s.counselingRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Int64("by", actor.UserID).Msg("Counseling record deleted")
	return nil
}

// CountOnDay counts the notes about a student on a day, optionally only
// those whose type code starts with a prefix. Only notes visible to the
// actor are counted.
func (s *CounselingService) CountOnDay(ctx context.Context, actor Actor, req *dto.CounselingCountRequest) (*dto.CountResponse, error) {
	day, err := reporting.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid date " + req.Date)
	}
	if actor.Role == models.RoleAdmin {
		n, err := s.counselingRepo.CountOnDay(ctx, req.StudentID, day, req.TypePrefix)
		if err != nil {
			return nil, err
		}
		return &dto.CountResponse{Count: n}, nil
	}

	records, err := s.ListByStudent(ctx, actor, req.StudentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return &dto.CountResponse{}, nil
		}
		return nil, err
	}
	var n int64
	key := reporting.DateKey(day)
	for _, r := range records {
		if r.Date == key && strings.HasPrefix(r.CounselingType, req.TypePrefix) {
			n++
		}
	}
	return &dto.CountResponse{Count: n}, nil
}

// Types lists the counseling categories ordered by code
func (s *CounselingService) Types() []CounselingType {
	out := make([]CounselingType, 0, len(models.CounselingTypes))
	for code, label := range models.CounselingTypes {
		out = append(out, CounselingType{Code: code, Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
