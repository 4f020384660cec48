package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/app/reporting"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
)

// SemesterService maintains semester calendars
type SemesterService struct {
	semesterRepo semesterStore
	logger       zerolog.Logger
}

// NewSemesterService creates a new SemesterService
func NewSemesterService(semesterRepo semesterStore, logger zerolog.Logger) *SemesterService {
	return &SemesterService{semesterRepo: semesterRepo, logger: logger}
}

func parseDates(values []string) ([]time.Time, error) {
	out := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, err := reporting.ParseDate(v)
		if err != nil {
			return nil, apperrors.NewBadRequestError("invalid date " + v)
		}
		out = append(out, d)
	}
	return out, nil
}

// Save creates or replaces the settings of a semester. Holidays are merged
// with the national preset when requested, make-up workdays are removed,
// and the school-day total is recomputed.
func (s *SemesterService) Save(ctx context.Context, req *dto.SaveSemesterRequest) (*dto.SemesterResponse, error) {
	start, err := reporting.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid start date " + req.StartDate)
	}
	end, err := reporting.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid end date " + req.EndDate)
	}
	if end.Before(start) {
		return nil, apperrors.NewBadRequestError("end date must not be before start date")
	}

	holidays, err := parseDates(req.Holidays)
	if err != nil {
		return nil, err
	}
	makeup, err := parseDates(req.MakeupWorkdays)
	if err != nil {
		return nil, err
	}
	if req.UsePreset {
		preset, ok := reporting.LookupHolidayPreset(req.AcademicYear)
		if !ok {
			return nil, apperrors.NewResourceNotFoundError("no holiday preset for academic year " + req.AcademicYear)
		}
		holidays = append(holidays, preset.Holidays...)
		makeup = append(makeup, preset.MakeupWorkdays...)
	}
	merged := reporting.MergeHolidays(holidays, makeup)

	// only holidays inside the semester are stored
	inRange := merged[:0]
	for _, h := range merged {
		if !h.Before(start) && !h.After(end) {
			inRange = append(inRange, h)
		}
	}

	label := strings.TrimSpace(req.Label)
	if label == "" {
		label = reporting.AcademicTerm{AcademicYear: req.AcademicYear, Semester: req.Semester}.Label()
	}

	cal := reporting.ResolveSchoolCalendar(start, end, inRange)
	settings := &models.SemesterSettings{
		AcademicYear:    req.AcademicYear,
		Semester:        req.Semester,
		Label:           label,
		StartDate:       start,
		EndDate:         end,
		Holidays:        inRange,
		TotalSchoolDays: cal.SchoolDayCount(),
	}
	if err := s.semesterRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("term", label).
		Int("schoolDays", settings.TotalSchoolDays).
		Int("holidays", len(inRange)).
		Msg("Semester settings saved")
	resp := dto.NewSemesterResponse(settings)
	return &resp, nil
}

// List returns every configured semester, newest first
func (s *SemesterService) List(ctx context.Context) ([]dto.SemesterResponse, error) {
	list, err := s.semesterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing semesters: %w", err)
	}
	out := make([]dto.SemesterResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.NewSemesterResponse(&list[i]))
	}
	return out, nil
}

// Current returns the semester covering today, or the latest one
func (s *SemesterService) Current(ctx context.Context, today time.Time) (*dto.SemesterResponse, error) {
	settings, err := s.semesterRepo.GetCovering(ctx, today)
	if errors.Is(err, apperrors.ErrSettingsNotFound) {
		settings, err = s.semesterRepo.GetLatest(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := dto.NewSemesterResponse(settings)
	return &resp, nil
}

// Delete removes a semester
func (s *SemesterService) Delete(ctx context.Context, id int64) error {
	return s.semesterRepo.Delete(ctx, id)
}

// Preset returns the national holiday calendar of an academic year
func (s *SemesterService) Preset(academicYear string) (*dto.HolidayPresetResponse, error) {
	preset, ok := reporting.LookupHolidayPreset(academicYear)
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("no holiday preset for academic year " + academicYear)
	}
	return &dto.HolidayPresetResponse{
		AcademicYear:   preset.AcademicYear,
		Holidays:       dateKeys(preset.Holidays),
		MakeupWorkdays: dateKeys(preset.MakeupWorkdays),
		Merged:         dateKeys(preset.Merged()),
	}, nil
}

func dateKeys(days []time.Time) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, reporting.DateKey(d))
	}
	return out
}
