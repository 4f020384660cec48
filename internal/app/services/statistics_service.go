package services

import (
	"context"
	"fmt"
	"sort"
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

// StatisticsConfig holds the reporting defaults
type StatisticsConfig struct {
	Location *time.Location
	// FallbackSemesterPeriods is the semester total used when no semester
	// is configured; 0 disables semester_ratio flags in that case.
	FallbackSemesterPeriods int
	FixedThreshold          int
	RatioThreshold          int
	RecentThreshold         int
	Grade                   reporting.GradeFunc
}

// StatisticsService builds the attendance and counseling reports. Every
// report gates its inputs by the actor before aggregating.
type StatisticsService struct {
	studentRepo    studentStore
	attendanceRepo attendanceStore
	counselingRepo counselingStore
	semesterRepo   semesterStore
	authz          *auth.AuthorizationService
	config         StatisticsConfig
	logger         zerolog.Logger
	now            func() time.Time
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(
	studentRepo studentStore,
	attendanceRepo attendanceStore,
	counselingRepo counselingStore,
	semesterRepo semesterStore,
	authz *auth.AuthorizationService,
	config StatisticsConfig,
	logger zerolog.Logger,
) *StatisticsService {
	if config.Grade == nil {
		config.Grade = reporting.DefaultGrade
	}
	return &StatisticsService{
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		counselingRepo: counselingRepo,
		semesterRepo:   semesterRepo,
		authz:          authz,
		config:         config,
		logger:         logger,
		now:            time.Now,
	}
}

// Today is the current calendar day in the reporting time zone
func (s *StatisticsService) Today() time.Time {
	return helpers.LocalDate(s.now(), s.config.Location)
}

func (s *StatisticsService) asOf(value string) (time.Time, error) {
	d, err := helpers.ParseDateOr(value, s.Today())
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("invalid date " + value)
	}
	return reporting.Day(d), nil
}

// roster loads the active students visible to perm, optionally of one class
func (s *StatisticsService) roster(ctx context.Context, perm models.Permission, className string) ([]models.Student, error) {
	filter, err := visibleFilter(perm, className)
	if err != nil {
		return nil, err
	}
	filter.Status = models.StudentStatusActive
	students, err := s.studentRepo.ListStudents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error loading students: %w", err)
	}
	return auth.FilterStudents(perm, students), nil
}

// attendance loads the visible marks of roster dated within [from, to]
func (s *StatisticsService) attendance(ctx context.Context, perm models.Permission, roster []models.Student, from, to time.Time) ([]models.AttendanceRecord, error) {
	filter := repositories.AttendanceRangeFilter{From: from, To: to}
	if perm.Role != models.RoleAdmin {
		filter.StudentIDs = make([]string, 0, len(roster))
		for i := range roster {
			filter.StudentIDs = append(filter.StudentIDs, roster[i].StudentID)
		}
	}
	records, err := s.attendanceRepo.ListInRange(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error loading attendance: %w", err)
	}
	return auth.FilterAttendance(perm, records, auth.ClassIndex(roster)), nil
}

func earliest(first time.Time, rest ...time.Time) time.Time {
	for _, t := range rest {
		if t.Before(first) {
			first = t
		}
	}
	return first
}

// AttendanceTable builds the per-class attendance rates around asOf with
// grade rows and, for admins and teachers, a school-wide row.
func (s *StatisticsService) AttendanceTable(ctx context.Context, actor Actor, req *dto.StatisticsRequest) (*dto.AttendanceTableResponse, error) {
	asOf, err := s.asOf(req.AsOf)
	if err != nil {
		return nil, err
	}
	cal, err := resolveTermCalendar(ctx, s.semesterRepo, asOf)
	if err != nil {
		return nil, fmt.Errorf("error resolving school calendar: %w", err)
	}
	roster, err := s.roster(ctx, actor.Permission, "")
	if err != nil {
		return nil, err
	}
	from := earliest(reporting.LastMonth(asOf).Start, reporting.LastWeek(asOf).Start)
	records, err := s.attendance(ctx, actor.Permission, roster, from, asOf)
	if err != nil {
		return nil, err
	}

	table := reporting.BuildAttendanceTable(reporting.GroupByEffectiveClass(roster), records, cal.Calendar, asOf, reporting.TableOptions{
		Grade:         s.config.Grade,
		IncludeSchool: reporting.CanViewAggregates(actor.Role),
	})
	return &dto.AttendanceTableResponse{AsOf: reporting.DateKey(asOf), AttendanceTable: table}, nil
}

// StudentCounts builds the per-student non-Present count table of a class
func (s *StatisticsService) StudentCounts(ctx context.Context, actor Actor, req *dto.StudentCountRequest) (*dto.StudentCountResponse, error) {
	if err := s.authz.AuthorizeClass(actor.Permission, req.ClassName); err != nil {
		return nil, err
	}
	asOf, err := s.asOf(req.AsOf)
	if err != nil {
		return nil, err
	}
	cal, err := resolveTermCalendar(ctx, s.semesterRepo, asOf)
	if err != nil {
		return nil, fmt.Errorf("error resolving school calendar: %w", err)
	}
	roster, err := s.roster(ctx, actor.Permission, req.ClassName)
	if err != nil {
		return nil, err
	}
	from := earliest(cal.Start(), reporting.LastMonth(asOf).Start, reporting.LastWeek(asOf).Start)
	to := asOf
	if cal.End().After(to) {
		to = cal.End()
	}
	records, err := s.attendance(ctx, actor.Permission, roster, from, to)
	if err != nil {
		return nil, err
	}

	rows := reporting.BuildStudentCountTable(roster, records, cal.Calendar, asOf)
	if req.Mask {
		for i := range rows {
			rows[i].Name = reporting.MaskName(rows[i].Name)
		}
	}
	return &dto.StudentCountResponse{ClassName: req.ClassName, AsOf: reporting.DateKey(asOf), Rows: rows}, nil
}

// threshold resolves the configured default of a mode
func (s *StatisticsService) threshold(mode reporting.AtRiskMode, requested int) int {
	if requested > 0 {
		return requested
	}
	var configured int
	switch mode {
	case reporting.ModeFixedPeriods:
		configured = s.config.FixedThreshold
	case reporting.ModeSemesterRatio:
		configured = s.config.RatioThreshold
	case reporting.ModeRecentPeriods:
		configured = s.config.RecentThreshold
	}
	if configured > 0 {
		return configured
	}
	return mode.DefaultThreshold()
}

// AtRisk lists the visible students flagged by the chosen rule, ordered by
// class and seat.
func (s *StatisticsService) AtRisk(ctx context.Context, actor Actor, req *dto.AtRiskRequest) (*dto.AtRiskResponse, error) {
	mode := reporting.AtRiskMode(req.Mode)
	if !mode.Valid() {
		return nil, apperrors.NewBadRequestError("unknown at-risk mode " + req.Mode)
	}
	threshold := s.threshold(mode, req.Threshold)
	if mode == reporting.ModeSemesterRatio && !reporting.ValidRatioThreshold(threshold) {
		return nil, apperrors.NewBadRequestError("semester_ratio threshold must be 3, 4 or 5")
	}
	asOf, err := s.asOf(req.AsOf)
	if err != nil {
		return nil, err
	}

	cal, err := resolveTermCalendar(ctx, s.semesterRepo, asOf)
	if err != nil {
		return nil, fmt.Errorf("error resolving school calendar: %w", err)
	}
	total := s.config.FallbackSemesterPeriods
	term := reporting.TermOf(asOf)
	if cal.Settings != nil {
		total = cal.SemesterTotalPeriods()
		term = reporting.AcademicTerm{AcademicYear: cal.Settings.AcademicYear, Semester: cal.Settings.Semester}
	}

	roster, err := s.roster(ctx, actor.Permission, req.ClassName)
	if err != nil {
		return nil, err
	}
	semester := reporting.SemesterToDate(cal.Calendar, asOf)
	recent := reporting.Trailing(asOf, reporting.RecentWindowDays)
	records, err := s.attendance(ctx, actor.Permission, roster, earliest(semester.Start, recent.Start), asOf)
	if err != nil {
		return nil, err
	}

	// fixed and ratio modes count the semester so far
	semesterRecords := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if semester.Contains(r.Date) {
			semesterRecords = append(semesterRecords, r)
		}
	}
	classify := semesterRecords
	if mode == reporting.ModeRecentPeriods {
		classify = records
	}
	flagged := reporting.ClassifyAtRisk(mode, threshold, classify, roster, total, asOf)

	counseling, err := s.counselingRepo.ListAll(ctx, term.AcademicYear, term.Semester)
	if err != nil {
		return nil, fmt.Errorf("error loading counseling records: %w", err)
	}
	counseling = auth.FilterCounseling(actor.Permission, counseling, auth.ClassIndex(roster))
	counseled := make(map[string]int)
	for _, c := range counseling {
		counseled[c.StudentID]++
	}

	semesterCounts := reporting.CountNonPresent(semesterRecords, semester)
	recentCounts := reporting.CountNonPresent(records, recent)

	students := make([]dto.AtRiskStudent, 0, len(flagged))
	for i := range roster {
		st := &roster[i]
		if !flagged.Has(st.StudentID) {
			continue
		}
		students = append(students, dto.AtRiskStudent{
			StudentID:       st.StudentID,
			Name:            st.Name,
			ClassName:       st.EffectiveClass(),
			SeatNumber:      st.SeatNumber,
			SemesterCount:   semesterCounts[st.StudentID],
			RecentCount:     recentCounts[st.StudentID],
			CounselingCount: counseled[st.StudentID],
		})
	}
	sort.SliceStable(students, func(i, j int) bool {
		if students[i].ClassName != students[j].ClassName {
			return students[i].ClassName < students[j].ClassName
		}
		return reporting.SeatLess(students[i].SeatNumber, students[j].SeatNumber)
	})

	return &dto.AtRiskResponse{
		Mode:                 mode,
		Threshold:            threshold,
		SemesterTotalPeriods: total,
		AsOf:                 reporting.DateKey(asOf),
		Students:             students,
	}, nil
}

// CounselingStats reports counseling coverage per class, grade and, for
// admins and teachers, the whole school. Only notes visible to the actor
// are counted.
func (s *StatisticsService) CounselingStats(ctx context.Context, actor Actor, academicYear, semester string) (*dto.CounselingStatsResponse, error) {
	roster, err := s.roster(ctx, actor.Permission, "")
	if err != nil {
		return nil, err
	}
	records, err := s.counselingRepo.ListAll(ctx, academicYear, semester)
	if err != nil {
		return nil, fmt.Errorf("error loading counseling records: %w", err)
	}
	records = auth.FilterCounseling(actor.Permission, records, auth.ClassIndex(roster))

	classes := reporting.RollUpClassStats(roster, records)
	rollup := reporting.RollUp(classes, s.config.Grade, reporting.CanViewAggregates(actor.Role))
	return &dto.CounselingStatsResponse{StatsRollup: rollup}, nil
}
