package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
)

type statisticsFixture struct {
	svc        *StatisticsService
	attendance *fakeAttendance
	counseling *fakeCounseling
	semesters  *fakeSemesters
}

func newStatisticsFixture(cfg StatisticsConfig) statisticsFixture {
	roster := append(classRoster("一年甲班", "A", 2), classRoster("二年乙班", "B", 2)...)
	roster = append(roster, models.Student{StudentID: "A09", Name: "休學生", ClassName: "一年甲班", SeatNumber: "9", StatusCode: models.StudentStatusLeave})
	students := &fakeStudents{students: roster}
	f := statisticsFixture{
		attendance: &fakeAttendance{},
		counseling: &fakeCounseling{},
		semesters:  &fakeSemesters{},
	}
	f.svc = NewStatisticsService(students, f.attendance, f.counseling, f.semesters, newAuthz(students), cfg, zerolog.Nop())
	return f
}

// absences marks every held period of the given days as Absent
func absences(studentID, class string, dates ...string) []models.AttendanceRecord {
	var out []models.AttendanceRecord
	for _, d := range dates {
		date := day(d)
		n := 5
		if date.Weekday() == time.Friday {
			n = 4
		}
		for _, p := range models.Periods[:n] {
			out = append(out, models.AttendanceRecord{StudentID: studentID, ClassName: class, Date: date, Period: p, Status: models.StatusAbsent})
		}
	}
	return out
}

func TestAttendanceTableRolesAndRates(t *testing.T) {
	f := newStatisticsFixture(StatisticsConfig{})
	f.attendance.records = []models.AttendanceRecord{
		{StudentID: "A01", ClassName: "一年甲班", Date: day("2025-09-03"), Period: models.Periods[0], Status: models.StatusAbsent},
		{StudentID: "A02", ClassName: "一年甲班", Date: day("2025-09-03"), Period: models.Periods[1], Status: models.StatusPresent},
		{StudentID: "B01", ClassName: "二年乙班", Date: day("2025-09-03"), Period: models.Periods[0], Status: models.StatusSick},
		{StudentID: "B01", ClassName: "二年乙班", Date: day("2025-09-03"), Period: models.Periods[1], Status: models.StatusLate},
	}
	req := &dto.StatisticsRequest{AsOf: "2025-09-03"}

	t.Run("admin", func(t *testing.T) {
		table, err := f.svc.AttendanceTable(context.Background(), adminActor, req)
		require.NoError(t, err)
		assert.Equal(t, "2025-09-03", table.AsOf)
		assert.False(t, table.IsTodayHoliday)
		require.Len(t, table.Classes, 2)
		assert.Equal(t, 2, table.Classes[0].TotalStudents)
		require.NotNil(t, table.Classes[0].Today)
		assert.InDelta(t, 90.0, *table.Classes[0].Today, 1e-9)
		assert.InDelta(t, 80.0, *table.Classes[1].Today, 1e-9)
		assert.Len(t, table.Grades, 2)
		require.NotNil(t, table.School)
		assert.Equal(t, 4, table.School.TotalStudents)
		assert.InDelta(t, 85.0, *table.School.Today, 1e-9)
	})

	t.Run("teacher sees own classes and a school row of them", func(t *testing.T) {
		table, err := f.svc.AttendanceTable(context.Background(), teacherA, req)
		require.NoError(t, err)
		require.Len(t, table.Classes, 1)
		assert.Equal(t, "一年甲班", table.Classes[0].Label)
		require.NotNil(t, table.School)
		assert.Equal(t, 2, table.School.TotalStudents)
		assert.InDelta(t, 90.0, *table.School.Today, 1e-9)
	})

	t.Run("part-time gets no school row", func(t *testing.T) {
		table, err := f.svc.AttendanceTable(context.Background(), partTimeA, req)
		require.NoError(t, err)
		assert.Len(t, table.Classes, 1)
		assert.Len(t, table.Grades, 1)
		assert.Nil(t, table.School)
	})

	t.Run("weekend is a holiday", func(t *testing.T) {
		table, err := f.svc.AttendanceTable(context.Background(), adminActor, &dto.StatisticsRequest{AsOf: "2025-09-06"})
		require.NoError(t, err)
		assert.True(t, table.IsTodayHoliday)
		assert.Nil(t, table.Classes[0].Today)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := f.svc.AttendanceTable(context.Background(), adminActor, &dto.StatisticsRequest{AsOf: "2025-13-01"})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})
}

func TestStudentCounts(t *testing.T) {
	f := newStatisticsFixture(StatisticsConfig{})
	f.attendance.records = append(absences("A02", "一年甲班", "2025-09-01"), absences("A01", "一年甲班", "2025-09-05")...)

	resp, err := f.svc.StudentCounts(context.Background(), teacherA, &dto.StudentCountRequest{ClassName: "一年甲班", AsOf: "2025-09-10", Mask: true})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "A01", resp.Rows[0].StudentID)
	assert.Equal(t, "學XX", resp.Rows[0].Name)
	assert.Equal(t, 4, resp.Rows[0].LastWeek)
	assert.Equal(t, 4, resp.Rows[0].Semester)
	assert.Equal(t, 5, resp.Rows[1].LastWeek)
	assert.Zero(t, resp.Rows[1].ThisWeek)

	_, err = f.svc.StudentCounts(context.Background(), teacherA, &dto.StudentCountRequest{ClassName: "二年乙班"})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAtRiskModes(t *testing.T) {
	fourDays := []string{"2025-09-01", "2025-09-02", "2025-09-03", "2025-09-04"}
	records := append(absences("A01", "一年甲班", fourDays...), absences("B02", "二年乙班", append(fourDays, "2025-09-05")...)...)
	records = append(records, absences("A02", "一年甲班", "2025-09-08", "2025-09-09")...)

	tests := []struct {
		name    string
		cfg     StatisticsConfig
		actor   Actor
		req     dto.AtRiskRequest
		want    []string
		wantThr int
	}{
		{"fixed default", StatisticsConfig{}, adminActor, dto.AtRiskRequest{Mode: "fixed_periods"}, []string{"A01", "B02"}, 20},
		{"fixed scoped to teacher", StatisticsConfig{}, teacherA, dto.AtRiskRequest{Mode: "fixed_periods"}, []string{"A01"}, 20},
		{"fixed configured threshold", StatisticsConfig{FixedThreshold: 10}, adminActor, dto.AtRiskRequest{Mode: "fixed_periods"}, []string{"A01", "A02", "B02"}, 10},
		{"fixed requested threshold wins", StatisticsConfig{FixedThreshold: 10}, adminActor, dto.AtRiskRequest{Mode: "fixed_periods", Threshold: 21}, []string{"B02"}, 21},
		{"ratio without total flags nobody", StatisticsConfig{}, adminActor, dto.AtRiskRequest{Mode: "semester_ratio"}, []string{}, 5},
		{"ratio with fallback total", StatisticsConfig{FallbackSemesterPeriods: 100}, adminActor, dto.AtRiskRequest{Mode: "semester_ratio"}, []string{"A01", "B02"}, 5},
		{"recent window", StatisticsConfig{}, adminActor, dto.AtRiskRequest{Mode: "recent_periods", ClassName: "一年甲班"}, []string{"A01", "A02"}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newStatisticsFixture(tt.cfg)
			f.attendance.records = records
			tt.req.AsOf = "2025-09-10"

			resp, err := f.svc.AtRisk(context.Background(), tt.actor, &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantThr, resp.Threshold)
			ids := make([]string, 0, len(resp.Students))
			for _, s := range resp.Students {
				ids = append(ids, s.StudentID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestAtRiskUsesSemesterSettings(t *testing.T) {
	f := newStatisticsFixture(StatisticsConfig{FallbackSemesterPeriods: 1000})
	f.semesters.list = []models.SemesterSettings{{
		ID: 1, AcademicYear: "114", Semester: "1",
		StartDate: day("2025-09-01"), EndDate: day("2025-09-12"),
	}}
	// 48 periods in the semester, a fifth of it is 9.6
	f.attendance.records = append(absences("A01", "一年甲班", "2025-09-01", "2025-09-02"), absences("A02", "一年甲班", "2025-09-01")...)
	f.counseling.records = []models.CounselingRecord{
		{ID: 1, StudentID: "A01", Date: day("2025-09-02"), AcademicYear: "114", Semester: "1", VisibleToTeacher: models.Yes},
		{ID: 2, StudentID: "A01", Date: day("2025-09-03"), AcademicYear: "114", Semester: "1", VisibleToTeacher: models.No},
		{ID: 3, StudentID: "A01", Date: day("2025-03-03"), AcademicYear: "113", Semester: "2", VisibleToTeacher: models.Yes},
	}

	counts := map[string]int{}
	for _, actor := range []Actor{adminActor, teacherA, partTimeA} {
		resp, err := f.svc.AtRisk(context.Background(), actor, &dto.AtRiskRequest{Mode: "semester_ratio", AsOf: "2025-09-10"})
		require.NoError(t, err)
		assert.Equal(t, 48, resp.SemesterTotalPeriods)
		require.Len(t, resp.Students, 1)
		assert.Equal(t, "A01", resp.Students[0].StudentID)
		assert.Equal(t, 10, resp.Students[0].SemesterCount)
		counts[string(actor.Role)] = resp.Students[0].CounselingCount
	}
	assert.Equal(t, map[string]int{"admin": 2, "teacher": 1, "part-time": 0}, counts)
}

func TestAtRiskRejectsBadRatioThreshold(t *testing.T) {
	f := newStatisticsFixture(StatisticsConfig{})
	_, err := f.svc.AtRisk(context.Background(), adminActor, &dto.AtRiskRequest{Mode: "semester_ratio", Threshold: 7})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = f.svc.AtRisk(context.Background(), adminActor, &dto.AtRiskRequest{Mode: "weekly"})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCounselingStatsGate(t *testing.T) {
	f := newStatisticsFixture(StatisticsConfig{})
	f.counseling.records = []models.CounselingRecord{
		{ID: 1, StudentID: "A01", RecordType: models.RecordTypePersonalTalk, AcademicYear: "114", Semester: "1", VisibleToTeacher: models.Yes},
		{ID: 2, StudentID: "A02", RecordType: models.RecordTypeFamilyContact, AcademicYear: "114", Semester: "1", VisibleToTeacher: models.No},
		{ID: 3, StudentID: "B01", RecordType: models.RecordTypeFamilyContact, AcademicYear: "114", Semester: "1", VisibleToTeacher: models.Yes},
	}

	admin, err := f.svc.CounselingStats(context.Background(), adminActor, "114", "1")
	require.NoError(t, err)
	require.NotNil(t, admin.School)
	assert.Equal(t, 4, admin.School.TotalStudents)
	assert.Equal(t, 3, admin.School.Counseled)
	assert.InDelta(t, 75.0, admin.School.Ratio, 1e-9)
	assert.Equal(t, 2, admin.School.FamilyContacts)

	teacher, err := f.svc.CounselingStats(context.Background(), teacherA, "114", "1")
	require.NoError(t, err)
	require.Len(t, teacher.Classes, 1)
	assert.Equal(t, 1, teacher.Classes[0].Counseled)
	assert.InDelta(t, 50.0, teacher.Classes[0].Ratio, 1e-9)
	require.NotNil(t, teacher.School)

	partTime, err := f.svc.CounselingStats(context.Background(), partTimeA, "114", "1")
	require.NoError(t, err)
	require.Len(t, partTime.Classes, 1)
	assert.Zero(t, partTime.Classes[0].Counseled)
	assert.Nil(t, partTime.School)
}

func TestStatisticsDefaultsGrade(t *testing.T) {
	f := newStatisticsFixture(StatisticsConfig{})
	g, ok := f.svc.config.Grade("三年丙班")
	assert.True(t, ok)
	assert.Equal(t, 3, g)
	_, ok = f.svc.config.Grade("資源班")
	assert.False(t, ok)
}
