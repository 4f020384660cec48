package dto

import (
	"time"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/reporting"
)

// SaveSemesterRequest creates or replaces the settings of a semester
type SaveSemesterRequest struct {
	AcademicYear   string   `json:"academicYear" binding:"required,numeric,max=4" example:"114"`
	Semester       string   `json:"semester" binding:"required,oneof=1 2" example:"1"`
	Label          string   `json:"label" binding:"max=50"`
	StartDate      string   `json:"startDate" binding:"required,datetime=2006-01-02" example:"2025-09-01"`
	EndDate        string   `json:"endDate" binding:"required,datetime=2006-01-02" example:"2026-01-20"`
	Holidays       []string `json:"holidays" binding:"omitempty,dive,datetime=2006-01-02"`
	MakeupWorkdays []string `json:"makeupWorkdays" binding:"omitempty,dive,datetime=2006-01-02"`
	// UsePreset merges the national holiday calendar of the academic year
	UsePreset bool `json:"usePreset"`
}

// SemesterResponse is the API view of semester settings
type SemesterResponse struct {
	ID                   int64     `json:"id"`
	AcademicYear         string    `json:"academicYear" example:"114"`
	Semester             string    `json:"semester" example:"1"`
	Label                string    `json:"label" example:"114學年度第1學期"`
	StartDate            string    `json:"startDate" example:"2025-09-01"`
	EndDate              string    `json:"endDate" example:"2026-01-20"`
	Holidays             []string  `json:"holidays"`
	TotalSchoolDays      int       `json:"totalSchoolDays" example:"95"`
	SemesterTotalPeriods int       `json:"semesterTotalPeriods" example:"456"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// NewSemesterResponse converts settings and reports the per-student period total
func NewSemesterResponse(s *models.SemesterSettings) SemesterResponse {
	holidays := make([]string, 0, len(s.Holidays))
	for _, h := range s.Holidays {
		holidays = append(holidays, reporting.DateKey(h))
	}
	cal := reporting.ResolveSchoolCalendar(s.StartDate, s.EndDate, s.Holidays)
	return SemesterResponse{
		ID:                   s.ID,
		AcademicYear:         s.AcademicYear,
		Semester:             s.Semester,
		Label:                s.Label,
		StartDate:            reporting.DateKey(s.StartDate),
		EndDate:              reporting.DateKey(s.EndDate),
		Holidays:             holidays,
		TotalSchoolDays:      s.TotalSchoolDays,
		SemesterTotalPeriods: cal.SemesterTotalPeriods(),
		UpdatedAt:            s.UpdatedAt,
	}
}

// HolidayPresetResponse lists the national calendar of an academic year
type HolidayPresetResponse struct {
	AcademicYear   string   `json:"academicYear" example:"114"`
	Holidays       []string `json:"holidays"`
	MakeupWorkdays []string `json:"makeupWorkdays"`
	Merged         []string `json:"merged"`
}
