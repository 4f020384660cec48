package dto

import (
	"github.com/yigit/homeroom/internal/app/reporting"
)

// StatisticsRequest selects the reference day of a report
type StatisticsRequest struct {
	// AsOf defaults to today in the configured time zone
	AsOf string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// StudentCountRequest selects a class for the per-student table
type StudentCountRequest struct {
	ClassName string `form:"className" binding:"required"`
	AsOf      string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
	Mask      bool   `form:"mask"`
}

// AtRiskRequest selects the at-risk rule
type AtRiskRequest struct {
	Mode      string `form:"mode" binding:"required,oneof=fixed_periods semester_ratio recent_periods"`
	Threshold int    `form:"threshold" binding:"omitempty,min=1,max=1000"`
	ClassName string `form:"className"`
	AsOf      string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
}

// AtRiskStudent is one flagged student
type AtRiskStudent struct {
	StudentID       string `json:"studentId"`
	Name            string `json:"name"`
	ClassName       string `json:"className"`
	SeatNumber      string `json:"seatNumber"`
	SemesterCount   int    `json:"semesterCount"`
	RecentCount     int    `json:"recentCount"`
	CounselingCount int    `json:"counselingCount"`
}

// AtRiskResponse lists flagged students with the rule that flagged them
type AtRiskResponse struct {
	Mode                 reporting.AtRiskMode `json:"mode"`
	Threshold            int                  `json:"threshold"`
	SemesterTotalPeriods int                  `json:"semesterTotalPeriods"`
	AsOf                 string               `json:"asOf"`
	Students             []AtRiskStudent      `json:"students"`
}

// AttendanceTableResponse is the school-wide attendance overview
type AttendanceTableResponse struct {
	AsOf string `json:"asOf"`
	reporting.AttendanceTable
}

// StudentCountResponse is the per-student count table of a class
type StudentCountResponse struct {
	ClassName string                      `json:"className"`
	AsOf      string                      `json:"asOf"`
	Rows      []reporting.StudentCountRow `json:"rows"`
}

// CounselingStatsResponse is the counseling coverage report
type CounselingStatsResponse struct {
	reporting.StatsRollup
}
