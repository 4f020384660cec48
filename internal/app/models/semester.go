package models

import "time"

// SemesterSettings holds the configured calendar of one semester.
type SemesterSettings struct {
	ID              int64       `json:"id" db:"id"`
	AcademicYear    string      `json:"academicYear" db:"academic_year"`
	Semester        string      `json:"semester" db:"semester"`
	Label           string      `json:"label" db:"label"`
	StartDate       time.Time   `json:"startDate" db:"start_date"`
	EndDate         time.Time   `json:"endDate" db:"end_date"`
	Holidays        []time.Time `json:"holidays" db:"holidays"`
	TotalSchoolDays int         `json:"totalSchoolDays" db:"total_school_days"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time   `json:"updatedAt" db:"updated_at"`
}
