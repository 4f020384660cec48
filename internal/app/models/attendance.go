package models

import "time"

// AttendanceStatus is the roll-call mark of one student in one period.
type AttendanceStatus string

const (
	StatusPresent     AttendanceStatus = "Present"
	StatusLate        AttendanceStatus = "Late"
	StatusSick        AttendanceStatus = "Sick"
	StatusPersonal    AttendanceStatus = "Personal"
	StatusOfficial    AttendanceStatus = "Official"
	StatusMenstrual   AttendanceStatus = "Menstrual"
	StatusBereavement AttendanceStatus = "Bereavement"
	StatusAbsent      AttendanceStatus = "Absent"
)

// Valid reports whether s is a known status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusSick, StatusPersonal,
		StatusOfficial, StatusMenstrual, StatusBereavement, StatusAbsent:
		return true
	default:
		return false
	}
}

// NonPresent reports whether the status counts as an absence-equivalent.
func (s AttendanceStatus) NonPresent() bool {
	return s != StatusPresent
}

// Period is a class time-slot label.
type Period string

// Periods is the fixed, ordered set of evening class periods.
var Periods = []Period{"第一節", "第二節", "第三節", "第四節", "第五節"}

// PeriodIndex returns the 0-based position of p, or -1.
func PeriodIndex(p Period) int {
	for i, known := range Periods {
		if known == p {
			return i
		}
	}
	return -1
}

// AttendanceRecord is a single period mark. (StudentID, Date, Period) is unique.
type AttendanceRecord struct {
	ID          int64            `json:"id" db:"id"`
	StudentID   string           `json:"studentId" db:"student_id"`
	StudentName string           `json:"studentName" db:"student_name"`
	ClassName   string           `json:"className" db:"class_name"`
	Date        time.Time        `json:"date" db:"date"`
	Period      Period           `json:"period" db:"period"`
	Status      AttendanceStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
}
