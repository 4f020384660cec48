package reporting

import (
	"math"

	"github.com/yigit/homeroom/internal/app/models"
)

// AttendanceTally is the raw material of an attendance rate. Tallies are
// summed across classes before any division happens.
type AttendanceTally struct {
	Expected   int `json:"expected"`
	NonPresent int `json:"nonPresent"`
}

// Add returns the element-wise sum of two tallies.
func (t AttendanceTally) Add(o AttendanceTally) AttendanceTally {
	return AttendanceTally{
		Expected:   t.Expected + o.Expected,
		NonPresent: t.NonPresent + o.NonPresent,
	}
}

// Rate is the attendance percentage, clamped at 0. Zero expected periods
// means full attendance.
func (t AttendanceTally) Rate() float64 {
	if t.Expected <= 0 {
		return 100
	}
	rate := float64(t.Expected-t.NonPresent) / float64(t.Expected) * 100
	if rate < 0 {
		return 0
	}
	return rate
}

// TallyAttendance counts expected and non-Present periods of a roster over
// window. records must already be scoped to the roster; duplicates are
// counted as given.
func TallyAttendance(records []models.AttendanceRecord, rosterSize int, window Window, cal *Calendar) AttendanceTally {
	if rosterSize <= 0 {
		return AttendanceTally{}
	}
	tally := AttendanceTally{
		Expected: cal.ExpectedPeriods(window.Start, window.End) * rosterSize,
	}
	for i := range records {
		if records[i].Status.NonPresent() && window.Contains(records[i].Date) {
			tally.NonPresent++
		}
	}
	return tally
}

// ComputeAttendanceRate returns the attendance percentage of a roster over
// window.
func ComputeAttendanceRate(records []models.AttendanceRecord, rosterSize int, window Window, cal *Calendar) float64 {
	return TallyAttendance(records, rosterSize, window, cal).Rate()
}

// CountNonPresent returns the number of non-Present periods per student
// inside window. Students without any are absent from the map.
func CountNonPresent(records []models.AttendanceRecord, window Window) map[string]int {
	counts := make(map[string]int)
	for i := range records {
		r := &records[i]
		if r.Status.NonPresent() && window.Contains(r.Date) {
			counts[r.StudentID]++
		}
	}
	return counts
}

// RoundRate rounds a percentage to one decimal place for display.
func RoundRate(rate float64) float64 {
	return math.Round(rate*10) / 10
}
