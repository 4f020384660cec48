package reporting

import (
	"strconv"
	"time"
)

// AcademicYear returns the ROC academic year that date falls in. The year
// turns over in August.
func AcademicYear(date time.Time) int {
	if date.Month() >= time.August {
		return date.Year() - 1911
	}
	return date.Year() - 1912
}

// SemesterOf returns 1 for August through January and 2 for February
// through July.
func SemesterOf(date time.Time) int {
	m := date.Month()
	if m >= time.August || m == time.January {
		return 1
	}
	return 2
}

// AcademicTerm identifies a semester by academic year and number.
type AcademicTerm struct {
	AcademicYear string
	Semester     string
}

// TermOf derives the academic term of date.
func TermOf(date time.Time) AcademicTerm {
	return AcademicTerm{
		AcademicYear: strconv.Itoa(AcademicYear(date)),
		Semester:     strconv.Itoa(SemesterOf(date)),
	}
}

// Label renders the term the way settings are titled, e.g. "114學年度第1學期".
func (t AcademicTerm) Label() string {
	return t.AcademicYear + "學年度第" + t.Semester + "學期"
}
