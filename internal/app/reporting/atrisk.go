package reporting

import (
	"time"

	"github.com/yigit/homeroom/internal/app/models"
)

// AtRiskMode selects the threshold rule of the at-risk classifier.
type AtRiskMode string

const (
	ModeFixedPeriods  AtRiskMode = "fixed_periods"
	ModeSemesterRatio AtRiskMode = "semester_ratio"
	ModeRecentPeriods AtRiskMode = "recent_periods"
)

const (
	DefaultFixedThreshold  = 20
	DefaultRatioThreshold  = 5
	DefaultRecentThreshold = 10
	// RecentWindowDays is the trailing window of recent_periods, as-of day included.
	RecentWindowDays = 14
)

// Valid reports whether m is a known mode.
func (m AtRiskMode) Valid() bool {
	switch m {
	case ModeFixedPeriods, ModeSemesterRatio, ModeRecentPeriods:
		return true
	default:
		return false
	}
}

// DefaultThreshold returns the threshold used when none is given.
func (m AtRiskMode) DefaultThreshold() int {
	switch m {
	case ModeFixedPeriods:
		return DefaultFixedThreshold
	case ModeSemesterRatio:
		return DefaultRatioThreshold
	case ModeRecentPeriods:
		return DefaultRecentThreshold
	default:
		return 0
	}
}

// ValidRatioThreshold reports whether t is an accepted semester_ratio
// denominator.
func ValidRatioThreshold(t int) bool {
	return t == 3 || t == 4 || t == 5
}

// StudentSet is an unordered set of student ids.
type StudentSet map[string]struct{}

// Has reports whether id is in the set.
func (s StudentSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// ClassifyAtRisk flags roster students by mode. records should cover the
// semester; recent_periods only looks at the trailing two weeks ending on
// asOf. A threshold <= 0 falls back to the mode default. semester_ratio
// flags nobody when semesterTotalPeriods <= 0 or the threshold is not 3, 4
// or 5.
func ClassifyAtRisk(mode AtRiskMode, threshold int, records []models.AttendanceRecord, roster []models.Student, semesterTotalPeriods int, asOf time.Time) StudentSet {
	flagged := make(StudentSet)
	if threshold <= 0 {
		threshold = mode.DefaultThreshold()
	}

	var counts map[string]int
	var flag func(count int) bool

	switch mode {
	case ModeFixedPeriods:
		counts = countAll(records)
		flag = func(count int) bool { return count >= threshold }
	case ModeSemesterRatio:
		if semesterTotalPeriods <= 0 || !ValidRatioThreshold(threshold) {
			return flagged
		}
		counts = countAll(records)
		// count >= total/threshold without floating point
		flag = func(count int) bool { return count*threshold >= semesterTotalPeriods }
	case ModeRecentPeriods:
		counts = CountNonPresent(records, Trailing(asOf, RecentWindowDays))
		flag = func(count int) bool { return count >= threshold }
	default:
		return flagged
	}

	for i := range roster {
		id := roster[i].StudentID
		if flag(counts[id]) {
			flagged[id] = struct{}{}
		}
	}
	return flagged
}

func countAll(records []models.AttendanceRecord) map[string]int {
	counts := make(map[string]int)
	for i := range records {
		if records[i].Status.NonPresent() {
			counts[records[i].StudentID]++
		}
	}
	return counts
}
