package reporting

import (
	"time"
)

const dateLayout = "2006-01-02"

// Day truncates t to its calendar day in t's own location and re-anchors
// it at UTC midnight, so days from different zones compare by date only.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey formats a calendar day as yyyy-MM-dd.
func DateKey(t time.Time) string {
	return Day(t).Format(dateLayout)
}

// ParseDate parses a yyyy-MM-dd string into a calendar day.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// periodsByWeekday is the fixed policy table of evening periods per day.
var periodsByWeekday = [7]int{
	time.Sunday:    0,
	time.Monday:    5,
	time.Tuesday:   5,
	time.Wednesday: 5,
	time.Thursday:  5,
	time.Friday:    4,
	time.Saturday:  0,
}

// MaxPeriodsPerDay is the largest entry of the weekday policy table.
const MaxPeriodsPerDay = 5

// Calendar is a resolved semester calendar. It is immutable once built.
type Calendar struct {
	start    time.Time
	end      time.Time
	holidays map[string]struct{}
}

// ResolveSchoolCalendar builds a calendar spanning [start, end] inclusive.
// An inverted range is allowed and simply contains no school days.
func ResolveSchoolCalendar(start, end time.Time, holidays []time.Time) *Calendar {
	c := &Calendar{
		start:    Day(start),
		end:      Day(end),
		holidays: make(map[string]struct{}, len(holidays)),
	}
	for _, h := range holidays {
		c.holidays[DateKey(h)] = struct{}{}
	}
	return c
}

// Start returns the first day of the calendar.
func (c *Calendar) Start() time.Time { return c.start }

// End returns the last day of the calendar.
func (c *Calendar) End() time.Time { return c.end }

// IsHoliday reports whether date is in the holiday set.
func (c *Calendar) IsHoliday(date time.Time) bool {
	_, ok := c.holidays[DateKey(date)]
	return ok
}

// IsSchoolDay reports whether date is a weekday that is not a holiday.
// The semester range is not consulted.
func (c *Calendar) IsSchoolDay(date time.Time) bool {
	return c.PeriodsPerDay(date) > 0
}

// PeriodsPerDay returns the number of expected periods on date.
func (c *Calendar) PeriodsPerDay(date time.Time) int {
	if c.IsHoliday(date) {
		return 0
	}
	return periodsByWeekday[date.Weekday()]
}

// SchoolDayCount counts school days in the semester range.
func (c *Calendar) SchoolDayCount() int {
	return c.SchoolDaysBetween(c.start, c.end)
}

// SchoolDaysBetween counts school days in [from, to]. It is zero when to is
// before from.
func (c *Calendar) SchoolDaysBetween(from, to time.Time) int {
	n := 0
	forEachDay(from, to, func(d time.Time) {
		if c.IsSchoolDay(d) {
			n++
		}
	})
	return n
}

// ExpectedPeriods sums PeriodsPerDay over [from, to] for one student.
func (c *Calendar) ExpectedPeriods(from, to time.Time) int {
	n := 0
	forEachDay(from, to, func(d time.Time) {
		n += c.PeriodsPerDay(d)
	})
	return n
}

// SemesterTotalPeriods is the per-student period count of the whole range.
func (c *Calendar) SemesterTotalPeriods() int {
	return c.ExpectedPeriods(c.start, c.end)
}

func forEachDay(from, to time.Time, fn func(time.Time)) {
	for d, last := Day(from), Day(to); !d.After(last); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
