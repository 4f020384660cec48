package reporting

import "time"

// Window is an inclusive calendar-day range.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a window from two instants, truncated to days.
func NewWindow(start, end time.Time) Window {
	return Window{Start: Day(start), End: Day(end)}
}

// Contains reports whether date falls inside the window.
func (w Window) Contains(date time.Time) bool {
	d := Day(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Empty reports whether the window contains no days.
func (w Window) Empty() bool {
	return w.End.Before(w.Start)
}

// Today is the single-day window of asOf.
func Today(asOf time.Time) Window {
	d := Day(asOf)
	return Window{Start: d, End: d}
}

// ThisWeek runs Monday through Sunday around asOf.
func ThisWeek(asOf time.Time) Window {
	d := Day(asOf)
	offset := (int(d.Weekday()) + 6) % 7
	monday := d.AddDate(0, 0, -offset)
	return Window{Start: monday, End: monday.AddDate(0, 0, 6)}
}

// LastWeek is the Monday-Sunday week before ThisWeek.
func LastWeek(asOf time.Time) Window {
	w := ThisWeek(asOf)
	return Window{Start: w.Start.AddDate(0, 0, -7), End: w.End.AddDate(0, 0, -7)}
}

// ThisMonth spans the calendar month of asOf.
func ThisMonth(asOf time.Time) Window {
	d := Day(asOf)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: first, End: first.AddDate(0, 1, -1)}
}

// LastMonth spans the calendar month before asOf's.
func LastMonth(asOf time.Time) Window {
	d := Day(asOf)
	first := time.Date(d.Year(), d.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: first, End: first.AddDate(0, 1, -1)}
}

// Trailing is the n calendar days ending on asOf, inclusive.
func Trailing(asOf time.Time, days int) Window {
	d := Day(asOf)
	if days <= 0 {
		return Window{Start: d, End: d.AddDate(0, 0, -1)}
	}
	return Window{Start: d.AddDate(0, 0, -(days - 1)), End: d}
}

// SemesterToDate runs from the calendar start to asOf, capped at the
// calendar end.
func SemesterToDate(c *Calendar, asOf time.Time) Window {
	end := Day(asOf)
	if end.After(c.End()) {
		end = c.End()
	}
	return Window{Start: c.Start(), End: end}
}

// WholeSemester spans the calendar range.
func WholeSemester(c *Calendar) Window {
	return Window{Start: c.Start(), End: c.End()}
}
