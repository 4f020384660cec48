package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindows(t *testing.T) {
	asOf := date(t, "2025-10-15") // Wednesday

	tests := []struct {
		name       string
		got        Window
		start, end string
	}{
		{"today", Today(asOf), "2025-10-15", "2025-10-15"},
		{"this week", ThisWeek(asOf), "2025-10-13", "2025-10-19"},
		{"last week", LastWeek(asOf), "2025-10-06", "2025-10-12"},
		{"this month", ThisMonth(asOf), "2025-10-01", "2025-10-31"},
		{"last month", LastMonth(asOf), "2025-09-01", "2025-09-30"},
		{"trailing 14", Trailing(asOf, 14), "2025-10-02", "2025-10-15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.start, DateKey(tt.got.Start))
			assert.Equal(t, tt.end, DateKey(tt.got.End))
		})
	}
}

func TestThisWeekOnSunday(t *testing.T) {
	w := ThisWeek(date(t, "2025-10-19"))
	assert.Equal(t, "2025-10-13", DateKey(w.Start))
	assert.Equal(t, "2025-10-19", DateKey(w.End))
}

func TestLastMonthAcrossYear(t *testing.T) {
	w := LastMonth(date(t, "2026-01-10"))
	assert.Equal(t, "2025-12-01", DateKey(w.Start))
	assert.Equal(t, "2025-12-31", DateKey(w.End))
}

func TestSemesterToDate(t *testing.T) {
	cal := ResolveSchoolCalendar(date(t, "2025-09-01"), date(t, "2026-01-20"), nil)

	w := SemesterToDate(cal, date(t, "2025-10-15"))
	assert.Equal(t, "2025-09-01", DateKey(w.Start))
	assert.Equal(t, "2025-10-15", DateKey(w.End))

	w = SemesterToDate(cal, date(t, "2026-03-01"))
	assert.Equal(t, "2026-01-20", DateKey(w.End))
}

func TestWindowContains(t *testing.T) {
	w := NewWindow(date(t, "2025-09-01"), date(t, "2025-09-05"))
	assert.True(t, w.Contains(date(t, "2025-09-01")))
	assert.True(t, w.Contains(date(t, "2025-09-05")))
	assert.False(t, w.Contains(date(t, "2025-09-06")))
	assert.False(t, w.Empty())
	assert.True(t, Trailing(date(t, "2025-09-01"), 0).Empty())
}
