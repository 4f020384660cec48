package reporting

import (
	"sort"
	"time"
)

// MergeHolidays adds every holiday and removes every make-up workday, and
// returns the result sorted and free of duplicates.
func MergeHolidays(holidays, makeupWorkdays []time.Time) []time.Time {
	workdays := make(map[string]struct{}, len(makeupWorkdays))
	for _, w := range makeupWorkdays {
		workdays[DateKey(w)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(holidays))
	merged := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		key := DateKey(h)
		if _, skip := workdays[key]; skip {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, Day(h))
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Before(merged[j]) })
	return merged
}

// HolidayPreset is a named list of national holidays and make-up workdays.
type HolidayPreset struct {
	AcademicYear   string
	Holidays       []time.Time
	MakeupWorkdays []time.Time
}

// Merged applies MergeHolidays to the preset.
func (p HolidayPreset) Merged() []time.Time {
	return MergeHolidays(p.Holidays, p.MakeupWorkdays)
}

func mustDates(keys ...string) []time.Time {
	out := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		d, err := ParseDate(k)
		if err != nil {
			panic(err)
		}
		out = append(out, d)
	}
	return out
}

var holidayPresets = map[string]HolidayPreset{
	"114": {
		AcademicYear: "114",
		Holidays: mustDates(
			"2025-09-08", // 中秋節補假
			"2025-10-10", // 國慶日
			"2026-01-01", // 元旦
			"2026-01-02", // 元旦彈性放假
			"2026-02-16", "2026-02-17", "2026-02-18", "2026-02-19", "2026-02-20", // 春節
			"2026-02-27", // 和平紀念日補假
			"2026-04-03", // 兒童節及清明節
			"2026-06-19", // 端午節
		),
		MakeupWorkdays: mustDates("2026-02-21"),
	},
}

// LookupHolidayPreset returns the national calendar for academicYear.
func LookupHolidayPreset(academicYear string) (HolidayPreset, bool) {
	p, ok := holidayPresets[academicYear]
	return p, ok
}
