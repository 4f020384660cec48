package reporting

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/homeroom/internal/app/models"
)

// StudentCountRow holds the non-Present counts of one student.
type StudentCountRow struct {
	StudentID  string `json:"studentId"`
	Name       string `json:"name"`
	SeatNumber string `json:"seatNumber"`
	ThisWeek   int    `json:"thisWeek"`
	LastWeek   int    `json:"lastWeek"`
	ThisMonth  int    `json:"thisMonth"`
	LastMonth  int    `json:"lastMonth"`
	Semester   int    `json:"semester"`
}

// BuildStudentCountTable tallies each roster student's non-Present periods
// for the standard windows around asOf. Rows are ordered by seat number.
func BuildStudentCountTable(roster []models.Student, records []models.AttendanceRecord, cal *Calendar, asOf time.Time) []StudentCountRow {
	thisWeek := CountNonPresent(records, ThisWeek(asOf))
	lastWeek := CountNonPresent(records, LastWeek(asOf))
	thisMonth := CountNonPresent(records, ThisMonth(asOf))
	lastMonth := CountNonPresent(records, LastMonth(asOf))
	semester := CountNonPresent(records, WholeSemester(cal))

	rows := make([]StudentCountRow, 0, len(roster))
	for i := range roster {
		id := roster[i].StudentID
		rows = append(rows, StudentCountRow{
			StudentID:  id,
			Name:       roster[i].Name,
			SeatNumber: roster[i].SeatNumber,
			ThisWeek:   thisWeek[id],
			LastWeek:   lastWeek[id],
			ThisMonth:  thisMonth[id],
			LastMonth:  lastMonth[id],
			Semester:   semester[id],
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return SeatLess(rows[i].SeatNumber, rows[j].SeatNumber)
	})
	return rows
}

// SeatLess orders seat numbers numerically when both parse as integers and
// lexically otherwise.
func SeatLess(a, b string) bool {
	ai, aerr := strconv.Atoi(strings.TrimSpace(a))
	bi, berr := strconv.Atoi(strings.TrimSpace(b))
	switch {
	case aerr == nil && berr == nil:
		return ai < bi
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}

// ClassRoster is the set of students currently in one class.
type ClassRoster struct {
	ClassName string
	Students  []models.Student
}

// GroupByEffectiveClass splits students into rosters keyed by effective
// class, ordered by class name.
func GroupByEffectiveClass(students []models.Student) []ClassRoster {
	byClass := make(map[string][]models.Student)
	for _, s := range students {
		c := s.EffectiveClass()
		byClass[c] = append(byClass[c], s)
	}
	rosters := make([]ClassRoster, 0, len(byClass))
	for c, ss := range byClass {
		rosters = append(rosters, ClassRoster{ClassName: c, Students: ss})
	}
	sort.Slice(rosters, func(i, j int) bool { return rosters[i].ClassName < rosters[j].ClassName })
	return rosters
}

// WindowTallies groups the five standard windows of the school-wide table.
type WindowTallies struct {
	Today     AttendanceTally `json:"today"`
	ThisWeek  AttendanceTally `json:"thisWeek"`
	LastWeek  AttendanceTally `json:"lastWeek"`
	ThisMonth AttendanceTally `json:"thisMonth"`
	LastMonth AttendanceTally `json:"lastMonth"`
}

func (w WindowTallies) add(o WindowTallies) WindowTallies {
	return WindowTallies{
		Today:     w.Today.Add(o.Today),
		ThisWeek:  w.ThisWeek.Add(o.ThisWeek),
		LastWeek:  w.LastWeek.Add(o.LastWeek),
		ThisMonth: w.ThisMonth.Add(o.ThisMonth),
		LastMonth: w.LastMonth.Add(o.LastMonth),
	}
}

// AttendanceRow is one line of the school-wide attendance table. Today is
// nil when asOf is not a school day.
type AttendanceRow struct {
	Label         string        `json:"label"`
	Grade         int           `json:"grade"`
	TotalStudents int           `json:"totalStudents"`
	Today         *float64      `json:"today"`
	ThisWeek      float64       `json:"thisWeek"`
	LastWeek      float64       `json:"lastWeek"`
	ThisMonth     float64       `json:"thisMonth"`
	LastMonth     float64       `json:"lastMonth"`
	Tallies       WindowTallies `json:"-"`
}

// AttendanceTable is the school-wide attendance overview.
type AttendanceTable struct {
	Classes        []AttendanceRow `json:"classes"`
	Grades         []AttendanceRow `json:"grades"`
	School         *AttendanceRow  `json:"school,omitempty"`
	IsTodayHoliday bool            `json:"isTodayHoliday"`
}

// TableOptions tunes BuildAttendanceTable.
type TableOptions struct {
	Grade         GradeFunc
	IncludeSchool bool
}

// BuildAttendanceTable computes per-class attendance rates over the
// standard windows around asOf. Records are attributed to a class through
// the roster, not their className snapshot. Grade and school rows are
// built from summed tallies.
func BuildAttendanceTable(rosters []ClassRoster, records []models.AttendanceRecord, cal *Calendar, asOf time.Time, opts TableOptions) AttendanceTable {
	gradeOf := opts.Grade
	if gradeOf == nil {
		gradeOf = DefaultGrade
	}

	classOf := make(map[string]string)
	for _, r := range rosters {
		for _, s := range r.Students {
			classOf[s.StudentID] = r.ClassName
		}
	}
	recordsByClass := make(map[string][]models.AttendanceRecord)
	for _, rec := range records {
		if c, ok := classOf[rec.StudentID]; ok {
			recordsByClass[c] = append(recordsByClass[c], rec)
		}
	}

	holiday := !cal.IsSchoolDay(asOf)
	windows := [5]Window{Today(asOf), ThisWeek(asOf), LastWeek(asOf), ThisMonth(asOf), LastMonth(asOf)}

	table := AttendanceTable{IsTodayHoliday: holiday}
	gradeTotals := make(map[int]*AttendanceRow)
	school := &AttendanceRow{Label: "全校平均"}

	for _, r := range rosters {
		recs := recordsByClass[r.ClassName]
		n := len(r.Students)
		tallies := WindowTallies{
			Today:     TallyAttendance(recs, n, windows[0], cal),
			ThisWeek:  TallyAttendance(recs, n, windows[1], cal),
			LastWeek:  TallyAttendance(recs, n, windows[2], cal),
			ThisMonth: TallyAttendance(recs, n, windows[3], cal),
			LastMonth: TallyAttendance(recs, n, windows[4], cal),
		}
		grade, graded := gradeOf(r.ClassName)
		row := AttendanceRow{Label: r.ClassName, TotalStudents: n, Tallies: tallies}
		if graded {
			row.Grade = grade
			g, ok := gradeTotals[grade]
			if !ok {
				g = &AttendanceRow{Label: strconv.Itoa(grade) + "年級平均", Grade: grade}
				gradeTotals[grade] = g
			}
			g.TotalStudents += n
			g.Tallies = g.Tallies.add(tallies)
		}
		school.TotalStudents += n
		school.Tallies = school.Tallies.add(tallies)
		table.Classes = append(table.Classes, row.finish(holiday))
	}

	grades := make([]int, 0, len(gradeTotals))
	for g := range gradeTotals {
		grades = append(grades, g)
	}
	sort.Ints(grades)
	for _, g := range grades {
		table.Grades = append(table.Grades, gradeTotals[g].finish(holiday))
	}
	if opts.IncludeSchool {
		s := school.finish(holiday)
		table.School = &s
	}
	return table
}

func (r AttendanceRow) finish(holiday bool) AttendanceRow {
	if !holiday {
		today := r.Tallies.Today.Rate()
		r.Today = &today
	}
	r.ThisWeek = r.Tallies.ThisWeek.Rate()
	r.LastWeek = r.Tallies.LastWeek.Rate()
	r.ThisMonth = r.Tallies.ThisMonth.Rate()
	r.LastMonth = r.Tallies.LastMonth.Rate()
	return r
}
