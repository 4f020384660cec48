package reporting

import (
	"sort"
	"strconv"

	"github.com/yigit/homeroom/internal/app/models"
)

// ClassStats summarises counseling coverage of one class, grade or the
// whole school.
type ClassStats struct {
	Label          string  `json:"label"`
	Grade          int     `json:"grade"`
	TotalStudents  int     `json:"totalStudents"`
	Counseled      int     `json:"counseled"`
	Ratio          float64 `json:"ratio"` // percent of students counseled, 0 for an empty class
	PersonalTalks  int     `json:"personalTalks"`
	FamilyContacts int     `json:"familyContacts"`
}

func (s *ClassStats) add(o ClassStats) {
	s.TotalStudents += o.TotalStudents
	s.Counseled += o.Counseled
	s.PersonalTalks += o.PersonalTalks
	s.FamilyContacts += o.FamilyContacts
}

func (s *ClassStats) finish() {
	if s.TotalStudents == 0 {
		s.Ratio = 0
		return
	}
	s.Ratio = float64(s.Counseled) / float64(s.TotalStudents) * 100
}

// RollUpClassStats computes per-class counseling statistics. Students are
// grouped by effective class; records are attributed through their student.
// Both inputs must already be filtered by the visibility gate.
func RollUpClassStats(students []models.Student, records []models.CounselingRecord) []ClassStats {
	type classAcc struct {
		stats     ClassStats
		counseled map[string]struct{}
	}
	classOf := make(map[string]string, len(students))
	acc := make(map[string]*classAcc)
	for i := range students {
		c := students[i].EffectiveClass()
		classOf[students[i].StudentID] = c
		a, ok := acc[c]
		if !ok {
			a = &classAcc{stats: ClassStats{Label: c}, counseled: make(map[string]struct{})}
			acc[c] = a
		}
		a.stats.TotalStudents++
	}

	for i := range records {
		c, ok := classOf[records[i].StudentID]
		if !ok {
			continue
		}
		a := acc[c]
		a.counseled[records[i].StudentID] = struct{}{}
		switch records[i].RecordType {
		case models.RecordTypePersonalTalk:
			a.stats.PersonalTalks++
		case models.RecordTypeFamilyContact:
			a.stats.FamilyContacts++
		}
	}

	out := make([]ClassStats, 0, len(acc))
	for _, a := range acc {
		a.stats.Counseled = len(a.counseled)
		a.stats.finish()
		out = append(out, a.stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// StatsRollup holds the three levels of the counseling statistics view.
type StatsRollup struct {
	Classes []ClassStats `json:"classes"`
	Grades  []ClassStats `json:"grades"`
	School  *ClassStats  `json:"school,omitempty"`
}

// RollUp sums class stats into grade rows and, when includeSchool is set,
// a school-wide row. Ungraded classes only reach the school row. Ratios are
// recomputed from the sums.
func RollUp(classes []ClassStats, gradeOf GradeFunc, includeSchool bool) StatsRollup {
	if gradeOf == nil {
		gradeOf = DefaultGrade
	}
	byGrade := make(map[int]*ClassStats)
	school := ClassStats{Label: "全校"}
	rolled := StatsRollup{Classes: make([]ClassStats, 0, len(classes))}

	for _, c := range classes {
		if g, ok := gradeOf(c.Label); ok {
			c.Grade = g
			row, exists := byGrade[g]
			if !exists {
				row = &ClassStats{Label: strconv.Itoa(g) + "年級", Grade: g}
				byGrade[g] = row
			}
			row.add(c)
		}
		school.add(c)
		rolled.Classes = append(rolled.Classes, c)
	}

	grades := make([]int, 0, len(byGrade))
	for g := range byGrade {
		grades = append(grades, g)
	}
	sort.Ints(grades)
	for _, g := range grades {
		row := byGrade[g]
		row.finish()
		rolled.Grades = append(rolled.Grades, *row)
	}
	if includeSchool {
		school.finish()
		rolled.School = &school
	}
	return rolled
}

// CanViewAggregates reports whether role may see grade and school rows.
func CanViewAggregates(role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleTeacher:
		return true
	case models.RolePartTime:
		return false
	default:
		return false
	}
}
