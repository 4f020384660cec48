package auth

import (
	"slices"

	"github.com/yigit/homeroom/internal/app/models"
)

// CanViewCounseling decides whether a reader may see a counseling record.
// Admins see everything; teachers need the record to be flagged visible and
// to belong to one of their classes; part-time teachers never see
// counseling. Unknown roles see nothing.
func CanViewCounseling(role models.Role, assignedClasses []string, record models.CounselingRecord) bool {
	return canViewCounselingIn(role, assignedClasses, record, record.ClassName)
}

// CanViewCounselingOf is CanViewCounseling with the class membership taken
// from the student's current class. An empty studentClass falls back to the
// class stored on the record.
func CanViewCounselingOf(perm models.Permission, record models.CounselingRecord, studentClass string) bool {
	if studentClass == "" {
		studentClass = record.ClassName
	}
	return canViewCounselingIn(perm.Role, perm.AssignedClasses, record, studentClass)
}

func canViewCounselingIn(role models.Role, assignedClasses []string, record models.CounselingRecord, className string) bool {
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleTeacher:
		return record.VisibleToTeacher == models.Yes && className != "" && slices.Contains(assignedClasses, className)
	case models.RolePartTime:
		return false
	default:
		return false
	}
}

// CanViewClass decides whether attendance and statistics of a class are
// visible. Teachers and part-time teachers are limited to their classes.
func CanViewClass(perm models.Permission, className string) bool {
	switch perm.Role {
	case models.RoleAdmin:
		return true
	case models.RoleTeacher, models.RolePartTime:
		return perm.HasClass(className)
	default:
		return false
	}
}

// CanWriteCounseling reports whether the role may author counseling notes.
func CanWriteCounseling(role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleTeacher:
		return true
	case models.RolePartTime:
		return false
	default:
		return false
	}
}

// FilterStudents keeps the students whose current class is visible.
func FilterStudents(perm models.Permission, students []models.Student) []models.Student {
	if perm.Role == models.RoleAdmin {
		return students
	}
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		if CanViewClass(perm, s.EffectiveClass()) {
			out = append(out, s)
		}
	}
	return out
}

// FilterAttendance keeps the attendance records of visible students.
// classOf maps a student id to the student's current class; records of
// students missing from it fall back to the class snapshot on the record.
func FilterAttendance(perm models.Permission, records []models.AttendanceRecord, classOf map[string]string) []models.AttendanceRecord {
	if perm.Role == models.RoleAdmin {
		return records
	}
	out := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		class, ok := classOf[r.StudentID]
		if !ok {
			class = r.ClassName
		}
		if CanViewClass(perm, class) {
			out = append(out, r)
		}
	}
	return out
}

// FilterCounseling keeps the counseling records the reader may see, using
// the student's current class from classOf when known.
func FilterCounseling(perm models.Permission, records []models.CounselingRecord, classOf map[string]string) []models.CounselingRecord {
	out := make([]models.CounselingRecord, 0, len(records))
	for _, r := range records {
		if CanViewCounselingOf(perm, r, classOf[r.StudentID]) {
			out = append(out, r)
		}
	}
	return out
}

// ClassIndex maps student ids to effective classes.
func ClassIndex(students []models.Student) map[string]string {
	idx := make(map[string]string, len(students))
	for i := range students {
		idx[students[i].StudentID] = students[i].EffectiveClass()
	}
	return idx
}
