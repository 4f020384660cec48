package reporting

import "strings"

// GradeFunc maps a class name to its grade. ok is false for classes that
// carry no recognizable grade marker.
type GradeFunc func(className string) (grade int, ok bool)

var gradeMarkers = []struct {
	marker string
	grade  int
}{
	{"一", 1},
	{"二", 2},
	{"三", 3},
}

// DefaultGrade reads the first of 一, 二, 三 found in the class name.
func DefaultGrade(className string) (int, bool) {
	for _, m := range gradeMarkers {
		if strings.Contains(className, m.marker) {
			return m.grade, true
		}
	}
	return 0, false
}

// GradeTable builds a GradeFunc from an explicit class-to-grade mapping,
// falling back to next for unknown classes. next may be nil.
func GradeTable(table map[string]int, next GradeFunc) GradeFunc {
	return func(className string) (int, bool) {
		if g, ok := table[className]; ok {
			return g, true
		}
		if next != nil {
			return next(className)
		}
		return 0, false
	}
}
