package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/homeroom/internal/app/models"
)

func record(class string, visible models.YesNo) models.CounselingRecord {
	return models.CounselingRecord{StudentID: "S1", ClassName: class, VisibleToTeacher: visible}
}

func TestCanViewCounseling(t *testing.T) {
	tests := []struct {
		name    string
		role    models.Role
		classes []string
		record  models.CounselingRecord
		want    bool
	}{
		{"admin sees hidden", models.RoleAdmin, nil, record("1A", models.No), true},
		{"admin sees other class", models.RoleAdmin, []string{"2B"}, record("1A", models.Yes), true},
		{"teacher hidden record", models.RoleTeacher, []string{"1A"}, record("1A", models.No), false},
		{"teacher visible record", models.RoleTeacher, []string{"1A"}, record("1A", models.Yes), true},
		{"teacher other class", models.RoleTeacher, []string{"1A"}, record("1B", models.Yes), false},
		{"teacher without classes", models.RoleTeacher, nil, record("1A", models.Yes), false},
		{"teacher empty class", models.RoleTeacher, []string{""}, record("", models.Yes), false},
		{"teacher unset flag", models.RoleTeacher, []string{"1A"}, record("1A", ""), false},
		{"part-time visible record", models.RolePartTime, []string{"1A"}, record("1A", models.Yes), false},
		{"part-time hidden record", models.RolePartTime, []string{"1A"}, record("1A", models.No), false},
		{"unknown role", models.Role("guest"), []string{"1A"}, record("1A", models.Yes), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewCounseling(tt.role, tt.classes, tt.record))
		})
	}
}

func TestPartTimeNeverSeesCounseling(t *testing.T) {
	classes := [][]string{nil, {}, {"1A"}, {"1A", "2B", "3C"}}
	records := []models.CounselingRecord{
		record("1A", models.Yes), record("1A", models.No), record("", models.Yes), record("3C", models.Yes),
	}
	for _, cs := range classes {
		for _, r := range records {
			assert.False(t, CanViewCounseling(models.RolePartTime, cs, r))
		}
	}
}

func TestCanViewCounselingOfUsesCurrentClass(t *testing.T) {
	perm := models.Permission{Role: models.RoleTeacher, AssignedClasses: []string{"二年甲班"}}
	r := record("一年甲班", models.Yes)

	assert.False(t, CanViewCounselingOf(perm, r, ""))
	assert.True(t, CanViewCounselingOf(perm, r, "二年甲班"))
}

func TestCanViewClass(t *testing.T) {
	teacher := models.Permission{Role: models.RoleTeacher, AssignedClasses: []string{"1A"}}
	partTime := models.Permission{Role: models.RolePartTime, AssignedClasses: []string{"1A", "1B"}}

	assert.True(t, CanViewClass(models.Permission{Role: models.RoleAdmin}, "anything"))
	assert.True(t, CanViewClass(teacher, "1A"))
	assert.False(t, CanViewClass(teacher, "1B"))
	assert.True(t, CanViewClass(partTime, "1B"))
	assert.False(t, CanViewClass(models.Permission{Role: "guest", AssignedClasses: []string{"1A"}}, "1A"))
}

func TestFilterStudentsAndAttendance(t *testing.T) {
	moved := "1B"
	students := []models.Student{
		{StudentID: "a", ClassName: "1A"},
		{StudentID: "b", ClassName: "1A", CurrentClass: &moved},
		{StudentID: "c", ClassName: "2A"},
	}
	perm := models.Permission{Role: models.RoleTeacher, AssignedClasses: []string{"1B"}}

	visible := FilterStudents(perm, students)
	require.Len(t, visible, 1)
	assert.Equal(t, "b", visible[0].StudentID)

	records := []models.AttendanceRecord{
		{StudentID: "a", ClassName: "1A"},
		{StudentID: "b", ClassName: "1A"}, // snapshot predates the class change
		{StudentID: "x", ClassName: "1B"}, // unknown student, snapshot decides
	}
	kept := FilterAttendance(perm, records, ClassIndex(students))
	require.Len(t, kept, 2)
	assert.Equal(t, "b", kept[0].StudentID)
	assert.Equal(t, "x", kept[1].StudentID)

	assert.Len(t, FilterAttendance(models.Permission{Role: models.RoleAdmin}, records, nil), 3)
}

func TestFilterCounseling(t *testing.T) {
	records := []models.CounselingRecord{
		{StudentID: "a", ClassName: "1A", VisibleToTeacher: models.Yes},
		{StudentID: "a", ClassName: "1A", VisibleToTeacher: models.No},
		{StudentID: "c", ClassName: "2A", VisibleToTeacher: models.Yes},
	}
	classOf := map[string]string{"a": "1A", "c": "2A"}

	teacher := FilterCounseling(models.Permission{Role: models.RoleTeacher, AssignedClasses: []string{"1A"}}, records, classOf)
	assert.Len(t, teacher, 1)

	assert.Empty(t, FilterCounseling(models.Permission{Role: models.RolePartTime, AssignedClasses: []string{"1A", "2A"}}, records, classOf))
	assert.Len(t, FilterCounseling(models.Permission{Role: models.RoleAdmin}, records, classOf), 3)
}

func TestCanWriteCounseling(t *testing.T) {
	assert.True(t, CanWriteCounseling(models.RoleAdmin))
	assert.True(t, CanWriteCounseling(models.RoleTeacher))
	assert.False(t, CanWriteCounseling(models.RolePartTime))
}
