package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGrade(t *testing.T) {
	tests := []struct {
		class string
		grade int
		ok    bool
	}{
		{"一年甲班", 1, true},
		{"二年乙班", 2, true},
		{"三年丙班", 3, true},
		{"資訊應用學程", 0, false},
		{"", 0, false},
		// 一 is checked first
		{"三年一班", 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			g, ok := DefaultGrade(tt.class)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.grade, g)
		})
	}
}

func TestGradeTable(t *testing.T) {
	gradeOf := GradeTable(map[string]int{"資訊應用學程": 2}, DefaultGrade)

	g, ok := gradeOf("資訊應用學程")
	assert.True(t, ok)
	assert.Equal(t, 2, g)

	g, ok = gradeOf("三年甲班")
	assert.True(t, ok)
	assert.Equal(t, 3, g)

	_, ok = GradeTable(nil, nil)("三年甲班")
	assert.False(t, ok)
}
