package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/homeroom/internal/app/models"
)

func TestClassifyAtRiskFixedPeriods(t *testing.T) {
	students := roster("二年甲班", 4)
	var records []models.AttendanceRecord
	records = append(records, absences(students[0].StudentID, "2025-09-01", 19)...)
	records = append(records, absences(students[1].StudentID, "2025-09-01", 20)...)
	records = append(records, absences(students[2].StudentID, "2025-09-01", 35)...)
	// outsider is not on the roster and must never be flagged
	records = append(records, absences("outsider", "2025-09-01", 50)...)

	flagged := ClassifyAtRisk(ModeFixedPeriods, 20, records, students, 0, date(t, "2025-12-01"))

	assert.Equal(t, StudentSet{
		students[1].StudentID: {},
		students[2].StudentID: {},
	}, flagged)
	assert.False(t, flagged.Has(students[0].StudentID))
	assert.False(t, flagged.Has(students[3].StudentID))
	assert.False(t, flagged.Has("outsider"))
}

func TestClassifyAtRiskDefaultThreshold(t *testing.T) {
	students := roster("二年甲班", 2)
	records := append(absences(students[0].StudentID, "2025-09-01", 20), absences(students[1].StudentID, "2025-09-01", 19)...)

	flagged := ClassifyAtRisk(ModeFixedPeriods, 0, records, students, 0, date(t, "2025-12-01"))
	assert.True(t, flagged.Has(students[0].StudentID))
	assert.False(t, flagged.Has(students[1].StudentID))
}

func TestClassifyAtRiskSemesterRatio(t *testing.T) {
	students := roster("三年乙班", 2)
	records := append(absences(students[0].StudentID, "2025-09-01", 89), absences(students[1].StudentID, "2025-09-01", 90)...)

	flagged := ClassifyAtRisk(ModeSemesterRatio, 5, records, students, 450, date(t, "2025-12-01"))
	assert.Equal(t, StudentSet{students[1].StudentID: {}}, flagged)

	t.Run("one third", func(t *testing.T) {
		flagged := ClassifyAtRisk(ModeSemesterRatio, 3, records, students, 267, date(t, "2025-12-01"))
		// 267/3 = 89
		assert.Len(t, flagged, 2)
	})

	t.Run("fractional boundary", func(t *testing.T) {
		// 451/5 = 90.2, so 90 is not enough
		flagged := ClassifyAtRisk(ModeSemesterRatio, 5, records, students, 451, date(t, "2025-12-01"))
		assert.Empty(t, flagged)
	})
}

func TestClassifyAtRiskSemesterRatioWithoutTotal(t *testing.T) {
	students := roster("三年乙班", 1)
	records := absences(students[0].StudentID, "2025-09-01", 200)

	assert.Empty(t, ClassifyAtRisk(ModeSemesterRatio, 5, records, students, 0, date(t, "2025-12-01")))
	assert.Empty(t, ClassifyAtRisk(ModeSemesterRatio, 5, records, students, -10, date(t, "2025-12-01")))
	assert.Empty(t, ClassifyAtRisk(ModeSemesterRatio, 7, records, students, 450, date(t, "2025-12-01")))
}

func TestClassifyAtRiskRecentPeriods(t *testing.T) {
	students := roster("一年乙班", 3)
	asOf := date(t, "2025-10-15")

	var records []models.AttendanceRecord
	// first day of the 14-day window is 2025-10-02
	records = append(records, absences(students[0].StudentID, "2025-10-02", 10)...)
	// ends the day before the window opens
	records = append(records, absences(students[1].StudentID, "2025-09-30", 10)...)
	records = append(records, absences(students[2].StudentID, "2025-10-14", 10)...)

	flagged := ClassifyAtRisk(ModeRecentPeriods, 10, records, students, 0, asOf)
	assert.True(t, flagged.Has(students[0].StudentID))
	assert.False(t, flagged.Has(students[1].StudentID))
	assert.True(t, flagged.Has(students[2].StudentID))
}

func TestClassifyAtRiskUnknownMode(t *testing.T) {
	students := roster("一年乙班", 1)
	records := absences(students[0].StudentID, "2025-09-01", 100)

	assert.Empty(t, ClassifyAtRisk(AtRiskMode("weekly"), 1, records, students, 450, date(t, "2025-12-01")))
}

func TestClassifyAtRiskIdempotent(t *testing.T) {
	students := roster("一年乙班", 3)
	records := absences(students[1].StudentID, "2025-09-01", 25)

	a := ClassifyAtRisk(ModeFixedPeriods, 20, records, students, 450, date(t, "2025-12-01"))
	b := ClassifyAtRisk(ModeFixedPeriods, 20, records, students, 450, date(t, "2025-12-01"))
	assert.Equal(t, a, b)
}
