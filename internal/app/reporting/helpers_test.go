package reporting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yigit/homeroom/internal/app/models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func roster(class string, n int) []models.Student {
	out := make([]models.Student, n)
	for i := range out {
		out[i] = models.Student{
			StudentID:  fmt.Sprintf("%s-%02d", class, i+1),
			Name:       fmt.Sprintf("學生%d", i+1),
			ClassName:  class,
			SeatNumber: fmt.Sprint(i + 1),
			StatusCode: models.StudentStatusActive,
		}
	}
	return out
}

func mark(studentID, day string, period int, status models.AttendanceStatus) models.AttendanceRecord {
	d, err := ParseDate(day)
	if err != nil {
		panic(err)
	}
	return models.AttendanceRecord{
		StudentID: studentID,
		Date:      d,
		Period:    models.Periods[period],
		Status:    status,
	}
}

// absences spreads n Absent marks for one student across consecutive days
// starting at day, five periods a day.
func absences(studentID, day string, n int) []models.AttendanceRecord {
	start, err := ParseDate(day)
	if err != nil {
		panic(err)
	}
	out := make([]models.AttendanceRecord, 0, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i/MaxPeriodsPerDay)
		out = append(out, models.AttendanceRecord{
			StudentID: studentID,
			Date:      d,
			Period:    models.Periods[i%MaxPeriodsPerDay],
			Status:    models.StatusAbsent,
		})
	}
	return out
}
