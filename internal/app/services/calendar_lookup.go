package services

import (
	"context"
	"errors"
	"time"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/reporting"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
)

// termCalendar is the school calendar in force on a day
type termCalendar struct {
	*reporting.Calendar
	// Settings is nil when no semester has been configured for the day
	Settings *models.SemesterSettings
}

// resolveTermCalendar builds the calendar of the semester covering date.
// Without stored settings it spans the academic term of date, with no
// holidays.
func resolveTermCalendar(ctx context.Context, store semesterStore, date time.Time) (termCalendar, error) {
	settings, err := store.GetCovering(ctx, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrSettingsNotFound) {
			start, end := termBounds(date)
			return termCalendar{Calendar: reporting.ResolveSchoolCalendar(start, end, nil)}, nil
		}
		return termCalendar{}, err
	}
	return termCalendar{
		Calendar: reporting.ResolveSchoolCalendar(settings.StartDate, settings.EndDate, settings.Holidays),
		Settings: settings,
	}, nil
}

// termBounds returns the first and last day of the academic term of date:
// August to January for the first semester, February to July for the second.
func termBounds(date time.Time) (time.Time, time.Time) {
	d := reporting.Day(date)
	y := d.Year()
	switch {
	case d.Month() >= time.August:
		return time.Date(y, time.August, 1, 0, 0, 0, 0, time.UTC), time.Date(y+1, time.January, 31, 0, 0, 0, 0, time.UTC)
	case d.Month() == time.January:
		return time.Date(y-1, time.August, 1, 0, 0, 0, 0, time.UTC), time.Date(y, time.January, 31, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(y, time.February, 1, 0, 0, 0, 0, time.UTC), time.Date(y, time.July, 31, 0, 0, 0, 0, time.UTC)
	}
}
