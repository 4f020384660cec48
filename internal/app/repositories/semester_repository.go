package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/logger"
)

const semesterTermConstraint = "semester_settings_term_key"

var semesterColumns = []string{
	"id", "academic_year", "semester", "label", "start_date", "end_date",
	"holidays", "total_school_days", "created_at", "updated_at",
}

// SemesterRepository handles database operations for semester calendars
type SemesterRepository struct {
	DB *pgxpool.Pool
}

// NewSemesterRepository creates a new SemesterRepository
func NewSemesterRepository(db *pgxpool.Pool) *SemesterRepository {
	return &SemesterRepository{DB: db}
}

func scanSemester(row pgx.Row) (*models.SemesterSettings, error) {
	var s models.SemesterSettings
	err := row.Scan(
		&s.ID, &s.AcademicYear, &s.Semester, &s.Label, &s.StartDate, &s.EndDate,
		&s.Holidays, &s.TotalSchoolDays, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettingsNotFound
		}
		logger.Error().Err(err).Msg("Error scanning semester settings")
		return nil, err
	}
	return &s, nil
}

// Upsert creates or replaces the settings of a term and refreshes s from
// the stored row.
func (r *SemesterRepository) Upsert(ctx context.Context, s *models.SemesterSettings) error {
	holidays := s.Holidays
	if holidays == nil {
		holidays = []time.Time{}
	}
	sql, args, err := psql.Insert("semester_settings").
		Columns("academic_year", "semester", "label", "start_date", "end_date", "holidays", "total_school_days").
		Values(s.AcademicYear, s.Semester, s.Label, s.StartDate, s.EndDate, holidays, s.TotalSchoolDays).
		Suffix(`ON CONFLICT ON CONSTRAINT ` + semesterTermConstraint + ` DO UPDATE SET
			label = EXCLUDED.label,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			holidays = EXCLUDED.holidays,
			total_school_days = EXCLUDED.total_school_days,
			updated_at = CURRENT_TIMESTAMP
			RETURNING ` + joinColumns(semesterColumns)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building semester upsert SQL")
		return err
	}

	saved, err := scanSemester(r.DB.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Str("academicYear", s.AcademicYear).Str("semester", s.Semester).Msg("Error saving semester settings")
		return err
	}
	*s = *saved
	return nil
}

// List returns every saved semester, newest first
func (r *SemesterRepository) List(ctx context.Context) ([]models.SemesterSettings, error) {
	sql, args, err := psql.Select(semesterColumns...).From("semester_settings").
		OrderBy("start_date DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing semester settings")
		return nil, err
	}
	defer rows.Close()

	var list []models.SemesterSettings
	for rows.Next() {
		s, err := scanSemester(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *s)
	}
	return list, rows.Err()
}

// GetCovering returns the semester whose range contains date, falling back
// to the most recent semester that started on or before it.
func (r *SemesterRepository) GetCovering(ctx context.Context, date time.Time) (*models.SemesterSettings, error) {
	sql, args, err := psql.Select(semesterColumns...).From("semester_settings").
		Where(squirrel.LtOrEq{"start_date": date}).
		OrderByClause("(end_date >= ?) DESC", date).
		OrderBy("start_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanSemester(r.DB.QueryRow(ctx, sql, args...))
}

// GetLatest returns the semester with the latest start date
func (r *SemesterRepository) GetLatest(ctx context.Context) (*models.SemesterSettings, error) {
	sql, args, err := psql.Select(semesterColumns...).From("semester_settings").
		OrderBy("start_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanSemester(r.DB.QueryRow(ctx, sql, args...))
}

// Delete removes a semester
func (r *SemesterRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("semester_settings").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting semester settings")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrSettingsNotFound
	}
	return nil
}
