package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/db"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/dberrors"
	"github.com/yigit/homeroom/internal/pkg/logger"
)

const attendanceUniqueConstraint = "attendance_student_date_period_key"

// upsertBatchSize keeps a multi-row insert well under the 65535 parameter limit
const upsertBatchSize = 1000

var attendanceColumns = []string{
	"id", "student_id", "student_name", "class_name", "date", "period", "status", "created_at",
}

// AttendanceRangeFilter selects records in [From, To]. A nil StudentIDs
// slice means every student; an empty non-nil slice matches nothing.
type AttendanceRangeFilter struct {
	From       time.Time
	To         time.Time
	StudentIDs []string
}

// AttendanceRepository handles database operations for roll-call marks
type AttendanceRepository struct {
	DB *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) queryRecords(ctx context.Context, q squirrel.SelectBuilder) ([]models.AttendanceRecord, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building attendance query")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying attendance records")
		return nil, err
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var a models.AttendanceRecord
		if err := rows.Scan(&a.ID, &a.StudentID, &a.StudentName, &a.ClassName, &a.Date, &a.Period, &a.Status, &a.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning attendance record")
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// UpsertRecords stores marks, replacing the status of any existing mark with
// the same student, date and period. Records must not repeat a key within
// one call.
func (r *AttendanceRepository) UpsertRecords(ctx context.Context, records []models.AttendanceRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	var saved int64
	err := db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		for _, span := range chunk(len(records), upsertBatchSize) {
			q := psql.Insert("attendance_records").
				Columns("student_id", "student_name", "class_name", "date", "period", "status")
			for _, a := range records[span[0]:span[1]] {
				q = q.Values(a.StudentID, a.StudentName, a.ClassName, a.Date, a.Period, a.Status)
			}
			q = q.Suffix(`ON CONFLICT ON CONSTRAINT ` + attendanceUniqueConstraint + ` DO UPDATE SET
				status = EXCLUDED.status,
				student_name = EXCLUDED.student_name,
				class_name = EXCLUDED.class_name`)

			sql, args, err := q.ToSql()
			if err != nil {
				return err
			}
			tag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
			saved += tag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return 0, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "attendance refers to an unknown student")
		}
		logger.Error().Err(err).Int("count", len(records)).Msg("Error upserting attendance records")
		return 0, err
	}
	return saved, nil
}

// ListByClassAndDate returns the marks of one class snapshot on one day
func (r *AttendanceRepository) ListByClassAndDate(ctx context.Context, className string, date time.Time) ([]models.AttendanceRecord, error) {
	return r.queryRecords(ctx, psql.Select(attendanceColumns...).From("attendance_records").
		Where(squirrel.Eq{"class_name": className, "date": date}).
		OrderBy("student_id", "period"))
}

// ListByStudent returns every mark of a student, most recent first
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID string) ([]models.AttendanceRecord, error) {
	return r.queryRecords(ctx, psql.Select(attendanceColumns...).From("attendance_records").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date DESC", "period"))
}

// ListInRange returns marks dated within the filter range
func (r *AttendanceRepository) ListInRange(ctx context.Context, filter AttendanceRangeFilter) ([]models.AttendanceRecord, error) {
	if filter.StudentIDs != nil && len(filter.StudentIDs) == 0 {
		return nil, nil
	}

	q := psql.Select(attendanceColumns...).From("attendance_records").
		Where(squirrel.GtOrEq{"date": filter.From}).
		Where(squirrel.LtOrEq{"date": filter.To})
	if filter.StudentIDs != nil {
		q = q.Where(squirrel.Eq{"student_id": filter.StudentIDs})
	}
	return r.queryRecords(ctx, q.OrderBy("date", "student_id"))
}
