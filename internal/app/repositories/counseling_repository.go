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
	"github.com/yigit/homeroom/internal/pkg/dberrors"
	"github.com/yigit/homeroom/internal/pkg/logger"
)

var counselingColumns = []string{
	"id", "student_id", "class_name", "record_type", "date", "counseling_type", "notes",
	"academic_year", "semester", "inquiry_method", "contact_person", "visible_to_teacher",
	"author_name", "author_email", "author_role", "created_at",
}

// CounselingRepository handles database operations for counseling notes
type CounselingRepository struct {
	DB *pgxpool.Pool
}

// NewCounselingRepository creates a new CounselingRepository
func NewCounselingRepository(db *pgxpool.Pool) *CounselingRepository {
	return &CounselingRepository{DB: db}
}

func scanCounseling(row pgx.Row) (*models.CounselingRecord, error) {
	var c models.CounselingRecord
	err := row.Scan(
		&c.ID, &c.StudentID, &c.ClassName, &c.RecordType, &c.Date, &c.CounselingType, &c.Notes,
		&c.AcademicYear, &c.Semester, &c.InquiryMethod, &c.ContactPerson, &c.VisibleToTeacher,
		&c.AuthorName, &c.AuthorEmail, &c.AuthorRole, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCounselingRecordNotFound
		}
		logger.Error().Err(err).Msg("Error scanning counseling record")
		return nil, err
	}
	return &c, nil
}

func (r *CounselingRepository) queryRecords(ctx context.Context, q squirrel.SelectBuilder) ([]models.CounselingRecord, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying counseling records")
		return nil, err
	}
	defer rows.Close()

	var records []models.CounselingRecord
	for rows.Next() {
		c, err := scanCounseling(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *c)
	}
	return records, rows.Err()
}

// Create inserts a counseling record and fills in its id and timestamp
func (r *CounselingRepository) Create(ctx context.Context, c *models.CounselingRecord) error {
	sql, args, err := psql.Insert("counseling_records").
		Columns(
			"student_id", "class_name", "record_type", "date", "counseling_type", "notes",
			"academic_year", "semester", "inquiry_method", "contact_person", "visible_to_teacher",
			"author_name", "author_email", "author_role",
		).
		Values(
			c.StudentID, c.ClassName, c.RecordType, c.Date, c.CounselingType, c.Notes,
			c.AcademicYear, c.Semester, c.InquiryMethod, c.ContactPerson, c.VisibleToTeacher,
			c.AuthorName, c.AuthorEmail, c.AuthorRole,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create counseling SQL")
		return err
	}

	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", c.StudentID).Msg("Error creating counseling record")
		return err
	}
	return nil
}

// GetByID retrieves a counseling record
func (r *CounselingRepository) GetByID(ctx context.Context, id int64) (*models.CounselingRecord, error) {
	sql, args, err := psql.Select(counselingColumns...).From("counseling_records").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanCounseling(r.DB.QueryRow(ctx, sql, args...))
}

// ListByStudent returns the notes of one student, most recent first
func (r *CounselingRepository) ListByStudent(ctx context.Context, studentID string) ([]models.CounselingRecord, error) {
	return r.queryRecords(ctx, psql.Select(counselingColumns...).From("counseling_records").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date DESC", "id DESC"))
}

// ListAll returns every counseling record, optionally limited to a term
func (r *CounselingRepository) ListAll(ctx context.Context, academicYear, semester string) ([]models.CounselingRecord, error) {
	q := psql.Select(counselingColumns...).From("counseling_records")
	if academicYear != "" {
		q = q.Where(squirrel.Eq{"academic_year": academicYear})
	}
	if semester != "" {
		q = q.Where(squirrel.Eq{"semester": semester})
	}
	return r.queryRecords(ctx, q.OrderBy("date", "id"))
}

// Delete removes a counseling record
func (r *CounselingRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("counseling_records").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting counseling record")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCounselingRecordNotFound
	}
	return nil
}

// CountOnDay counts the notes of a student on a day whose counseling type
// starts with typePrefix. An empty prefix counts every type.
func (r *CounselingRepository) CountOnDay(ctx context.Context, studentID string, date time.Time, typePrefix string) (int64, error) {
	q := psql.Select("COUNT(*)").From("counseling_records").
		Where(squirrel.Eq{"student_id": studentID, "date": date})
	if typePrefix != "" {
		q = q.Where(squirrel.Like{"counseling_type": likePrefix(typePrefix)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error counting counseling records")
		return 0, err
	}
	return n, nil
}
