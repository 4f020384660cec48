package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/db"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/logger"
)

// effectiveClassExpr is the SQL rendering of Student.EffectiveClass
const effectiveClassExpr = "COALESCE(NULLIF(current_class, ''), class_name)"

var studentColumns = []string{
	"student_id", "name", "class_name", "current_class", "seat_number",
	"status_code", "national_id", "email", "change_log", "created_at", "updated_at",
}

// StudentFilter narrows student queries. A nil Classes slice means every
// class; an empty non-nil slice matches nothing.
type StudentFilter struct {
	Search  string
	Status  models.StudentStatus
	Classes []string
}

// StudentChange is one batch modification of a student
type StudentChange struct {
	StudentID    string
	StatusCode   *models.StudentStatus
	CurrentClass *string
	LogEntries   []models.ChangeLogEntry
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	DB *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{DB: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.StudentID, &s.Name, &s.ClassName, &s.CurrentClass, &s.SeatNumber,
		&s.StatusCode, &s.NationalID, &s.Email, &s.ChangeLog, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student")
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, q squirrel.SelectBuilder) ([]models.Student, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student query")
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying students")
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// ListStudents returns students matching filter, ordered by class and seat
func (r *StudentRepository) ListStudents(ctx context.Context, filter StudentFilter) ([]models.Student, error) {
	if filter.Classes != nil && len(filter.Classes) == 0 {
		return nil, nil
	}

	q := psql.Select(studentColumns...).From("students")
	if filter.Classes != nil {
		q = q.Where(squirrel.Eq{effectiveClassExpr: filter.Classes})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"status_code": filter.Status})
	}
	if filter.Search != "" {
		pattern := likeContains(filter.Search)
		q = q.Where(squirrel.Or{
			squirrel.ILike{"student_id": pattern},
			squirrel.ILike{"name": pattern},
		})
	}
	q = q.OrderBy(effectiveClassExpr, "NULLIF(regexp_replace(seat_number, '\\D', '', 'g'), '')::int NULLS LAST", "seat_number", "student_id")

	return r.queryStudents(ctx, q)
}

// GetStudentByID retrieves a student by student id
func (r *StudentRepository) GetStudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := psql.Select(studentColumns...).From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanStudent(r.DB.QueryRow(ctx, sql, args...))
}

// GetStudentsByIDs retrieves the students with the given ids; unknown ids are skipped
func (r *StudentRepository) GetStudentsByIDs(ctx context.Context, ids []string) ([]models.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.queryStudents(ctx, psql.Select(studentColumns...).From("students").
		Where(squirrel.Eq{"student_id": ids}))
}

// ListClasses returns the distinct effective classes
func (r *StudentRepository) ListClasses(ctx context.Context) ([]string, error) {
	sql, args, err := psql.Select("DISTINCT " + effectiveClassExpr + " AS class").
		From("students").
		OrderBy("class").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing classes")
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// ImportStudents inserts or updates students in one transaction. With
// replace set, every existing student not in the import is deleted first.
func (r *StudentRepository) ImportStudents(ctx context.Context, students []models.Student, replace bool) (int, error) {
	imported := 0
	err := db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		if replace {
			ids := make([]string, len(students))
			for i := range students {
				ids[i] = students[i].StudentID
			}
			sql, args, err := psql.Delete("students").Where(squirrel.NotEq{"student_id": ids}).ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		for _, span := range chunk(len(students), 500) {
			q := psql.Insert("students").
				Columns("student_id", "name", "class_name", "current_class", "seat_number", "status_code", "national_id", "email", "change_log")
			for _, s := range students[span[0]:span[1]] {
				changeLog := s.ChangeLog
				if changeLog == nil {
					changeLog = []models.ChangeLogEntry{}
				}
				q = q.Values(s.StudentID, s.Name, s.ClassName, s.CurrentClass, s.SeatNumber, s.StatusCode, s.NationalID, s.Email, changeLog)
			}
			q = q.Suffix(`ON CONFLICT (student_id) DO UPDATE SET
				name = EXCLUDED.name,
				class_name = EXCLUDED.class_name,
				current_class = EXCLUDED.current_class,
				seat_number = EXCLUDED.seat_number,
				status_code = EXCLUDED.status_code,
				national_id = EXCLUDED.national_id,
				email = EXCLUDED.email,
				updated_at = CURRENT_TIMESTAMP`)

			sql, args, err := q.ToSql()
			if err != nil {
				return err
			}
			tag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
			imported += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int("count", len(students)).Bool("replace", replace).Msg("Error importing students")
		return 0, err
	}
	return imported, nil
}

// ApplyChanges updates status and class of students and appends their
// change-log entries, all or nothing.
func (r *StudentRepository) ApplyChanges(ctx context.Context, changes []StudentChange) (int64, error) {
	var affected int64
	err := db.WithTransaction(ctx, r.DB, func(ctx context.Context, tx pgx.Tx) error {
		for _, c := range changes {
			entries, err := json.Marshal(c.LogEntries)
			if err != nil {
				return err
			}
			q := psql.Update("students").
				Set("change_log", squirrel.Expr("change_log || ?::jsonb", string(entries))).
				Set("updated_at", time.Now()).
				Where(squirrel.Eq{"student_id": c.StudentID})
			if c.StatusCode != nil {
				q = q.Set("status_code", *c.StatusCode)
			}
			if c.CurrentClass != nil {
				q = q.Set("current_class", *c.CurrentClass)
			}

			sql, args, err := q.ToSql()
			if err != nil {
				return err
			}
			tag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return apperrors.NewCustomError(apperrors.ErrStudentNotFound, "student "+c.StudentID+" not found")
			}
			affected += tag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrStudentNotFound) {
			logger.Error().Err(err).Int("count", len(changes)).Msg("Error applying student changes")
		}
		return 0, err
	}
	return affected, nil
}

// DeleteStudents removes students and, by cascade, their records
func (r *StudentRepository) DeleteStudents(ctx context.Context, ids []string) (int64, error) {
	sql, args, err := psql.Delete("students").Where(squirrel.Eq{"student_id": ids}).ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int("count", len(ids)).Msg("Error deleting students")
		return 0, err
	}
	return tag.RowsAffected(), nil
}
