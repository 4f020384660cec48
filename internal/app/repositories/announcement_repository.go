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

var announcementColumns = []string{
	"id", "title", "content", "date", "file_url", "file_name", "file_path",
	"author_name", "author_email", "author_role", "created_at", "updated_at",
}

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	DB *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{DB: db}
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.Date, &a.FileURL, &a.FileName, &a.FilePath,
		&a.AuthorName, &a.AuthorEmail, &a.AuthorRole, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		logger.Error().Err(err).Msg("Error scanning announcement")
		return nil, err
	}
	return &a, nil
}

// Create inserts an announcement and fills in its id and timestamps
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) error {
	sql, args, err := psql.Insert("announcements").
		Columns("title", "content", "date", "file_url", "file_name", "file_path", "author_name", "author_email", "author_role").
		Values(a.Title, a.Content, a.Date, a.FileURL, a.FileName, a.FilePath, a.AuthorName, a.AuthorEmail, a.AuthorRole).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create announcement SQL")
		return err
	}

	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		logger.Error().Err(err).Str("title", a.Title).Msg("Error creating announcement")
		return err
	}
	return nil
}

// Update saves the editable fields of an announcement
func (r *AnnouncementRepository) Update(ctx context.Context, a *models.Announcement) error {
	sql, args, err := psql.Update("announcements").
		Set("title", a.Title).
		Set("content", a.Content).
		Set("date", a.Date).
		Set("file_url", a.FileURL).
		Set("file_name", a.FileName).
		Set("file_path", a.FilePath).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return err
	}

	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAnnouncementNotFound
		}
		logger.Error().Err(err).Int64("id", a.ID).Msg("Error updating announcement")
		return err
	}
	return nil
}

// Delete removes an announcement
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("announcements").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("id", id).Msg("Error deleting announcement")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}

// GetByID retrieves an announcement
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	sql, args, err := psql.Select(announcementColumns...).From("announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanAnnouncement(r.DB.QueryRow(ctx, sql, args...))
}

// List returns a page of announcements, newest first, and the total count
func (r *AnnouncementRepository) List(ctx context.Context, offset, limit int) ([]models.Announcement, int64, error) {
	var total int64
	countSQL, countArgs, err := psql.Select("COUNT(*)").From("announcements").ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting announcements")
		return nil, 0, err
	}

	sql, args, err := psql.Select(announcementColumns...).From("announcements").
		OrderBy("created_at DESC", "id DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing announcements")
		return nil, 0, err
	}
	defer rows.Close()

	var list []models.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, *a)
	}
	return list, total, rows.Err()
}

// CountCreatedOn counts announcements whose date is day
func (r *AnnouncementRepository) CountCreatedOn(ctx context.Context, day time.Time) (int64, error) {
	sql, args, err := psql.Select("COUNT(*)").From("announcements").
		Where(squirrel.Eq{"date": day}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Msg("Error counting announcements")
		return 0, err
	}
	return n, nil
}
