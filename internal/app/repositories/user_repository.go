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

const usersEmailConstraint = "users_email_key"

var userColumns = []string{
	"id", "email", "password", "name", "role", "assigned_classes",
	"is_active", "last_login_at", "created_at", "updated_at",
}

// UserRepository handles database operations for accounts
type UserRepository struct {
	DB *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.AssignedClasses,
		&u.IsActive, &u.LastLoginAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a new account and returns its id
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	classes := user.AssignedClasses
	if classes == nil {
		classes = []string{}
	}
	sql, args, err := psql.Insert("users").
		Columns("email", "password", "name", "role", "assigned_classes", "is_active").
		Values(user.Email, user.Password, user.Name, user.Role, classes, user.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, err
	}

	var id int64
	if err := r.DB.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, usersEmailConstraint) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, err
	}
	return id, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := psql.Select(userColumns...).From("users").
		Where(squirrel.Eq{"lower(email)": normalizeEmail(email)}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.DB.QueryRow(ctx, sql, args...))
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := psql.Select(userColumns...).From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.DB.QueryRow(ctx, sql, args...))
}

// ListUsers returns all accounts ordered by role and name
func (r *UserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	sql, args, err := psql.Select(userColumns...).From("users").
		OrderBy("role", "name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

// UpdateUser saves name, role, classes, status and password hash
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	classes := user.AssignedClasses
	if classes == nil {
		classes = []string{}
	}
	sql, args, err := psql.Update("users").
		Set("name", user.Name).
		Set("role", user.Role).
		Set("assigned_classes", classes).
		Set("is_active", user.IsActive).
		Set("password", user.Password).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error updating user")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin stamps the login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	sql, args, err := psql.Update("users").
		Set("last_login_at", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(ctx, sql, args...)
	return err
}

// DeleteUser removes an account
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error deleting user")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// CountAdmins returns the number of active admin accounts
func (r *UserRepository) CountAdmins(ctx context.Context) (int64, error) {
	sql, args, err := psql.Select("COUNT(*)").From("users").
		Where(squirrel.Eq{"role": models.RoleAdmin, "is_active": true}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	err = r.DB.QueryRow(ctx, sql, args...).Scan(&n)
	return n, err
}
