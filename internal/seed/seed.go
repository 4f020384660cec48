package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/auth"
)

// AdminOptions describes the first administrator account
type AdminOptions struct {
	Email    string
	Name     string
	Password string
}

type userStore interface {
	CountAdmins(ctx context.Context) (int64, error)
	CreateUser(ctx context.Context, user *appModels.User) (int64, error)
}

// CreateDefaultData creates the first admin account when none exists.
// Nothing is created without a password.
func CreateDefaultData(ctx context.Context, users userStore, opts AdminOptions, lgr zerolog.Logger) error {
	if opts.Password == "" {
		lgr.Debug().Msg("No seed admin password configured, skipping default data")
		return nil
	}

	lgr.Info().Msg("Checking/Creating default admin account...")
	count, err := users.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Info().Int64("admins", count).Msg("Admin account already present")
		return nil
	}

	hashed, err := auth.HashPassword(opts.Password)
	if err != nil {
		return err
	}
	admin := &appModels.User{
		Email:           strings.ToLower(strings.TrimSpace(opts.Email)),
		Name:            opts.Name,
		Password:        hashed,
		Role:            appModels.RoleAdmin,
		AssignedClasses: []string{},
		IsActive:        true,
	}
	id, err := users.CreateUser(ctx, admin)
	if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		// An inactive account may hold the address
		lgr.Warn().Str("email", admin.Email).Msg("Seed admin email already taken, skipping")
		return nil
	}
	if err != nil {
		return err
	}

	lgr.Info().Int64("userId", id).Str("email", admin.Email).Msg("Default admin account created")
	return nil
}
