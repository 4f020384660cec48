package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/homeroom/internal/app/models"
	"github.com/yigit/homeroom/internal/app/models/dto"
	"github.com/yigit/homeroom/internal/pkg/apperrors"
	"github.com/yigit/homeroom/internal/pkg/auth"
)

// AuthService handles login and account management
type AuthService struct {
	userRepo   userStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo userStore, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
		now:        time.Now,
	}
}

// Login checks credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	now := s.now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Could not update last login time")
	} else {
		user.LastLoginAt = &now
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
		User:        dto.NewUserResponse(user),
	}, nil
}

// Me returns the profile of the current user
func (s *AuthService) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ListUsers returns every account
func (s *AuthService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return out, nil
}

// CreateUser adds an account with a hashed password
func (s *AuthService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewBadRequestError("unknown role " + req.Role)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Password:        hash,
		Name:            strings.TrimSpace(req.Name),
		Role:            role,
		AssignedClasses: cleanClasses(req.AssignedClasses),
		IsActive:        true,
	}
	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userID", id).Str("role", string(role)).Msg("User created")
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// UpdateUser changes the profile, role, classes, status or password of an
// account. The last active admin cannot be demoted or disabled.
func (s *AuthService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	wasActiveAdmin := user.Role == models.RoleAdmin && user.IsActive

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if !role.Valid() {
			return nil, apperrors.NewBadRequestError("unknown role " + *req.Role)
		}
		user.Role = role
	}
	if req.AssignedClasses != nil {
		user.AssignedClasses = cleanClasses(req.AssignedClasses)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.Password = hash
	}

	if wasActiveAdmin && (user.Role != models.RoleAdmin || !user.IsActive) {
		if err := s.ensureAnotherAdmin(ctx); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// DeleteUser removes an account other than the caller's own
func (s *AuthService) DeleteUser(ctx context.Context, actor Actor, id int64) error {
	if actor.UserID == id {
		return apperrors.NewConflictError("you cannot delete your own account")
	}
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == models.RoleAdmin && user.IsActive {
		if err := s.ensureAnotherAdmin(ctx); err != nil {
			return err
		}
	}
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", id).Int64("by", actor.UserID).Msg("User deleted")
	return nil
}

func (s *AuthService) ensureAnotherAdmin(ctx context.Context) error {
	n, err := s.userRepo.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("error counting admins: %w", err)
	}
	if n <= 1 {
		return apperrors.NewConflictError("at least one active admin must remain")
	}
	return nil
}

// cleanClasses trims, drops empties and removes duplicates
func cleanClasses(classes []string) []string {
	out := make([]string, 0, len(classes))
	seen := make(map[string]bool, len(classes))
	for _, c := range classes {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
