package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Common auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles login and session token checks.
type AuthService struct {
	users repository.UserRepository
	log   zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		log:   log.With().Str("component", "auth_service").Logger(),
	}
}

// Login looks the user up by username and password digest and mints their
// session token. ErrInvalidCredentials is returned when nothing matches.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.users.GetByCredentials(ctx, username, HashPassword(password))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Info().Str("username", username).Msg("login rejected")
			return nil, "", ErrInvalidCredentials
		}
		s.log.Error().Err(err).Str("username", username).Msg("failed to look up user")
		return nil, "", fmt.Errorf("look up user: %w", err)
	}

	token := MintSessionToken(user.ID, user.Username, string(user.Role))
	s.log.Info().Int("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return user, token, nil
}

// VerifyToken only checks that a token was presented. It does not recompute
// the token or look anything up, so any non-empty string passes.
func (s *AuthService) VerifyToken(token string) bool {
	return token != ""
}

// CreateUser stores a new account with a hashed password. Only the operator
// CLI and development seeding call this; no HTTP route does.
func (s *AuthService) CreateUser(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	if role == "" {
		role = model.RoleGuest
	}

	user := &model.User{
		Username:     username,
		PasswordHash: HashPassword(password),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
