package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"library-system/internal/models"
	"library-system/internal/repositories"
	"library-system/internal/utils"
)

// SessionTTL is the fixed lifetime of a session, counted from login.
const SessionTTL = 24 * time.Hour

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.Session, error)
	Validate(ctx context.Context, token string) (*models.Session, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	now         func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrValidation
	}

	var user *models.User
	var err error

	switch req.Role {
	case models.RoleStudent:
		// For students the login identifier is their student ID.
		user, err = s.userRepo.GetByStudentID(ctx, req.Username)
	case models.RoleAdmin:
		user, err = s.userRepo.GetByUsername(ctx, req.Username)
	default:
		return nil, ErrInvalidRole
	}

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := s.now()
	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Identifier(),
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func (s *authService) Validate(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	if s.now().After(session.ExpiresAt) {
		// Expiry is checked lazily; drop the stale session on detection.
		s.sessionRepo.Delete(ctx, token)
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, token)
}

// generateToken generates a random token
func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
