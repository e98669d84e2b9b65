package services

import (
	"context"
	"errors"
	"fmt"

	"library-system/internal/models"
	"library-system/internal/repositories"
	"library-system/internal/utils"
)

type AccountService interface {
	ListAccounts(ctx context.Context) (*models.AccountList, error)
	CreateStudent(ctx context.Context, studentID, password string) (*models.User, error)
	CreateAdmin(ctx context.Context, username, password string) (*models.User, error)
	DeleteAccount(ctx context.Context, accountType string, id int64) error
}

type accountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountService {
	return &accountService{userRepo: userRepo}
}

func (s *accountService) ListAccounts(ctx context.Context) (*models.AccountList, error) {
	students, err := s.userRepo.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	admins, err := s.userRepo.ListByRole(ctx, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	return &models.AccountList{Students: students, Admins: admins}, nil
}

func (s *accountService) CreateStudent(ctx context.Context, studentID, password string) (*models.User, error) {
	if studentID == "" || password == "" {
		return nil, ErrValidation
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		StudentID:    &studentID,
		PasswordHash: hash,
		Role:         models.RoleStudent,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	return user, nil
}

func (s *accountService) CreateAdmin(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     &username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return user, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountType string, id int64) error {
	if accountType != models.RoleStudent && accountType != models.RoleAdmin {
		return ErrValidation
	}

	err := s.userRepo.Delete(ctx, id, accountType)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
