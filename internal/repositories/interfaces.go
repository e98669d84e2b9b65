package repositories

import (
	"context"
	"errors"

	"library-system/internal/models"
)

var (
	// ErrNotFound is returned when a lookup or row-level write matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique identifier.
	ErrDuplicate = errors.New("identifier already exists")
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// GetByUsername looks up an admin account by username.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetByStudentID looks up a student account by student ID.
	GetByStudentID(ctx context.Context, studentID string) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// Delete removes the account only when both id and role match.
	Delete(ctx context.Context, id int64, role string) error
}

type BookRepository interface {
	List(ctx context.Context) ([]*models.Book, error)
	ListByCategory(ctx context.Context, category string) ([]*models.Book, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	SetAvailability(ctx context.Context, id int64, isAvailable bool) error
	Delete(ctx context.Context, id int64) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
