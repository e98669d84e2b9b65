package services

import (
	"context"
	"errors"
	"fmt"

	"library-system/internal/models"
	"library-system/internal/repositories"
)

type CatalogService interface {
	ListBooks(ctx context.Context) ([]*models.Book, error)
	ListBooksByCategory(ctx context.Context, category string) ([]*models.Book, error)
	CreateBook(ctx context.Context, req models.CreateBookRequest) (*models.Book, error)
	SetAvailability(ctx context.Context, bookID int64, isAvailable bool) error
	DeleteBook(ctx context.Context, bookID int64) error
}

type catalogService struct {
	bookRepo repositories.BookRepository
}

func NewCatalogService(bookRepo repositories.BookRepository) CatalogService {
	return &catalogService{bookRepo: bookRepo}
}

func (s *catalogService) ListBooks(ctx context.Context) ([]*models.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

func (s *catalogService) ListBooksByCategory(ctx context.Context, category string) ([]*models.Book, error) {
	books, err := s.bookRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list books by category: %w", err)
	}
	return books, nil
}

func (s *catalogService) CreateBook(ctx context.Context, req models.CreateBookRequest) (*models.Book, error) {
	if req.Title == "" || req.Author == "" || req.Category == "" {
		return nil, ErrValidation
	}

	book := &models.Book{
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		IsAvailable: true,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

func (s *catalogService) SetAvailability(ctx context.Context, bookID int64, isAvailable bool) error {
	err := s.bookRepo.SetAvailability(ctx, bookID, isAvailable)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update availability: %w", err)
	}
	return nil
}

func (s *catalogService) DeleteBook(ctx context.Context, bookID int64) error {
	err := s.bookRepo.Delete(ctx, bookID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}
