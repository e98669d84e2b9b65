package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"library-system/internal/models"
)

type SQLiteBookRepository struct {
	db *sqlx.DB
}

func NewSQLiteBookRepository(db *sqlx.DB) BookRepository {
	return &SQLiteBookRepository{db: db}
}

func (r *SQLiteBookRepository) List(ctx context.Context) ([]*models.Book, error) {
	books := []*models.Book{}
	query := `SELECT id, title, author, category, is_available FROM books`

	if err := r.db.SelectContext(ctx, &books, query); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	return books, nil
}

func (r *SQLiteBookRepository) ListByCategory(ctx context.Context, category string) ([]*models.Book, error) {
	books := []*models.Book{}
	query := `SELECT id, title, author, category, is_available FROM books WHERE category = ?`

	if err := r.db.SelectContext(ctx, &books, query, category); err != nil {
		return nil, fmt.Errorf("failed to list books by category: %w", err)
	}

	return books, nil
}

func (r *SQLiteBookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	book := &models.Book{}
	query := `SELECT id, title, author, category, is_available FROM books WHERE id = ?`

	if err := r.db.GetContext(ctx, book, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return book, nil
}

func (r *SQLiteBookRepository) Create(ctx context.Context, book *models.Book) error {
	query := `INSERT INTO books (title, author, category, is_available) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, book.Title, book.Author, book.Category, book.IsAvailable)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get book id: %w", err)
	}

	book.ID = id
	return nil
}

func (r *SQLiteBookRepository) SetAvailability(ctx context.Context, id int64, isAvailable bool) error {
	query := `UPDATE books SET is_available = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, isAvailable, id)
	if err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *SQLiteBookRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM books WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
