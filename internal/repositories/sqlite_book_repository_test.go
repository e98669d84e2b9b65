package repositories

import (
	"context"
	"errors"
	"testing"

	"library-system/internal/models"
)

func TestBookLifecycle(t *testing.T) {
	repo := NewSQLiteBookRepository(tempDB(t))
	ctx := context.Background()

	book := &models.Book{Title: "A", Author: "B", Category: "Tech", IsAvailable: true}
	if err := repo.Create(ctx, book); err != nil {
		t.Fatalf("create: %v", err)
	}
	if book.ID == 0 {
		t.Fatal("expected generated id")
	}

	books, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(books) != 1 || !books[0].IsAvailable {
		t.Fatalf("want 1 available book, got %+v", books)
	}

	if err := repo.SetAvailability(ctx, book.ID, false); err != nil {
		t.Fatalf("set availability: %v", err)
	}
	got, err := repo.GetByID(ctx, book.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.IsAvailable {
		t.Fatal("book should be unavailable")
	}

	if err := repo.Delete(ctx, book.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	books, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("want empty list, got %d", len(books))
	}
}

func TestBookListByCategory(t *testing.T) {
	repo := NewSQLiteBookRepository(tempDB(t))
	ctx := context.Background()

	for _, b := range []*models.Book{
		{Title: "A", Author: "X", Category: "Tech", IsAvailable: true},
		{Title: "B", Author: "Y", Category: "Law", IsAvailable: true},
		{Title: "C", Author: "Z", Category: "Tech", IsAvailable: true},
	} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	tech, err := repo.ListByCategory(ctx, "Tech")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(tech) != 2 {
		t.Fatalf("want 2 Tech books, got %d", len(tech))
	}

	// Exact match only.
	none, err := repo.ListByCategory(ctx, "tech")
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("want 0 books for lowercase category, got %d", len(none))
	}
}

func TestBookUnknownID(t *testing.T) {
	repo := NewSQLiteBookRepository(tempDB(t))
	ctx := context.Background()

	if err := repo.SetAvailability(ctx, 42, false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
