package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"library-system/internal/config"
	"library-system/internal/models"
)

func tempDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := config.NewDatabase(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newAdmin(username string) *models.User {
	return &models.User{Username: &username, PasswordHash: "hash", Role: models.RoleAdmin}
}

func newStudent(studentID string) *models.User {
	return &models.User{StudentID: &studentID, PasswordHash: "hash", Role: models.RoleStudent}
}

func TestUserLookupByRoleIdentifier(t *testing.T) {
	repo := NewSQLiteUserRepository(tempDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, newAdmin("admin")); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if err := repo.Create(ctx, newStudent("2023001")); err != nil {
		t.Fatalf("create student: %v", err)
	}

	admin, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("want admin role, got %q", admin.Role)
	}

	student, err := repo.GetByStudentID(ctx, "2023001")
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if student.Role != models.RoleStudent {
		t.Fatalf("want student role, got %q", student.Role)
	}

	// Identifiers are role-scoped: a student ID is not a username.
	if _, err := repo.GetByUsername(ctx, "2023001"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	repo := NewSQLiteUserRepository(tempDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, newStudent("2023001")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, newStudent("2023001")); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}
}

func TestDeleteUserRoleMismatch(t *testing.T) {
	repo := NewSQLiteUserRepository(tempDB(t))
	ctx := context.Background()

	student := newStudent("2023001")
	if err := repo.Create(ctx, student); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Deleting with the wrong role must not touch the row.
	if err := repo.Delete(ctx, student.ID, models.RoleAdmin); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByStudentID(ctx, "2023001"); err != nil {
		t.Fatalf("student should still exist: %v", err)
	}

	if err := repo.Delete(ctx, student.ID, models.RoleStudent); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByStudentID(ctx, "2023001"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	repo := NewSQLiteUserRepository(tempDB(t))
	ctx := context.Background()

	admin := newAdmin("admin")
	if err := repo.Create(ctx, admin); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdatePassword(ctx, admin.ID, "newhash"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	got, err := repo.GetByID(ctx, admin.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PasswordHash != "newhash" {
		t.Fatalf("want newhash, got %q", got.PasswordHash)
	}

	if err := repo.UpdatePassword(ctx, 9999, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListByRole(t *testing.T) {
	repo := NewSQLiteUserRepository(tempDB(t))
	ctx := context.Background()

	for _, u := range []*models.User{newAdmin("admin"), newStudent("2023001"), newStudent("2023002")} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	students, err := repo.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		t.Fatalf("list students: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("want 2 students, got %d", len(students))
	}

	admins, err := repo.ListByRole(ctx, models.RoleAdmin)
	if err != nil {
		t.Fatalf("list admins: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("want 1 admin, got %d", len(admins))
	}
}
