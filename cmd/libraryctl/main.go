package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"library-system/internal/config"
	"library-system/internal/models"
	"library-system/internal/repositories"
	"library-system/internal/utils"
)

var dbPath string

// Bootstrap credential list. Kept in cleartext on purpose so operators can
// edit it before the first run; rotate with "libraryctl reset-password".
var seedAdmins = []struct {
	Username string
	Password string
}{
	{Username: "admin", Password: "cupofjoe"},
}

var seedStudents = []struct {
	StudentID string
	Password  string
}{
	{StudentID: "2023001", Password: "newpass"},
	{StudentID: "2023002", Password: "james"},
	{StudentID: "2023003", Password: "santos"},
}

var seedBooks = []models.Book{
	{Title: "Introduction to Computer Science", Author: "John Doe", Category: "Technology", IsAvailable: true},
	{Title: "Criminal Law Basics", Author: "Jane Smith", Category: "Criminology", IsAvailable: true},
	{Title: "Financial Management", Author: "Robert Johnson", Category: "Financial", IsAvailable: true},
}

// readPassword securely reads a password with masking
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println()
	return strings.TrimSpace(string(bytePassword)), nil
}

func runInit(cmd *cobra.Command, args []string) error {
	db, err := config.NewDatabase(&config.DatabaseConfig{Path: dbPath})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	// Start fresh, then recreate the schema.
	if _, err := db.Exec(`DROP TABLE IF EXISTS users`); err != nil {
		return fmt.Errorf("drop users: %w", err)
	}
	if _, err := db.Exec(`DROP TABLE IF EXISTS books`); err != nil {
		return fmt.Errorf("drop books: %w", err)
	}
	if err := config.ApplySchema(db); err != nil {
		return err
	}

	ctx := context.Background()
	userRepo := repositories.NewSQLiteUserRepository(db)
	bookRepo := repositories.NewSQLiteBookRepository(db)

	for _, admin := range seedAdmins {
		hash, err := utils.HashPassword(admin.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", admin.Username, err)
		}
		username := admin.Username
		user := &models.User{Username: &username, PasswordHash: hash, Role: models.RoleAdmin}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("create admin %s: %w", admin.Username, err)
		}
		fmt.Printf("Created admin user: %s\n", admin.Username)
	}

	for _, student := range seedStudents {
		hash, err := utils.HashPassword(student.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", student.StudentID, err)
		}
		studentID := student.StudentID
		user := &models.User{StudentID: &studentID, PasswordHash: hash, Role: models.RoleStudent}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("create student %s: %w", student.StudentID, err)
		}
		fmt.Printf("Created student user: %s\n", student.StudentID)
	}

	for i := range seedBooks {
		book := seedBooks[i]
		if err := bookRepo.Create(ctx, &book); err != nil {
			return fmt.Errorf("create book %q: %w", book.Title, err)
		}
	}
	fmt.Printf("Added %d sample books\n", len(seedBooks))

	fmt.Println("Database initialized successfully")
	return nil
}

func runResetPassword(cmd *cobra.Command, args []string) error {
	adminUsername, _ := cmd.Flags().GetString("admin")
	studentID, _ := cmd.Flags().GetString("student")

	if (adminUsername == "") == (studentID == "") {
		return fmt.Errorf("specify exactly one of --admin or --student")
	}

	db, err := config.NewDatabase(&config.DatabaseConfig{Path: dbPath})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	userRepo := repositories.NewSQLiteUserRepository(db)

	var user *models.User
	if adminUsername != "" {
		user, err = userRepo.GetByUsername(ctx, adminUsername)
	} else {
		user, err = userRepo.GetByStudentID(ctx, studentID)
	}
	if err != nil {
		return fmt.Errorf("look up account: %w", err)
	}

	password, err := readPassword("New password: ")
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	fmt.Printf("Updated password for %s\n", user.Identifier())
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "libraryctl",
		Short:         "Administer the library catalog database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "library.db", "path to the SQLite database")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Recreate the schema and seed bootstrap accounts and sample books",
		RunE:  runInit,
	}

	resetCmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset an account password (prompts without echo)",
		RunE:  runResetPassword,
	}
	resetCmd.Flags().String("admin", "", "admin username")
	resetCmd.Flags().String("student", "", "student ID")

	rootCmd.AddCommand(initCmd, resetCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
