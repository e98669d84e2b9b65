package config

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

type DatabaseConfig struct {
	Path string
}

func LoadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Path: getEnv("DB_PATH", "library.db"),
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", c.Path)
}

// NewDatabase opens (or creates) the SQLite database and applies the schema.
func NewDatabase(config *DatabaseConfig) (*sqlx.DB, error) {
	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite serializes writes; a single connection avoids busy errors.
	db.SetMaxOpenConns(1)

	if err := ApplySchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// ApplySchema creates the users and books tables when they do not exist.
func ApplySchema(db *sqlx.DB) error {
	schema, err := fs.ReadFile(schemaFS, "schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
