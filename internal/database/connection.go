package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/sentencebank/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. A postgres DSN in
// cfg.DatabaseURL takes precedence; otherwise a local sqlite file at
// cfg.DatabasePath is opened (created on first use).
func Connect(cfg *config.Config) error {
	var db *sqlx.DB
	var err error

	if cfg.DatabaseURL != "" {
		db, err = sqlx.Connect("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}
	} else {
		if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}
		}

		db, err = sqlx.Connect("sqlite3", cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates the sentences table if it doesn't exist.
//
// Note: there is intentionally no UNIQUE(chinese, english) constraint;
// deduplication lives in the import layer, and rows inserted outside the
// import path may duplicate a pair.
func initializeSchema() error {
	var ddl string

	if DB.DriverName() == "postgres" {
		ddl = `
			CREATE TABLE IF NOT EXISTS sentences (
				id SERIAL PRIMARY KEY,
				chinese TEXT NOT NULL,
				english TEXT NOT NULL,
				difficulty TEXT NOT NULL DEFAULT 'cet6',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`
	} else {
		ddl = `
			CREATE TABLE IF NOT EXISTS sentences (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				chinese TEXT NOT NULL,
				english TEXT NOT NULL,
				difficulty TEXT NOT NULL DEFAULT 'cet6',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`
	}

	if _, err := DB.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create sentences table: %w", err)
	}

	_, err := DB.Exec(`CREATE INDEX IF NOT EXISTS idx_sentences_difficulty ON sentences(difficulty)`)
	if err != nil {
		return fmt.Errorf("failed to create difficulty index: %w", err)
	}

	return nil
}
