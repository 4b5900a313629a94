package database

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// InitDB opens the database and runs any pending goose migrations.
// For local-only databases dbPath is the filename; when primaryUrl is set the
// remote Turso database is used instead. The returned teardown closes the
// connection.
func InitDB(dbPath string, primaryUrl string, authToken string, migrationsDir string) (*sql.DB, func(), error) {
	var dsn string
	if primaryUrl == "" {
		log.Info("Initializing local-only SQLite database", "path", dbPath)
		dsn = "file:" + dbPath
	} else {
		log.Info("Initializing Turso database", "url", primaryUrl)
		dsn = primaryUrl + "?authToken=" + authToken
	}

	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Foreign key support is not enabled by default in SQLite.
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := migrate(db, migrationsDir); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	log.Info("Database initialized successfully")
	return db, teardown, nil
}

func migrate(db *sql.DB, migrationsDir string) error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	goose.SetLogger(goose.NopLogger())
	return goose.Up(db, migrationsDir)
}
