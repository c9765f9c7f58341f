package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect selects the migration set and goose dialect for a database backend.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// dir returns the embedded directory holding the SQL files for the dialect.
func (d Dialect) dir() string {
	if d == DialectSQLite {
		return "sqlite"
	}
	return "postgres"
}

// Migrate applies all pending migrations to db using the embedded SQL files
// for the given dialect.
func Migrate(db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect.dir()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Reset rolls every migration back and re-applies them, leaving the schema
// freshly created and empty. Callers use it between test runs to guarantee
// isolation.
func Reset(db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Reset(db, dialect.dir()); err != nil {
		return fmt.Errorf("migration reset error: %w", err)
	}

	if err := goose.Up(db, dialect.dir()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
