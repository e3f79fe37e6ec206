package sqlkv

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// gooseDialects maps our dialect names to the ones goose understands.
var gooseDialects = map[Dialect]string{
	DialectSQLite:   "sqlite3",
	DialectPostgres: "postgres",
}

// Migrate applies the embedded schema migrations for the given dialect.
// It is safe to call on every startup; goose tracks applied versions.
func Migrate(db *sql.DB, dialect Dialect) error {
	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}
	if err := goose.Up(db, "migrations/"+string(dialect)); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
