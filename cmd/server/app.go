package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	// Database drivers are selected at runtime via the configured driver
	// name; both are registered here so either backend works.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/wortwahl/wortwahl-api/internal/config"
	"github.com/wortwahl/wortwahl-api/internal/content"
	"github.com/wortwahl/wortwahl-api/internal/domain/priority"
	"github.com/wortwahl/wortwahl-api/internal/platform/sqlkv"
	"github.com/wortwahl/wortwahl-api/internal/selection"
	"github.com/wortwahl/wortwahl-api/internal/service/drill"
	"github.com/wortwahl/wortwahl-api/internal/store"
)

// application holds the wired dependencies for the running server.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	db           *sql.DB
	drillService drill.Service
}

// newApplication opens the database, runs migrations and wires the store,
// selection and service layers together.
func newApplication(cfg *config.Config, appLogger *slog.Logger) (*application, error) {
	db, dialect, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := sqlkv.Migrate(db, dialect); err != nil {
		closeDatabase(db, appLogger)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	kv, err := sqlkv.New(db, dialect, appLogger)
	if err != nil {
		closeDatabase(db, appLogger)
		return nil, fmt.Errorf("failed to create key-value store: %w", err)
	}

	questionStats := store.NewQuestionStatsStore(kv, appLogger)
	progress := store.NewProgressStore(kv, appLogger)

	selector := selection.NewSelector(questionStats, priority.NewScorer(), appLogger)
	provider := content.NewProvider()

	drillService := drill.NewService(provider, selector, questionStats, progress, appLogger)

	return &application{
		config:       cfg,
		logger:       appLogger,
		db:           db,
		drillService: drillService,
	}, nil
}

// openDatabase opens the configured database and maps the configured driver
// to the key-value store dialect.
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, sqlkv.Dialect, error) {
	var (
		driverName string
		dialect    sqlkv.Dialect
	)
	switch cfg.Driver {
	case "sqlite":
		driverName = "sqlite"
		dialect = sqlkv.DialectSQLite
	case "postgres":
		driverName = "pgx"
		dialect = sqlkv.DialectPostgres
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := sql.Open(driverName, cfg.URL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, dialect, nil
}

func closeDatabase(db *sql.DB, appLogger *slog.Logger) {
	if err := db.Close(); err != nil {
		appLogger.Error("failed to close database", slog.String("error", err.Error()))
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
}
