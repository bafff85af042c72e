package database

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/kdimtricp/reelmatch/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const migrationsDir = "migrations"

type Migrator struct {
	db *DB
}

func NewMigrator(db *DB) *Migrator {
	return &Migrator{db: db}
}

// Initialize points goose at the embedded migrations and picks the dialect
// for the connected database.
func (m *Migrator) Initialize() error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{})

	dialect := "sqlite3"
	if m.db.dbType == "postgres" {
		dialect = "postgres"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

func (m *Migrator) Up(ctx context.Context) error {
	if err := goose.UpContext(ctx, m.db.conn, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logging.Info().Str("db", m.db.dbType).Msg("Database migrations completed")
	return nil
}

func (m *Migrator) Down(ctx context.Context) error {
	if err := goose.DownContext(ctx, m.db.conn, migrationsDir); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}
	logging.Info().Str("db", m.db.dbType).Msg("Database migration rolled back")
	return nil
}

func (m *Migrator) Status(ctx context.Context) error {
	if err := goose.StatusContext(ctx, m.db.conn, migrationsDir); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db.conn)
	if err != nil {
		return 0, fmt.Errorf("failed to get database version: %w", err)
	}
	return version, nil
}

func (m *Migrator) Reset(ctx context.Context) error {
	if err := goose.ResetContext(ctx, m.db.conn, migrationsDir); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	logging.Info().Str("db", m.db.dbType).Msg("Database reset completed")
	return nil
}

// gooseLogger routes goose output through zerolog.
type gooseLogger struct{}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	logging.Fatal().Msgf(format, v...)
}

func (gooseLogger) Printf(format string, v ...interface{}) {
	logging.Info().Str("component", "goose").Msgf(format, v...)
}
