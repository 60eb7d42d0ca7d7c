package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/shoeppe/catalog-api/app/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationSource returns the embedded SQL migrations.
func MigrationSource() (source.Driver, error) {
	return iofs.New(migrationFiles, "migrations")
}

func newMigrator(cfg *config.Config) (*migrate.Migrate, error) {
	src, err := MigrationSource()
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("init migration driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", src, "postgres", driver)
}

// MigrateUp applies every pending migration.
func MigrateUp(cfg *config.Config, log zerolog.Logger) error {
	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	logVersion(m, log, "migrations applied")
	return nil
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(cfg *config.Config, steps int, log zerolog.Logger) error {
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	m, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	logVersion(m, log, "migrations rolled back")
	return nil
}

func logVersion(m *migrate.Migrate, log zerolog.Logger, msg string) {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg(msg + ", schema is empty")
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("could not read schema version")
		return
	}
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg(msg)
}
