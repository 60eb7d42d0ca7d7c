// Package database opens the catalog store and manages its schema.
package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shoeppe/catalog-api/app/config"
)

// Open connects to PostgreSQL. Driver errors for unique and foreign key
// violations are translated to gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DbMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DbMaxIdleConns)

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type zerologWriter struct {
	log zerolog.Logger
}

func (w zerologWriter) Printf(format string, args ...any) {
	w.log.Warn().Msgf(format, args...)
}

// NewGormLogger routes gorm's slow-query and error reports to log.
func NewGormLogger(log zerolog.Logger) gormlogger.Interface {
	return gormlogger.New(
		zerologWriter{log: log.With().Str("component", "gorm").Logger()},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
