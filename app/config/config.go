// Package config loads service settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultEnvFile is read when Load is called without explicit files.
const DefaultEnvFile = ".env"

type Config struct {
	ServerPort         string        `mapstructure:"SERVER_PORT"`
	DbHost             string        `mapstructure:"POSTGRES_HOST"`
	DbPort             string        `mapstructure:"POSTGRES_PORT"`
	DbName             string        `mapstructure:"POSTGRES_DB"`
	DbUser             string        `mapstructure:"POSTGRES_USER"`
	DbPas              string        `mapstructure:"POSTGRES_PASSWORD"`
	DbSSLMode          string        `mapstructure:"POSTGRES_SSLMODE"`
	DbMaxOpenConns     int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DbMaxIdleConns     int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	CorsAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
	LogFile            string        `mapstructure:"LOG_FILE"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"SERVER_PORT":          "8080",
	"POSTGRES_HOST":        "localhost",
	"POSTGRES_PORT":        "5432",
	"POSTGRES_DB":          "catalog",
	"POSTGRES_USER":        "postgres",
	"POSTGRES_PASSWORD":    "postgres",
	"POSTGRES_SSLMODE":     "disable",
	"DB_MAX_OPEN_CONNS":    10,
	"DB_MAX_IDLE_CONNS":    5,
	"CORS_ALLOWED_ORIGINS": "http://localhost:5173",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"LOG_FILE":             "",
	"SHUTDOWN_TIMEOUT":     30 * time.Second,
}

// Load reads the given .env files (missing ones are skipped) and then
// resolves every setting from the process environment, falling back to defaults.
// Variables already present in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	origins := cf.CorsAllowedOrigins[:0]
	for _, o := range cf.CorsAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cf.CorsAllowedOrigins = origins

	return cf, nil
}

// DSN renders the keyword/value connection string understood by both pgx and lib/pq.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DbHost, c.DbPort, c.DbUser, c.DbPas, c.DbName, c.DbSSLMode)
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.ServerPort
}
