package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/shoeppe/catalog-api/app/config"
)

func TestLoadDefaults(t *testing.T) {
	c := qt.New(t)

	cf, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	c.Assert(err, qt.IsNil)

	c.Assert(cf.ServerPort, qt.Equals, "8080")
	c.Assert(cf.DbHost, qt.Equals, "localhost")
	c.Assert(cf.DbMaxOpenConns, qt.Equals, 10)
	c.Assert(cf.CorsAllowedOrigins, qt.DeepEquals, []string{"http://localhost:5173"})
	c.Assert(cf.ShutdownTimeout, qt.Equals, 30*time.Second)
	c.Assert(cf.Addr(), qt.Equals, ":8080")
}

func TestLoadFromEnvironment(t *testing.T) {
	c := qt.New(t)

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cf, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	c.Assert(err, qt.IsNil)

	c.Assert(cf.ServerPort, qt.Equals, "9090")
	c.Assert(cf.DbMaxOpenConns, qt.Equals, 25)
	c.Assert(cf.CorsAllowedOrigins, qt.DeepEquals, []string{"http://a.example", "http://b.example"})
	c.Assert(cf.ShutdownTimeout, qt.Equals, 5*time.Second)
}

func TestLoadFromEnvFile(t *testing.T) {
	c := qt.New(t)

	envFile := filepath.Join(t.TempDir(), "test.env")
	err := os.WriteFile(envFile, []byte("POSTGRES_DB=shop_test\nLOG_FORMAT=console\n"), 0o600)
	c.Assert(err, qt.IsNil)
	t.Cleanup(func() {
		os.Unsetenv("POSTGRES_DB")
		os.Unsetenv("LOG_FORMAT")
	})

	cf, err := config.Load(envFile)
	c.Assert(err, qt.IsNil)

	c.Assert(cf.DbName, qt.Equals, "shop_test")
	c.Assert(cf.LogFormat, qt.Equals, "console")
	c.Assert(cf.DSN(), qt.Equals, "host=localhost port=5432 user=postgres password=postgres dbname=shop_test sslmode=disable")
}

func TestLoadEnvironmentWinsOverEnvFile(t *testing.T) {
	c := qt.New(t)

	t.Setenv("POSTGRES_USER", "from_env")
	envFile := filepath.Join(t.TempDir(), "test.env")
	err := os.WriteFile(envFile, []byte("POSTGRES_USER=from_file\n"), 0o600)
	c.Assert(err, qt.IsNil)

	cf, err := config.Load(envFile)
	c.Assert(err, qt.IsNil)
	c.Assert(cf.DbUser, qt.Equals, "from_env")
}
