package database

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewGormLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(zerolog.New(&buf))

	l.Info(context.Background(), "connected to %s", "catalog")
	assert.Empty(t, buf.String(), "info messages are below the gorm log level")

	l.Warn(context.Background(), "slow query on %s", "products")
	assert.Contains(t, buf.String(), "slow query on products")
	assert.Contains(t, buf.String(), `"component":"gorm"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
