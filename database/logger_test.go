package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func traceContext() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	return zerolog.New(&buf).WithContext(context.Background()), &buf
}

func statement() (string, int64) {
	return `SELECT * FROM developers WHERE "id" = 1`, 1
}

func TestGormLoggerLevels(t *testing.T) {
	t.Run("plain statements are quiet by default", func(t *testing.T) {
		ctx, buf := traceContext()
		NewGormLogger(time.Second, true).Trace(ctx, time.Now(), statement, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("info logs every statement", func(t *testing.T) {
		ctx, buf := traceContext()
		NewGormLogger(time.Second, true).LogMode(logger.Info).Trace(ctx, time.Now(), statement, nil)
		assert.Contains(t, buf.String(), `"message":"SQL"`)
		assert.Contains(t, buf.String(), `"level":"debug"`)
		assert.Contains(t, buf.String(), `"rows":1`)
	})

	t.Run("errors are logged by default", func(t *testing.T) {
		ctx, buf := traceContext()
		NewGormLogger(time.Second, true).Trace(ctx, time.Now(), statement, errors.New("connection refused"))
		assert.Contains(t, buf.String(), `"message":"SQL error"`)
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		ctx, buf := traceContext()
		NewGormLogger(time.Millisecond, true).Trace(ctx, time.Now().Add(-time.Second), statement, nil)
		assert.Contains(t, buf.String(), `"message":"SQL slow query"`)
	})

	t.Run("silent drops errors", func(t *testing.T) {
		ctx, buf := traceContext()
		quiet := NewGormLogger(time.Second, true).LogMode(logger.Silent)
		quiet.Trace(ctx, time.Now(), statement, errors.New("connection refused"))
		quiet.Error(ctx, "failed %s", "again")
		assert.Empty(t, buf.String())
	})

	t.Run("record not found can be ignored", func(t *testing.T) {
		ctx, buf := traceContext()
		NewGormLogger(time.Second, true).Trace(ctx, time.Now(), statement, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("log mode leaves the original untouched", func(t *testing.T) {
		base := NewGormLogger(time.Second, true)
		base.LogMode(logger.Info)
		assert.Equal(t, logger.Warn, base.LogLevel)
	})
}

func TestGormLoggerMessages(t *testing.T) {
	ctx, buf := traceContext()
	l := NewGormLogger(time.Second, true)

	l.Info(ctx, "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(ctx, "pool at %d%%", 90)
	assert.Contains(t, buf.String(), "pool at 90%")
}
