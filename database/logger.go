package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// GormLogger writes gorm's SQL traces through the zerolog logger found in
// the query context, so statements carry the request id of their caller.
type GormLogger struct {
	// SlowThreshold is the delay above which a query is logged as slow
	SlowThreshold time.Duration

	IgnoreRecordNotFoundError bool

	// LogLevel gates what is written: Error logs failed statements, Warn adds
	// slow ones and Info logs every statement.
	LogLevel logger.LogLevel
}

var _ logger.Interface = &GormLogger{}

func NewGormLogger(slowThreshold time.Duration, ignoreRecordNotFoundError bool) *GormLogger {
	return &GormLogger{
		SlowThreshold:             slowThreshold,
		IgnoreRecordNotFoundError: ignoreRecordNotFoundError,
		LogLevel:                  logger.Warn,
	}
}

// LogMode returns a copy logging at level, which is how db.Debug() and
// Session{Logger: ...} switch verbosity for one chain.
func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	copied := *l
	copied.LogLevel = level
	return &copied
}

func (l GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Info {
		zerolog.Ctx(ctx).Info().Msg(fmt.Sprintf(msg, data...))
	}
}

func (l GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Warn {
		zerolog.Ctx(ctx).Warn().Msg(fmt.Sprintf(msg, data...))
	}
}

func (l GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger.Error {
		zerolog.Ctx(ctx).Error().Msg(fmt.Sprintf(msg, data...))
	}
}

func (l GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	z := zerolog.Ctx(ctx)
	if l.LogLevel <= logger.Silent || z.GetLevel() == zerolog.Disabled {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	var event *zerolog.Event
	msg := "SQL"
	switch {
	case err != nil && l.LogLevel >= logger.Error && !(l.IgnoreRecordNotFoundError && errors.Is(err, gorm.ErrRecordNotFound)):
		event = z.Error().Err(err)
		msg = "SQL error"
	case l.SlowThreshold != 0 && elapsed > l.SlowThreshold && l.LogLevel >= logger.Warn:
		event = z.Warn()
		msg = "SQL slow query"
	case l.LogLevel >= logger.Info:
		event = z.Debug()
	default:
		return
	}

	event = event.
		Dur("elapsed", elapsed).
		Str("file", utils.FileWithLineNum()).
		Str("sql", sql)
	if rows > -1 {
		event = event.Int64("rows", rows)
	}
	event.Msg(msg)
}
