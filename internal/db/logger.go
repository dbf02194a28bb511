package db

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

// Logger adapts gorm's logger interface onto logrus. Queries slower than the
// threshold are logged at warn level with their SQL; errors are logged and
// still propagate to the caller.
type Logger struct {
	SlowThreshold time.Duration
}

func NewLogger(slow time.Duration) *Logger {
	return &Logger{SlowThreshold: slow}
}

func (l *Logger) LogMode(logger.LogLevel) logger.Interface {
	return l
}

func (l *Logger) Info(_ context.Context, msg string, args ...interface{}) {
	logrus.Infof(msg, args...)
}

func (l *Logger) Warn(_ context.Context, msg string, args ...interface{}) {
	logrus.Warnf(msg, args...)
}

func (l *Logger) Error(_ context.Context, msg string, args ...interface{}) {
	logrus.Errorf(msg, args...)
}

func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, logger.ErrRecordNotFound):
		logrus.WithFields(logrus.Fields{
			"sql":     sql,
			"rows":    rows,
			"elapsed": elapsed,
		}).Errorf("query failed: %v", err)
	case l.SlowThreshold > 0 && elapsed >= l.SlowThreshold:
		logrus.WithFields(logrus.Fields{
			"sql":     sql,
			"rows":    rows,
			"elapsed": elapsed,
		}).Warn("slow query")
	}
}
