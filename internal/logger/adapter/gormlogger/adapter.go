// Package gormlogger adapts the zerolog main logger to gorm's logger
// interface so database traffic ends up in the same log streams as
// everything else.
package gormlogger

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gorml "gorm.io/gorm/logger"
)

// Adapter implements gorm's logger.Interface on top of zerolog.
type Adapter struct {
	level gorml.LogLevel
}

// New returns an adapter at warn level, which keeps routine queries out
// of the logs while surfacing slow queries and errors.
func New() *Adapter {
	return &Adapter{level: gorml.Warn}
}

// LogMode returns a copy of the adapter with the given gorm log level.
func (a *Adapter) LogMode(level gorml.LogLevel) gorml.Interface {
	return &Adapter{level: level}
}

// Info implements gorm logging at info level.
func (a *Adapter) Info(_ context.Context, msg string, args ...interface{}) {
	if a.level >= gorml.Info {
		log.Info().Msgf(msg, args...)
	}
}

// Warn implements gorm logging at warn level.
func (a *Adapter) Warn(_ context.Context, msg string, args ...interface{}) {
	if a.level >= gorml.Warn {
		log.Warn().Msgf(msg, args...)
	}
}

// Error implements gorm logging at error level.
func (a *Adapter) Error(_ context.Context, msg string, args ...interface{}) {
	if a.level >= gorml.Error {
		log.Error().Msgf(msg, args...)
	}
}

// Trace logs one executed statement. Missing rows are not an error at
// this layer; gorm callers decide what that means.
func (a *Adapter) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if a.level <= gorml.Silent {
		return
	}

	sql, rows := fc()

	if err != nil && !errors.Is(err, gorml.ErrRecordNotFound) {
		log.Error().
			Err(err).
			Str("sql", sql).
			Int64("rows", rows).
			Dur("elapsed", time.Since(begin)).
			Msg("database statement failed")

		return
	}

	log.Trace().
		Str("sql", sql).
		Int64("rows", rows).
		Dur("elapsed", time.Since(begin)).
		Msg("database statement")
}
