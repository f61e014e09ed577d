// Package logging holds the shared logging plumbing for the library.
// Components stay silent unless the caller hands them a logger.
package logging

import (
	"time"

	"go.uber.org/zap"
)

// Component names used for child loggers.
const (
	Resolver = "resolver"
	Scorer   = "scorer"
	Store    = "store"
)

// Named returns a child logger for a component, tolerating nil.
func Named(l *zap.Logger, component string) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l.Named(component)
}

// Timer measures one operation and reports it when stopped.
type Timer struct {
	log   *zap.Logger
	op    string
	start time.Time
}

// StartTimer begins timing an operation.
func StartTimer(log *zap.Logger, op string) *Timer {
	return &Timer{log: log, op: op, start: time.Now()}
}

// Stop ends the timer and logs the elapsed time at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.log.Debug(t.op, zap.Duration("elapsed", elapsed))
	return elapsed
}
