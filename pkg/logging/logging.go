package logging

import "go.uber.org/zap"

var nopLogger = zap.NewNop()

// New returns a production logger, or a nop logger when logging is disabled.
// A nop logger is always safe to call, so consumers never need nil checks.
func New(enabled bool) *zap.Logger {
	if !enabled {
		return nopLogger
	}
	log, err := zap.NewProduction()
	if err != nil {
		return nopLogger
	}
	return log
}
