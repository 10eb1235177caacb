package sdk

import (
	"context"

	"go.uber.org/zap"
)

type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
}

type contextLoggerValueT string

const ContextLoggerValue = contextLoggerValueT("timelock-logger")

var nopLogger Logger = zap.NewNop().Sugar()

// LoggerFrom returns the logger carried by ctx, or a logger that discards
// everything when there is none.
func LoggerFrom(ctx context.Context) Logger {
	if logger, ok := ctx.Value(ContextLoggerValue).(Logger); ok {
		return logger
	}

	return nopLogger
}

// ContextWithLogger returns a copy of ctx that carries logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, ContextLoggerValue, logger)
}
