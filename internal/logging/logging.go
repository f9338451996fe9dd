package logging

import (
	"context"

	"go.uber.org/zap"
)

type loggerKey struct{}

// DefaultLogger is used when a context carries no logger.
func DefaultLogger() *zap.SugaredLogger {
	return defaultLogger
}

var defaultLogger *zap.SugaredLogger

func init() {
	defaultLogger = NewLogger(false)
}

func NewLogger(debug bool) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	if debug {
		config = zap.NewDevelopmentConfig()
	}
	config.DisableStacktrace = true
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
		return logger
	}
	return defaultLogger
}
