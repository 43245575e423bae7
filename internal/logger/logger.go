package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"profitplanner/internal/util"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	env := os.Getenv(util.EnvVar)
	if strings.ToLower(env) == "dev" || strings.ToLower(env) == "test" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    util.EnvVar,
			Type:   zapcore.StringType,
			String: env,
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

const ContextKey = "LOGGER"

// WithLogger returns a copy of ctx carrying lg.
func WithLogger(ctx context.Context, lg *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, lg)
}

// FromContext returns the logger attached to ctx, or the global logger
// when there is none.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	lg, ok := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !ok || lg == nil {
		lg = zap.S()
		lg.Debug("no logger found in ctx - using global logger")
	}
	return lg
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
