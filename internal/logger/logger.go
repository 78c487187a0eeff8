// Package logger configures the zap logger used across the solver service.
package logger

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const requestIDKey contextKey = "request-id"

// New creates a SugaredLogger configured for the given environment. If env
// is empty it reads APP_ENV, defaulting to production if unset.
func New(env string) (*zap.SugaredLogger, error) {
	if env == "" {
		env = os.Getenv("APP_ENV")
	}

	var config zap.Config

	switch env {
	case "development", "dev":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
	default:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
		config.EncoderConfig.CallerKey = "caller"
		config.EncoderConfig.LevelKey = "level"
		config.EncoderConfig.MessageKey = "message"
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	zl, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return zl.Sugar(), nil
}

// WithRequestID injects a request id into the context for correlating log
// lines across a single solve request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// ExtractRequestID retrieves the request id stored by WithRequestID.
func ExtractRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// LogSolve logs the outcome of one solve attempt.
func LogSolve(l *zap.SugaredLogger, scheduleID, status string, durationMS int64, err error) {
	if err != nil {
		l.Errorw("solve failed",
			"schedule_id", scheduleID,
			"status", status,
			"duration_ms", durationMS,
			"error", err,
		)
		return
	}
	l.Infow("solve completed",
		"schedule_id", scheduleID,
		"status", status,
		"duration_ms", durationMS,
	)
}
