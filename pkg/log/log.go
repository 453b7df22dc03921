package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger creates a named, production-configured sugared logger.
func NewZapLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("build zap logger: %s", err))
	}

	return logger.Named(name).Sugar()
}
