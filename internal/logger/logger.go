package logger

import (
	"fmt"

	"freshpack-backend/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. Development gets a console encoder at
// debug level regardless of LOG_LEVEL.
func New(logCfg config.Log, envCfg config.Environment) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(logCfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logCfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Encoding = logCfg.Format
	if zapCfg.Encoding != "console" {
		zapCfg.Encoding = "json"
	}
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if envCfg.IsDevelopment() {
		zapCfg.Development = true
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		level = zapcore.DebugLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
