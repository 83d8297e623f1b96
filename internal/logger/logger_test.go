package logger

import (
	"testing"

	"freshpack-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewProductionLevel(t *testing.T) {
	log, err := New(config.Log{Level: "warn", Format: "json"}, config.Environment{Name: "production"})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNewDevelopmentForcesDebug(t *testing.T) {
	log, err := New(config.Log{Level: "error", Format: "json"}, config.Environment{Name: "development"})
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.Log{Level: "loud"}, config.Environment{Name: "production"})
	require.Error(t, err)
}
