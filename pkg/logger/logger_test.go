package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLevelFromEnv(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, levelFromEnv("DEBUG"))
	assert.Equal(t, zap.WarnLevel, levelFromEnv(" warn "))
	assert.Equal(t, zap.ErrorLevel, levelFromEnv("error"))
	assert.Equal(t, zap.InfoLevel, levelFromEnv(""))
	assert.Equal(t, zap.InfoLevel, levelFromEnv("verbose"))
}

func TestNewLogger(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")

	logger, err := NewLogger("inkdesk")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}
