package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/X-Neon/simple-units/logger"
)

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, logger.VerbosityToLevel(0))
	assert.Equal(t, zapcore.InfoLevel, logger.VerbosityToLevel(1))
	assert.Equal(t, zapcore.DebugLevel, logger.VerbosityToLevel(2))
	assert.Equal(t, zapcore.DebugLevel, logger.VerbosityToLevel(5))
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", logger.LevelName(0))
	assert.Equal(t, "Info (-v)", logger.LevelName(1))
	assert.Equal(t, "Debug (-vv)", logger.LevelName(2))
	assert.Equal(t, "Debug (-vv+)", logger.LevelName(7))
}

func TestInitialize(t *testing.T) {
	require.NoError(t, logger.Initialize(1, false))
	require.NotNil(t, logger.Logger)
	assert.False(t, logger.JSONOutput)

	require.NoError(t, logger.Initialize(0, true))
	assert.True(t, logger.JSONOutput)

	logger.Cleanup()
}

func TestSafeBeforeInitialize(t *testing.T) {
	// The package-level helpers must not panic even if Initialize was
	// never called; the default is a nop logger.
	assert.NotPanics(t, func() {
		logger.Infof("hello %s", "world")
		logger.Debugw("detail", "k", "v")
		logger.Errorw("boom", "k", "v")
	})
}
