package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func Test_OnNewLogger_ShouldHonourEnvironment(t *testing.T) {
	quiet, err := newLogger("")
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.ErrorLevel))

	dev, err := newLogger("dev")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod, err := newLogger("prod")
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, prod.Core().Enabled(zapcore.InfoLevel))

	none, err := newLogger("none")
	require.NoError(t, err)
	assert.False(t, none.Core().Enabled(zapcore.ErrorLevel))
}

func Test_OnReplace_ShouldRouteMessages(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))
	defer restore()

	Info("expense added", zap.String("category", "Food"))
	Warn("invalid date")

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "expense added", entries[0].Message)
	assert.Equal(t, "Food", entries[0].ContextMap()["category"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func Test_OnConfigure_ShouldSwitchLogger(t *testing.T) {
	restore := Replace(zap.NewNop())
	defer restore()

	require.NoError(t, Configure("dev"))
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
