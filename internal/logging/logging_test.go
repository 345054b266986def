package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.WarnLevel,
		"debug": zapcore.DebugLevel,
		" INFO": zapcore.InfoLevel,
		"error": zapcore.ErrorLevel,
	}
	for raw, want := range cases {
		got, err := ParseLevel(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseLevel("chatty")
	require.Error(t, err)
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	logger, err := New("error", true)
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_RespectsLevel(t *testing.T) {
	logger, err := New("warn", false)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
