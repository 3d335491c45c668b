// internal/logging/logging_test.go
package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("shouting", false)
	require.Error(t, err)
}

func TestNewQuietRaisesLevel(t *testing.T) {
	log, err := New("debug", true)
	require.NoError(t, err)
	defer func() { _ = log.Sync() }()
	assert.False(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewInfoLevel(t *testing.T) {
	log, err := New("info", false)
	require.NoError(t, err)
	defer func() { _ = log.Sync() }()
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
