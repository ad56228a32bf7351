package logger_test

import (
	"testing"

	"github.com/nikolayk812/craftcart/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	l, err := logger.New("warn")
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := logger.New("chatty")
	require.ErrorContains(t, err, "zapcore.ParseLevel")
}
