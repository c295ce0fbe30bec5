package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerVerboseFalse(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	logger := NewLogger(stdout, stderr, nil, false)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	assert.NoError(t, logger.Sync())

	assert.Equal(t, "info message\n", stdout.String())
	assert.Equal(t, "warn message\n", stderr.String())
}

func TestLoggerVerboseTrue(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	logger := NewLogger(stdout, stderr, nil, true)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	assert.NoError(t, logger.Sync())

	assert.Equal(t, "DEBUG\tdebug message\nINFO\tinfo message\n", stdout.String())
	assert.Equal(t, "WARN\twarn message\n", stderr.String())
}

func TestDebugLogger(t *testing.T) {
	logger, buffer := NewDebugLogger()
	logger.Debugf("debug %s", "message")
	logger.Infof("info %s", "message")
	assert.NoError(t, logger.Sync())

	assert.Equal(t, "DEBUG  debug message\nINFO  info message\n", buffer.String())
}
