package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug allowed at debug", LevelDebug, LevelDebug, true},
		{"info allowed at debug", LevelDebug, LevelInfo, true},
		{"debug blocked at info", LevelInfo, LevelDebug, false},
		{"info blocked at warn", LevelWarn, LevelInfo, false},
		{"warn allowed at warn", LevelWarn, LevelWarn, true},
		{"error allowed at warn", LevelWarn, LevelError, true},
		{"warn blocked at error", LevelError, LevelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New()
			logger.SetLevel(tt.minLevel)
			logger.SetWriter(&buf)

			switch tt.logLevel {
			case LevelDebug:
				logger.Debug("test message")
			case LevelInfo:
				logger.Info("test message")
			case LevelWarn:
				logger.Warn("test message")
			case LevelError:
				logger.Error("test message")
			}

			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
			assert.Equal(t, tt.shouldLog, logger.Enabled(tt.logLevel))
		})
	}
}

func TestLoggerFieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := New()
	logger.SetWriter(&buf)

	logger.With("state", "active").Warn("key dropped", "code", 403, "err", errors.New("no sink"))

	assert.Equal(t, `WARN: key dropped | code=403 err="no sink" state=active`, strings.TrimSpace(buf.String()))
}

func TestWithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New()
	parent.SetWriter(&buf)
	_ = parent.With("applet", "keyecho")

	parent.Warn("plain")
	assert.Equal(t, "WARN: plain", strings.TrimSpace(buf.String()))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, `"two words"`, formatValue("two words"))
	assert.Equal(t, `""`, formatValue(""))
	assert.Equal(t, "word", formatValue("word"))
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "WARN", formatValue(LevelWarn))
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn, " error ": LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
