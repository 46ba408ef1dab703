package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "colorarea"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"x_channel": "saturation"})
	log.Info("channels resolved", "y_channel", "brightness")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "channels resolved", entry["message"])
	require.Equal(t, "colorarea", entry["component"])
	require.Equal(t, "saturation", entry["x_channel"])
	require.Equal(t, "brightness", entry["y_channel"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.False(t, log.DebugEnabled())
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	require.True(t, log.DebugEnabled())

	log.Error(errors.New("boom"), "failed", "input", "#ggg")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "#ggg", entry["input"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("drag cancelled")
	require.Contains(t, buf.String(), "drag cancelled")
	require.Contains(t, buf.String(), "WRN")
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Debug("ignored")
		nilLogger.Warn("ignored")
		nilLogger.Error(errors.New("x"), "ignored")
		require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
		require.False(t, nilLogger.DebugEnabled())
	})

	require.NotPanics(t, func() {
		Nop().Info("ignored")
	})
}
