package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerWritesStructuredFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"source": "data/a.csv"}).Warn("skipping series")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "data/a.csv", entry["source"])
	require.Equal(t, "skipping series", entry["message"])
}

func TestLevelFiltersDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := New(Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	require.Empty(t, buf.Bytes())

	log.Infof("rendered %d series", 3)
	require.Contains(t, buf.String(), "rendered 3 series")
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	log.Info("ignored")
	log.Warnf("ignored %d", 1)
	log.Error(nil, "ignored")
	require.Nil(t, log.WithFields(map[string]any{"k": "v"}))
}
