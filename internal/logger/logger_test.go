package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/openkraft/cleanuml/internal/domain"
	"github.com/openkraft/cleanuml/internal/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, logger.ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, logger.ParseLevel("loud"))
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info", domain.LogFormatJSON).Named(logger.ComponentValidator)

	log.Info("validating classes")
	log.Debug("hidden")
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "validator", entry["component"])
	assert.Equal(t, "validating classes", entry["msg"])
}

func TestNewWithWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "debug", domain.LogFormatConsole)

	log.Debug("Found 0 classes without doc - describe them.")

	assert.Contains(t, buf.String(), " | DEBUG | Found 0 classes without doc - describe them.")
}

func TestFromConfigWithWriter_VerboseKeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := domain.DefaultConfig()
	cfg.Log.Level = "info"
	cfg.Verbose = true
	log := logger.FromConfigWithWriter(&buf, cfg)

	log.Debug("report content")
	log.Info("validating classes")

	assert.NotContains(t, buf.String(), "report content")
	assert.Contains(t, buf.String(), "validating classes")
}
