// Package logger builds the zap loggers used across cleanuml.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openkraft/cleanuml/internal/domain"
)

// Component names for child loggers.
const (
	ComponentValidator = "validator"
	ComponentReport    = "report"
	ComponentCLI       = "cli"
	ComponentMCP       = "mcp"
)

// ParseLevel converts a configured level; unknown values fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05"))
}

// New creates a logger writing to stderr.
func New(level string, format domain.LogFormat) *zap.Logger {
	return NewWithWriter(os.Stderr, level, format)
}

// NewWithWriter creates a logger writing to w, in console format unless
// format is json.
func NewWithWriter(w io.Writer, level string, format domain.LogFormat) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var encoder zapcore.Encoder
	if format == domain.LogFormatJSON {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = timeEncoder
		encoderConfig.ConsoleSeparator = " | "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	atom := zap.NewAtomicLevelAt(ParseLevel(level))
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), atom)
	return zap.New(core)
}

// FromConfig creates the logger described by the log section of cfg.
func FromConfig(cfg domain.Config) *zap.Logger {
	return FromConfigWithWriter(os.Stderr, cfg)
}

// FromConfigWithWriter is FromConfig writing to w. Verbose does not change
// the level: it only raises the summaries of rules that found nothing.
func FromConfigWithWriter(w io.Writer, cfg domain.Config) *zap.Logger {
	return NewWithWriter(w, cfg.Log.Level, cfg.Log.Format)
}
