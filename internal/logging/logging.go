// Package logging provides the structured logger used by the
// cmd/pedigreectl CLI and the cousin on-disk cache. internal/pedigree and
// internal/cousin's algorithmic paths never log themselves; they only
// return structured errors, so every caller here must decide for itself
// what to log and at what level.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cacack/pedigree-engine/internal/config"
)

// Logger wraps zap.SugaredLogger with the same small set of context
// helpers the ambient logging package this was adapted from exposes.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New creates a Logger from a LoggingConfig.
func New(cfg config.LoggingConfig) (*Logger, error) {
	level := parseLevel(cfg.Level)
	encoder := buildEncoder(cfg.Format)
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	base := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return &Logger{SugaredLogger: base.Sugar(), base: base}, nil
}

// NewDefault creates a Logger with info level, text format, stdout.
func NewDefault() *Logger {
	l, _ := New(config.LoggingConfig{Level: "info", Format: "text"})
	return l
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(encoderConfig)
}

// WithQuery returns a Logger tagged with a relationship-query correlation
// id (see pedigree.RelationshipResult.QueryID).
func (l *Logger) WithQuery(queryID string) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With("query", queryID), base: l.base}
}

// WithRoot returns a Logger tagged with a Sosa root person id.
func (l *Logger) WithRoot(root int64) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With("root", root), base: l.base}
}

// WithFields returns a Logger with additional structured fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...), base: l.base}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

// Desugar exposes the underlying *zap.Logger for callers (such as
// cousin.NewEngine) that need structured zap rather than the sugared API.
func (l *Logger) Desugar() *zap.Logger {
	return l.base
}
