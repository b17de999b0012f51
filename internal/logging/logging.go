// Package logging builds the zap logger used by the certgen commands.
// Events go to the console and, optionally, to an append-only log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration.
type Config struct {
	Level      string    // debug, info, warn, error
	Format     string    // console, json
	Console    io.Writer // nil disables console output
	FilePath   string    // empty disables file output
	TimeFormat string
}

// DefaultConfig returns a console-only configuration at info level.
func DefaultConfig() *Config {
	return &Config{
		Level:      "info",
		Format:     "console",
		Console:    os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}
}

// New creates a logger writing to every configured sink.
// The returned close function syncs the logger and closes the log file.
func New(cfg *Config) (*zap.Logger, func() error, error) {
	level := ParseLevel(cfg.Level)

	var cores []zapcore.Core
	var file *os.File

	if cfg.Console != nil {
		cores = append(cores, zapcore.NewCore(newEncoder(cfg), zapcore.AddSync(cfg.Console), level))
	}

	if cfg.FilePath != "" {
		f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) // #nosec G302 G304 -- log file is meant to be readable
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		file = f
		cores = append(cores, zapcore.NewCore(newEncoder(cfg), zapcore.AddSync(f), level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), func() error { return nil }, nil
	}

	logger := zap.New(zapcore.NewTee(cores...))
	closeFn := func() error {
		_ = logger.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return logger, closeFn, nil
}

// ParseLevel converts a string level to zapcore.Level.
// Unknown values fall back to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
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

func newEncoder(cfg *Config) zapcore.Encoder {
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultConfig().TimeFormat
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeFormat),
		EncodeDuration: zapcore.MillisDurationEncoder,
		// "2025-03-25 10:00:00 - INFO - message"
		ConsoleSeparator: " - ",
	}

	if strings.ToLower(cfg.Format) == "json" {
		encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}
