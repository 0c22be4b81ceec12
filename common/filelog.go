package common

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warn"
	levelError = "error"
)

var (
	fileLogger *zap.Logger
	fileMu     sync.RWMutex
)

// OpenLogFile mirrors every log line into a JSON log file. The terminal is
// owned by the dashboard while it runs, so this is the only durable trace
// of a session.
func OpenLogFile(filename string) error {
	level := zapcore.InfoLevel
	if DebugFlag() {
		level = zapcore.DebugLevel
	}

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
		},
		OutputPaths:      []string{filename},
		ErrorOutputPaths: []string{filename},
	}
	logger, err := config.Build()
	if err != nil {
		return err
	}

	fileMu.Lock()
	previous := fileLogger
	fileLogger = logger.Named(Product)
	fileMu.Unlock()

	if previous != nil {
		previous.Sync()
	}
	return nil
}

// CloseLogFile flushes and detaches the file sink, if any.
func CloseLogFile() {
	fileMu.Lock()
	logger := fileLogger
	fileLogger = nil
	fileMu.Unlock()

	if logger != nil {
		logger.Sync()
	}
}

func mirror(level, message string) {
	fileMu.RLock()
	logger := fileLogger
	fileMu.RUnlock()

	if logger == nil {
		return
	}
	switch level {
	case levelDebug:
		logger.Debug(message)
	case levelWarn:
		logger.Warn(message)
	case levelError:
		logger.Error(message)
	default:
		logger.Info(message)
	}
}

func syncLogFile() {
	fileMu.RLock()
	logger := fileLogger
	fileMu.RUnlock()

	if logger != nil {
		logger.Sync()
	}
}
