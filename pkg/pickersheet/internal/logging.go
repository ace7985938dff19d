package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// logOutput is shared by both loggers so the destination can change after
// they have been created.
type logOutput struct {
	mu   sync.Mutex
	w    io.Writer
	file *os.File
}

func (o *logOutput) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

var (
	output = &logOutput{w: os.Stdout}

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

func newLogger(level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
}

// OpenLogFile tees both loggers to path in addition to stdout, creating parent
// directories. It replaces any previously opened file. On failure logging
// stays on stdout and the error is returned.
func OpenLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	output.mu.Lock()
	previous := output.file
	output.file = file
	output.w = io.MultiWriter(os.Stdout, file)
	output.mu.Unlock()

	if previous != nil {
		previous.Close()
	}
	return nil
}

// SetLogPath is OpenLogFile for callers that cannot handle the error;
// a failure is reported once on the internal logger.
func SetLogPath(path string) {
	if err := OpenLogFile(path); err != nil {
		GetInternalLogger().Error("Failed to open log file, logging to stdout only", "path", path, "error", err)
	}
}

func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newLogger(levelVar)
	})
	return logger
}

// GetInternalLogger returns the logger used by the library itself.
// It starts at Error so dispatch tracing stays quiet unless asked for.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)
		internalLogger = newLogger(internalLevelVar)
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a raw level name to a slog.Level, defaulting to Info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

// CloseLogger closes the log file, if any, and returns logging to stdout.
func CloseLogger() {
	output.mu.Lock()
	defer output.mu.Unlock()

	if output.file != nil {
		output.file.Close()
		output.file = nil
	}
	output.w = os.Stdout
}
