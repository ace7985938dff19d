// Package pickersheet provides the actions of an image picker sheet and a
// headless sheet model that dispatches them.
//
// An Action carries a title, an optional count-dependent secondary title, a
// style and two handlers. The host shows ResolvedTitle(count) for the current
// selection and calls Handle(count) on tap: the primary handler runs with
// nothing selected, the secondary one otherwise. Sheet implements that host
// contract without rendering anything.
package pickersheet

import (
	"log/slog"
	"os"

	"github.com/pawndev/pickersheet/pkg/pickersheet/i18n"
	"github.com/pawndev/pickersheet/pkg/pickersheet/internal"
)

// DebugEnvVar forces debug logging of action dispatch when set.
const DebugEnvVar = "PICKERSHEET_DEBUG"

// Options configures logging and localization.
type Options struct {
	LogPath      string             // Full path for the log file, stdout only when empty
	LogLevel     string             // Application log level ("debug", "info", "warn", "error")
	MessageFiles []i18n.MessageFile // Translations for action titles
	Language     string             // BCP 47 code of the display language, English when empty
}

// Init sets up logging and loads translations. It can be called at any time,
// including after actions have been handled; later log records follow the new
// settings. A log file that cannot be opened is returned as an error and
// logging stays on stdout.
func Init(options Options) error {
	if options.LogPath != "" {
		if err := internal.OpenLogFile(options.LogPath); err != nil {
			internal.GetInternalLogger().Error("Failed to open log file", "path", options.LogPath, "error", err)
			return err
		}
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if os.Getenv(DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if len(options.MessageFiles) > 0 {
		if err := i18n.InitI18NFromBytes(options.MessageFiles); err != nil {
			internal.GetInternalLogger().Error("Failed to load message files", "error", err)
			return err
		}
	}

	if options.Language != "" {
		if err := i18n.SetWithCode(options.Language); err != nil {
			internal.GetInternalLogger().Error("Invalid language code", "language", options.Language, "error", err)
			return err
		}
	}

	return nil
}

// Close closes the log file and returns logging to stdout.
func Close() {
	internal.CloseLogger()
}

// SetLogPath tees logging to the file at path, creating parent directories.
// Failures are logged and leave logging on stdout; use Init to get the error.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
