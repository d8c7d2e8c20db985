package logger

import (
	"github.com/rs/zerolog"
	"io"
	"strings"
	"time"
)

// Level names accepted by New and Console, matched case-insensitively.
const INFO = "INFO"
const DEBUG = "DEBUG"
const WARN = "WARN"
const ERROR = "ERROR"
const FATAL = "FATAL"

// New returns a leveled logger writing to w. Unknown levels mean INFO.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}

// Console is New with human readable output, used by the CLI on stderr.
func Console(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	return New(out, level)
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case DEBUG:
		return zerolog.DebugLevel
	case WARN:
		return zerolog.WarnLevel
	case ERROR:
		return zerolog.ErrorLevel
	case FATAL:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
