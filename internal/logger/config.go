package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// LoggerConfig is the resolved form of FileLogConfig the builder works from.
type LoggerConfig struct {
	Level      zerolog.Level
	Format     LogFormat
	Console    io.Writer // nil means os.Stderr
	NoColor    bool
	TimeFormat string
	FilePath   string // empty disables file output
	MaxSizeMB  int
	MaxBackups int
}

// FileEnabled reports whether a rotating log file is configured.
func (c LoggerConfig) FileEnabled() bool {
	return c.FilePath != ""
}

// LogFormat selects how log lines are rendered.
type LogFormat int

const (
	FormatConsole LogFormat = iota
	FormatText
	FormatJSON
)

var logFormatNames = map[LogFormat]string{
	FormatConsole: "console",
	FormatText:    "text",
	FormatJSON:    "json",
}

func (lf LogFormat) String() string {
	if name, ok := logFormatNames[lf]; ok {
		return name
	}
	return "console"
}

// DefaultLoggerConfig is an info-level coloured console logger on stderr.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: DefaultConsoleTimeFormat,
		MaxSizeMB:  DefaultMaxLogSizeMB,
		MaxBackups: DefaultMaxLogBackups,
	}
}
