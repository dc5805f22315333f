package logger

import (
	"fmt"
	"strings"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/rs/zerolog"
)

// ParseLogLevel maps a config level name to a zerolog level. Empty means info.
func ParseLogLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel, common.NewValidationError("log_level", name, "unknown log level")
	}
	return level, nil
}

// ParseLogFormat maps a config format name to a LogFormat. Empty means console.
func ParseLogFormat(name string) (LogFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatConsole, nil
	}
	for format, known := range logFormatNames {
		if known == name {
			return format, nil
		}
	}
	return FormatConsole, common.NewValidationError("log_format", name, fmt.Sprintf("unknown log format, expected one of %s", strings.Join(LogFormatNames(), ", ")))
}

// LogFormatNames lists accepted format names in a stable order.
func LogFormatNames() []string {
	return []string{FormatConsole.String(), FormatText.String(), FormatJSON.String()}
}
