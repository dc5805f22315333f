package logger

import (
	"github.com/aleister1102/docdiff/internal/common"
)

// ConvertConfig resolves the config file section. Level and format errors
// are combined; the returned config still carries usable fallbacks.
func ConvertConfig(cfg FileLogConfig) (LoggerConfig, error) {
	var errs common.ErrorCollector

	level, err := ParseLogLevel(cfg.LogLevel)
	errs.Add(err)
	format, err := ParseLogFormat(cfg.LogFormat)
	errs.Add(err)

	timeFormat := cfg.ConsoleTimeFormat
	if timeFormat == "" {
		timeFormat = DefaultConsoleTimeFormat
	}

	return LoggerConfig{
		Level:      level,
		Format:     format,
		NoColor:    cfg.NoColor,
		TimeFormat: timeFormat,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  positiveOr(cfg.MaxLogSizeMB, DefaultMaxLogSizeMB),
		MaxBackups: positiveOr(cfg.MaxLogBackups, DefaultMaxLogBackups),
	}, errs.Error()
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
