package logger

import (
	"io"
	stdlog "log"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config LoggerConfig
	err    error
}

// NewLoggerBuilder creates a new logger builder
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config: DefaultLoggerConfig(),
	}
}

// WithConfig applies a file config. A conversion error is returned by Build.
// A console writer set earlier is kept.
func (lb *LoggerBuilder) WithConfig(cfg FileLogConfig) *LoggerBuilder {
	console := lb.config.Console
	lb.config, lb.err = ConvertConfig(cfg)
	lb.config.Console = console
	return lb
}

// WithConsoleOutput redirects console output away from stderr.
func (lb *LoggerBuilder) WithConsoleOutput(w io.Writer) *LoggerBuilder {
	lb.config.Console = w
	return lb
}

// Build creates the logger instance and routes the standard log package through it.
func (lb *LoggerBuilder) Build() (*Logger, error) {
	if lb.err != nil {
		return nil, lb.err
	}
	if lb.config.MaxSizeMB <= 0 {
		return nil, common.NewValidationError("max_size_mb", lb.config.MaxSizeMB, "max size must be positive")
	}

	factory := NewWriterFactory(lb.config)
	writers := []io.Writer{factory.CreateConsoleWriter()}
	if lb.config.FileEnabled() {
		fileWriter, err := factory.CreateFileWriter()
		if err != nil {
			return nil, common.WrapError(err, "failed to create log file writer")
		}
		writers = append(writers, fileWriter)
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	zerolog.SetGlobalLevel(lb.config.Level)
	stdlog.SetOutput(zl.With().Str(componentFieldName, "stdlog").Logger())
	stdlog.SetFlags(0)

	return &Logger{zerolog: zl, config: lb.config}, nil
}
