package logger

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory builds the console and file destinations for one LoggerConfig.
type WriterFactory struct {
	config LoggerConfig
}

// NewWriterFactory creates a factory for cfg.
func NewWriterFactory(cfg LoggerConfig) *WriterFactory {
	return &WriterFactory{config: cfg}
}

// CreateConsoleWriter wraps the configured console (os.Stderr when unset).
func (wf *WriterFactory) CreateConsoleWriter() io.Writer {
	out := wf.config.Console
	if out == nil {
		out = os.Stderr
	}
	return strategyFor(wf.config, false).CreateWriter(out)
}

// CreateFileWriter creates a size-rotated file writer without colour codes.
func (wf *WriterFactory) CreateFileWriter() (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(wf.config.FilePath), 0755); err != nil {
		return nil, err
	}

	rotating := &lumberjack.Logger{
		Filename:   wf.config.FilePath,
		MaxSize:    wf.config.MaxSizeMB,
		MaxBackups: wf.config.MaxBackups,
		LocalTime:  true,
	}
	return strategyFor(wf.config, true).CreateWriter(rotating), nil
}
