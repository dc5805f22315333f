package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// WriterStrategy wraps a destination in a log line encoder.
type WriterStrategy interface {
	CreateWriter(output io.Writer) io.Writer
}

// JSONWriterStrategy leaves zerolog's JSON lines untouched.
type JSONWriterStrategy struct{}

func (JSONWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return output
}

// ConsoleWriterStrategy renders short human-readable lines. The component
// field, set by every docdiff package, is shown as a bracketed prefix.
type ConsoleWriterStrategy struct {
	NoColor    bool
	TimeFormat string
}

func (cws ConsoleWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	timeFormat := cws.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultConsoleTimeFormat
	}
	return zerolog.ConsoleWriter{
		Out:           output,
		TimeFormat:    timeFormat,
		NoColor:       cws.NoColor,
		PartsOrder:    []string{zerolog.TimestampFieldName, zerolog.LevelFieldName, componentFieldName, zerolog.MessageFieldName},
		FieldsExclude: []string{componentFieldName},
		FormatPartValueByName: func(v interface{}, name string) string {
			if name != componentFieldName || v == nil {
				return ""
			}
			return "[" + toString(v) + "]"
		},
	}
}

// componentFieldName is the field every package's child logger carries.
const componentFieldName = "component"

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// strategyFor picks the encoder for format. File output never gets colour.
func strategyFor(cfg LoggerConfig, toFile bool) WriterStrategy {
	switch cfg.Format {
	case FormatJSON:
		return JSONWriterStrategy{}
	case FormatText:
		return ConsoleWriterStrategy{NoColor: true, TimeFormat: cfg.TimeFormat}
	default:
		return ConsoleWriterStrategy{NoColor: cfg.NoColor || toFile, TimeFormat: cfg.TimeFormat}
	}
}
