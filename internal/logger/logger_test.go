package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLogger(t *testing.T) {
	_, err := New(NewDefaultFileLogConfig())
	require.NoError(t, err)
}

func TestLoggerBuilder_JSONToConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewDefaultFileLogConfig()
	cfg.LogFormat = "json"
	cfg.LogLevel = "debug"

	l, err := NewLoggerBuilder().WithConfig(cfg).WithConsoleOutput(&buf).Build()
	require.NoError(t, err)

	l.GetZerolog().Debug().Str("component", "Test").Msg("hello")

	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.Contains(t, buf.String(), `"component":"Test"`)
	assert.Equal(t, zerolog.DebugLevel, l.Config().Level)
}

func TestLoggerBuilder_InvalidLevel(t *testing.T) {
	cfg := NewDefaultFileLogConfig()
	cfg.LogLevel = "loud"

	_, err := NewLoggerBuilder().WithConfig(cfg).Build()
	assert.Error(t, err)
}

func TestLoggerBuilder_FileWriter(t *testing.T) {
	dir := t.TempDir()
	cfg := NewDefaultFileLogConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "docdiff.log")
	cfg.LogFormat = "json"

	var console bytes.Buffer
	l, err := NewLoggerBuilder().WithConfig(cfg).WithConsoleOutput(&console).Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Msg("to file")

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    LogFormat
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" JSON ", FormatJSON, false},
		{"text", FormatText, false},
		{"console", FormatConsole, false},
		{"", FormatConsole, false},
		{"xml", FormatConsole, true},
	}
	for _, tt := range tests {
		got, err := ParseLogFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
	assert.Equal(t, []string{"console", "text", "json"}, LogFormatNames())
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}

func TestConvertConfig_Defaults(t *testing.T) {
	lc, err := ConvertConfig(FileLogConfig{})
	require.NoError(t, err)

	assert.Equal(t, zerolog.InfoLevel, lc.Level)
	assert.Equal(t, FormatConsole, lc.Format)
	assert.False(t, lc.FileEnabled())
	assert.Equal(t, DefaultConsoleTimeFormat, lc.TimeFormat)
	assert.Equal(t, DefaultMaxLogSizeMB, lc.MaxSizeMB)
	assert.Equal(t, DefaultMaxLogBackups, lc.MaxBackups)
}

func TestConvertConfig_CombinesErrors(t *testing.T) {
	_, err := ConvertConfig(FileLogConfig{LogLevel: "loud", LogFormat: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "log_format")
}

func TestLoggerBuilder_ConsoleShowsComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewDefaultFileLogConfig()
	cfg.NoColor = true
	cfg.ConsoleTimeFormat = "15:04"

	l, err := NewLoggerBuilder().WithConsoleOutput(&buf).WithConfig(cfg).Build()
	require.NoError(t, err)

	l.GetZerolog().Info().Str("component", "Reporter").Str("path", "out.html").Msg("Report written")

	line := buf.String()
	assert.Contains(t, line, "[Reporter] Report written")
	assert.Contains(t, line, "path=out.html")
	assert.NotContains(t, line, "component=")
	assert.NotContains(t, line, "\x1b[")
}
