package logger

// Defaults for the log section of the config file.
const (
	DefaultLogFile           = ""
	DefaultLogFormat         = "console"
	DefaultLogLevel          = "info"
	DefaultMaxLogBackups     = 3
	DefaultMaxLogSizeMB      = 100
	DefaultConsoleTimeFormat = "15:04:05"
)

// FileLogConfig is the log section of the config file. An empty LogFile
// disables the rotating file writer. NoColor and ConsoleTimeFormat only
// affect console and text output.
type FileLogConfig struct {
	LogFile           string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogFormat         string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel          string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups     int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty" validate:"min=0"`
	MaxLogSizeMB      int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty" validate:"min=0"`
	NoColor           bool   `json:"no_color,omitempty" yaml:"no_color,omitempty"`
	ConsoleTimeFormat string `json:"console_time_format,omitempty" yaml:"console_time_format,omitempty"`
}

// NewDefaultFileLogConfig returns the log section used when the file omits it.
func NewDefaultFileLogConfig() FileLogConfig {
	return FileLogConfig{
		LogFile:           DefaultLogFile,
		LogFormat:         DefaultLogFormat,
		LogLevel:          DefaultLogLevel,
		MaxLogBackups:     DefaultMaxLogBackups,
		MaxLogSizeMB:      DefaultMaxLogSizeMB,
		ConsoleTimeFormat: DefaultConsoleTimeFormat,
	}
}
