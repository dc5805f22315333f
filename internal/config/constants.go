package config

const (
	// Compare Defaults
	DefaultCompareMode                  = "word"
	DefaultCompareMaxTokens             = 20000
	DefaultCompareWarnTokens            = 5000
	DefaultCompareMaxTableCells         = 100_000_000
	DefaultCompareMemoryHeadroomPercent = 0.5

	// Reporter Defaults
	DefaultReporterOutputDir = "reports"
	DefaultReporterTitle     = "Document Comparison"

	// Storage Defaults
	DefaultStorageSQLiteDBPath     = "database/history.db"
	DefaultStorageParquetBasePath  = "database/changes"
	DefaultStorageCompressionCodec = "zstd"

	// ConfigPathEnv overrides config file discovery when set.
	ConfigPathEnv = "DOCDIFF_CONFIG_PATH"

	maxConfigFileSize = 10 * 1024 * 1024
)

// Report formats
const (
	ReportFormatHTML = "html"
	ReportFormatJSON = "json"
	ReportFormatText = "text"
)
