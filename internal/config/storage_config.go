package config

// StorageConfig defines configuration for comparison history and change exports
type StorageConfig struct {
	HistoryEnabled   bool   `json:"history_enabled" yaml:"history_enabled"`
	SQLiteDBPath     string `json:"sqlite_db_path,omitempty" yaml:"sqlite_db_path,omitempty" validate:"required_if=HistoryEnabled true"`
	ExportEnabled    bool   `json:"export_enabled" yaml:"export_enabled"`
	ParquetBasePath  string `json:"parquet_base_path,omitempty" yaml:"parquet_base_path,omitempty" validate:"required_if=ExportEnabled true"`
	CompressionCodec string `json:"compression_codec,omitempty" yaml:"compression_codec,omitempty" validate:"omitempty,compression"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		HistoryEnabled:   false,
		SQLiteDBPath:     DefaultStorageSQLiteDBPath,
		ExportEnabled:    false,
		ParquetBasePath:  DefaultStorageParquetBasePath,
		CompressionCodec: DefaultStorageCompressionCodec,
	}
}
