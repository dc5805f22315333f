package datastore

import (
	"strings"

	"github.com/parquet-go/parquet-go"
)

// ChangeIndexWriterConfig holds configuration for ChangeIndexWriter
type ChangeIndexWriterConfig struct {
	CompressionType string
	// IncludeSideText stores the full left and right text of each change,
	// not just its preview.
	IncludeSideText bool
}

// DefaultChangeIndexWriterConfig returns default configuration
func DefaultChangeIndexWriterConfig() ChangeIndexWriterConfig {
	return ChangeIndexWriterConfig{
		CompressionType: "zstd",
		IncludeSideText: true,
	}
}

// compressionOption maps a codec name to a parquet writer option. Unknown
// names fall back to zstd; "none" writes uncompressed pages.
func compressionOption(codec string) parquet.WriterOption {
	switch strings.ToLower(codec) {
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "none":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		return parquet.Compression(&parquet.Zstd)
	}
}
