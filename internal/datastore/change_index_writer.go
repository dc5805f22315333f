package datastore

import (
	"context"
	"os"
	"time"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/aleister1102/docdiff/internal/config"
	"github.com/aleister1102/docdiff/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// ChangeIndexWriter exports the change index of a comparison to Parquet files.
type ChangeIndexWriter struct {
	config       *config.StorageConfig
	logger       zerolog.Logger
	writerConfig ChangeIndexWriterConfig
	paths        *FilePathGenerator
	transformer  *RecordTransformer
}

// ChangeIndexWriterBuilder provides a fluent interface for creating ChangeIndexWriter
type ChangeIndexWriterBuilder struct {
	config       *config.StorageConfig
	logger       zerolog.Logger
	writerConfig ChangeIndexWriterConfig
}

// NewChangeIndexWriterBuilder creates a new ChangeIndexWriterBuilder
func NewChangeIndexWriterBuilder(logger zerolog.Logger) *ChangeIndexWriterBuilder {
	return &ChangeIndexWriterBuilder{
		logger:       logger.With().Str("component", "ChangeIndexWriter").Logger(),
		writerConfig: DefaultChangeIndexWriterConfig(),
	}
}

// WithStorageConfig sets the storage configuration. A non-empty
// CompressionCodec overrides the writer's compression.
func (b *ChangeIndexWriterBuilder) WithStorageConfig(cfg *config.StorageConfig) *ChangeIndexWriterBuilder {
	b.config = cfg
	if cfg != nil && cfg.CompressionCodec != "" {
		b.writerConfig.CompressionType = cfg.CompressionCodec
	}
	return b
}

// WithWriterConfig sets the writer configuration
func (b *ChangeIndexWriterBuilder) WithWriterConfig(cfg ChangeIndexWriterConfig) *ChangeIndexWriterBuilder {
	b.writerConfig = cfg
	return b
}

// Build creates a new ChangeIndexWriter instance
func (b *ChangeIndexWriterBuilder) Build() (*ChangeIndexWriter, error) {
	if b.config == nil {
		return nil, common.NewValidationError("config", b.config, "storage config cannot be nil")
	}
	if b.config.ParquetBasePath == "" {
		return nil, common.NewValidationError("parquet_base_path", b.config.ParquetBasePath, "ParquetBasePath is not configured")
	}

	return &ChangeIndexWriter{
		config:       b.config,
		logger:       b.logger,
		writerConfig: b.writerConfig,
		paths:        NewFilePathGenerator(b.config.ParquetBasePath, b.logger),
		transformer:  NewRecordTransformer(b.logger, b.writerConfig.IncludeSideText),
	}, nil
}

// NewChangeIndexWriter creates a new ChangeIndexWriter using builder pattern
func NewChangeIndexWriter(cfg *config.StorageConfig, logger zerolog.Logger) (*ChangeIndexWriter, error) {
	return NewChangeIndexWriterBuilder(logger).
		WithStorageConfig(cfg).
		Build()
}

// WriteRequest encapsulates a write request
type WriteRequest struct {
	ComparisonID string
	Result       *models.ComparisonResult
	ExportTime   time.Time
}

// WriteResult contains the result of a write operation
type WriteResult struct {
	FilePath       string
	RecordsWritten int
	FileSize       int64
	WriteTime      time.Duration
}

// Write exports the change items of request.Result. The file is named after
// the comparison ID and overwritten if it already exists.
func (w *ChangeIndexWriter) Write(ctx context.Context, request WriteRequest) (*WriteResult, error) {
	startTime := time.Now()

	if request.Result == nil {
		return nil, common.NewValidationError("result", nil, "comparison result cannot be nil")
	}
	if request.ExportTime.IsZero() {
		request.ExportTime = startTime
	}

	if err := checkCancellationWithLog(ctx, w.logger, "change index export"); err != nil {
		return nil, err
	}

	filePath, err := w.paths.ChangeIndexPath(request.ComparisonID)
	if err != nil {
		return nil, err
	}

	rows := w.transformer.TransformResult(request.ComparisonID, request.Result, request.ExportTime)

	if err := checkCancellationWithLog(ctx, w.logger, "change index write"); err != nil {
		return nil, err
	}

	written, err := w.writeToParquetFile(filePath, rows)
	if err != nil {
		return nil, err
	}

	var fileSize int64
	if info, statErr := os.Stat(filePath); statErr == nil {
		fileSize = info.Size()
	}

	result := &WriteResult{
		FilePath:       filePath,
		RecordsWritten: written,
		FileSize:       fileSize,
		WriteTime:      time.Since(startTime),
	}
	w.logger.Info().
		Str("file_path", result.FilePath).
		Int("records_written", result.RecordsWritten).
		Dur("write_time", result.WriteTime).
		Msg("Exported change index to Parquet file")
	return result, nil
}

func (w *ChangeIndexWriter) writeToParquetFile(filePath string, rows []models.ParquetChangeItem) (int, error) {
	file, err := os.Create(filePath)
	if err != nil {
		return 0, common.WrapError(err, "failed to create/truncate parquet file: "+filePath)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[models.ParquetChangeItem](file, compressionOption(w.writerConfig.CompressionType))

	written, err := writer.Write(rows)
	if err != nil {
		_ = writer.Close()
		return 0, common.WrapError(err, "failed to write change items to parquet file")
	}
	if err := writer.Close(); err != nil {
		return 0, common.WrapError(err, "failed to finalize parquet file: "+filePath)
	}
	return written, nil
}

// ReadChangeIndex loads every row of a change index file.
func ReadChangeIndex(filePath string) ([]models.ParquetChangeItem, error) {
	rows, err := parquet.ReadFile[models.ParquetChangeItem](filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to read parquet file: "+filePath)
	}
	return rows, nil
}
