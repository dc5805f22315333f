package datastore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/rs/zerolog"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FilePathGenerator resolves export file paths under a base directory.
type FilePathGenerator struct {
	logger   zerolog.Logger
	basePath string
}

// NewFilePathGenerator creates a new file path generator
func NewFilePathGenerator(basePath string, logger zerolog.Logger) *FilePathGenerator {
	return &FilePathGenerator{
		logger:   logger.With().Str("component", "FilePathGenerator").Logger(),
		basePath: basePath,
	}
}

// ChangeIndexPath returns <base>/<sanitized name>.parquet, creating base if needed.
func (fpg *FilePathGenerator) ChangeIndexPath(name string) (string, error) {
	sanitized := SanitizeFilename(name)
	if sanitized == "" {
		return "", common.NewValidationError("comparison_id", name, "sanitized name is empty, cannot write parquet file")
	}

	if err := os.MkdirAll(fpg.basePath, 0755); err != nil {
		fpg.logger.Error().Err(err).Str("directory", fpg.basePath).Msg("Failed to create change index directory")
		return "", common.WrapError(err, "failed to create directory: "+fpg.basePath)
	}

	filePath := filepath.Join(fpg.basePath, fmt.Sprintf("%s.parquet", sanitized))
	fpg.logger.Debug().Str("name", name).Str("file_path", filePath).Msg("Generated change index file path")
	return filePath, nil
}

// SanitizeFilename replaces runs of unsafe characters with underscores.
func SanitizeFilename(name string) string {
	return strings.Trim(unsafeFileChars.ReplaceAllString(name, "_"), "_.")
}
