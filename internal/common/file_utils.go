package common

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// FileInfo contains metadata about a file
type FileInfo struct {
	Path    string    // Full file path
	Size    int64     // File size in bytes
	IsDir   bool      // Whether it's a directory
	ModTime time.Time // Last modification time
}

// FileReadOptions configures file reading behavior
type FileReadOptions struct {
	MaxSize int64           // Maximum file size to read (0 = no limit)
	Context context.Context // Context for cancellation
}

// FileWriteOptions configures file writing behavior
type FileWriteOptions struct {
	CreateDirs  bool        // Whether to create parent directories
	Permissions fs.FileMode // File permissions
}

// DefaultFileReadOptions returns default file reading options
func DefaultFileReadOptions() FileReadOptions {
	return FileReadOptions{
		MaxSize: 50 * 1024 * 1024, // 50MB default
		Context: context.Background(),
	}
}

// DefaultFileWriteOptions returns default file writing options
func DefaultFileWriteOptions() FileWriteOptions {
	return FileWriteOptions{
		CreateDirs:  true,
		Permissions: 0644,
	}
}

// FileManager provides file operations with standardized error handling and logging
type FileManager struct {
	logger zerolog.Logger
}

// NewFileManager creates a new FileManager instance
func NewFileManager(logger zerolog.Logger) *FileManager {
	return &FileManager{
		logger: logger.With().Str("component", "FileManager").Logger(),
	}
}

// FileExists checks if a file or directory exists
func (fm *FileManager) FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// GetFileInfo returns information about a file
func (fm *FileManager) GetFileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, WrapError(ErrNotFound, fmt.Sprintf("file not found: %s", path))
		}
		return nil, WrapError(err, fmt.Sprintf("failed to get file info for: %s", path))
	}

	return &FileInfo{
		Path:    path,
		Size:    stat.Size(),
		IsDir:   stat.IsDir(),
		ModTime: stat.ModTime(),
	}, nil
}

// ReadFile reads a whole file, refusing directories and files above opts.MaxSize
func (fm *FileManager) ReadFile(path string, opts FileReadOptions) ([]byte, error) {
	info, err := fm.GetFileInfo(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir {
		return nil, NewValidationError("path", path, "is a directory, not a file")
	}
	if opts.MaxSize > 0 && info.Size > opts.MaxSize {
		return nil, NewCapacityError("file_size", info.Size, fmt.Sprintf("exceeds maximum size of %d bytes", opts.MaxSize))
	}

	if opts.Context != nil {
		if err := opts.Context.Err(); err != nil {
			return nil, WrapError(err, "file read operation cancelled")
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("failed to open file: %s", path))
	}
	defer func() {
		if err := file.Close(); err != nil {
			fm.logger.Error().Err(err).Str("path", path).Msg("Failed to close file.")
		}
	}()

	var reader io.Reader = file
	if opts.MaxSize > 0 {
		reader = io.LimitReader(file, opts.MaxSize)
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, WrapError(err, fmt.Sprintf("failed to read file content: %s", path))
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("File read successfully")
	return content, nil
}

// EnsureDirectory creates a directory and its parents if they don't exist
func (fm *FileManager) EnsureDirectory(path string, perm fs.FileMode) error {
	if fm.FileExists(path) {
		info, err := fm.GetFileInfo(path)
		if err != nil {
			return WrapError(err, "failed to check directory: "+path)
		}
		if !info.IsDir {
			return NewValidationError("path", path, "exists but is not a directory")
		}
		return nil
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return WrapError(err, "failed to create directory: "+path)
	}

	fm.logger.Debug().Str("path", path).Msg("Created directory")
	return nil
}

// WriteFile writes data to a file with the given options
func (fm *FileManager) WriteFile(path string, data []byte, opts FileWriteOptions) error {
	if opts.CreateDirs {
		if err := fm.EnsureDirectory(filepath.Dir(path), 0755); err != nil {
			return WrapError(err, fmt.Sprintf("failed to create parent directories for: %s", path))
		}
	}
	perm := opts.Permissions
	if perm == 0 {
		perm = 0644
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return WrapError(err, fmt.Sprintf("failed to write file: %s", path))
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("File written successfully")
	return nil
}
