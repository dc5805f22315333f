package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/aleister1102/docdiff/internal/common"
	"github.com/aleister1102/docdiff/internal/logger"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	LogConfig      logger.FileLogConfig `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	CompareConfig  CompareConfig        `json:"compare_config,omitempty" yaml:"compare_config,omitempty"`
	ReporterConfig ReporterConfig       `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
	StorageConfig  StorageConfig        `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		LogConfig:      logger.NewDefaultFileLogConfig(),
		CompareConfig:  NewDefaultCompareConfig(),
		ReporterConfig: NewDefaultReporterConfig(),
		StorageConfig:  NewDefaultStorageConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// Fields absent from the file keep their defaults. With no file found the
// defaults are returned as-is.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	fileManager := common.NewFileManager(logger)
	if !fileManager.FileExists(filePath) {
		return nil, common.NewValidationError("config_file", filePath, "config file does not exist")
	}

	opts := common.DefaultFileReadOptions()
	opts.MaxSize = maxConfigFileSize
	data, err := fileManager.ReadFile(filePath, opts)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	logger.Debug().Str("path", filePath).Msg("Configuration loaded")
	return cfg, nil
}

func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	if isYAMLFile(filepath.Ext(filePath)) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

func isYAMLFile(ext string) bool {
	ext = strings.ToLower(ext)
	return ext == ".yaml" || ext == ".yml"
}

// SaveGlobalConfig writes cfg as YAML or JSON depending on the file extension.
func SaveGlobalConfig(cfg *GlobalConfig, filePath string, logger zerolog.Logger) error {
	var (
		data []byte
		err  error
	)
	if isYAMLFile(filepath.Ext(filePath)) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return common.WrapError(err, "failed to marshal configuration")
	}

	return common.NewFileManager(logger).WriteFile(filePath, data, common.DefaultFileWriteOptions())
}
