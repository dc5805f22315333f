package config

// ReporterConfig defines configuration for generating reports
type ReporterConfig struct {
	OutputDir       string   `json:"output_dir,omitempty" yaml:"output_dir,omitempty" validate:"required"`
	Formats         []string `json:"formats,omitempty" yaml:"formats,omitempty" validate:"dive,reportformat"`
	EmbedInlineDiff bool     `json:"embed_inline_diff" yaml:"embed_inline_diff"`
	Title           string   `json:"title,omitempty" yaml:"title,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir:       DefaultReporterOutputDir,
		Formats:         []string{ReportFormatHTML},
		EmbedInlineDiff: true,
		Title:           DefaultReporterTitle,
	}
}
