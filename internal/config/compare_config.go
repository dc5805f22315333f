package config

// CompareConfig bounds the work a single comparison may do.
type CompareConfig struct {
	DefaultMode string `json:"default_mode,omitempty" yaml:"default_mode,omitempty" validate:"omitempty,comparemode"`
	// MaxTokens is the per-side unit ceiling; 0 disables it.
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty" validate:"min=0"`
	// WarnTokens logs a warning when either side exceeds it; 0 disables it.
	WarnTokens int `json:"warn_tokens,omitempty" yaml:"warn_tokens,omitempty" validate:"min=0"`
	// MaxTableCells caps (m+1)*(n+1); 0 disables it.
	MaxTableCells int64 `json:"max_table_cells,omitempty" yaml:"max_table_cells,omitempty" validate:"min=0"`
	// MemoryHeadroomPercent is the share of available memory one table may use.
	MemoryHeadroomPercent float64 `json:"memory_headroom_percent,omitempty" yaml:"memory_headroom_percent,omitempty" validate:"gte=0,lte=1"`
}

// NewDefaultCompareConfig creates default compare configuration
func NewDefaultCompareConfig() CompareConfig {
	return CompareConfig{
		DefaultMode:           DefaultCompareMode,
		MaxTokens:             DefaultCompareMaxTokens,
		WarnTokens:            DefaultCompareWarnTokens,
		MaxTableCells:         DefaultCompareMaxTableCells,
		MemoryHeadroomPercent: DefaultCompareMemoryHeadroomPercent,
	}
}
