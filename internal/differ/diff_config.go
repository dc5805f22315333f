package differ

// DiffConfig holds configuration for inline refinement of replacements
type DiffConfig struct {
	EnableSemanticCleanup bool
}

// DefaultDiffConfig returns default configuration
func DefaultDiffConfig() DiffConfig {
	return DiffConfig{
		EnableSemanticCleanup: true,
	}
}
