package rslimiter

// ResourceLimiterConfig holds configuration for the memory guard
type ResourceLimiterConfig struct {
	MaxTableMB            int64   // Hard ceiling for a single alignment table in MB (0 = no ceiling)
	MemoryHeadroomPercent float64 // Share of available system memory one table may use (0.5 = 50%)
}

// DefaultResourceLimiterConfig returns default configuration
func DefaultResourceLimiterConfig() ResourceLimiterConfig {
	return ResourceLimiterConfig{
		MaxTableMB:            1024, // 1GB
		MemoryHeadroomPercent: 0.5,  // 50% of available memory
	}
}
