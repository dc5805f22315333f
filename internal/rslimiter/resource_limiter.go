package rslimiter

import (
	"fmt"

	"github.com/rs/zerolog"
)

// MemoryProbe reports the bytes of system memory available for new allocations.
type MemoryProbe func() (uint64, error)

// ResourceLimiter decides whether an allocation of a given size is safe
// before it is attempted.
type ResourceLimiter struct {
	config ResourceLimiterConfig
	probe  MemoryProbe
	logger zerolog.Logger
}

// NewResourceLimiter creates a new resource limiter. A nil probe uses gopsutil.
func NewResourceLimiter(config ResourceLimiterConfig, probe MemoryProbe, logger zerolog.Logger) *ResourceLimiter {
	if config.MemoryHeadroomPercent <= 0 || config.MemoryHeadroomPercent > 1 {
		config.MemoryHeadroomPercent = DefaultResourceLimiterConfig().MemoryHeadroomPercent
	}
	if probe == nil {
		probe = AvailableMemory
	}
	return &ResourceLimiter{
		config: config,
		probe:  probe,
		logger: logger.With().Str("component", "ResourceLimiter").Logger(),
	}
}

// LimitError reports an allocation refused by the limiter.
type LimitError struct {
	RequestedBytes uint64
	LimitBytes     uint64
	Reason         string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("allocation of %d bytes refused: %s (limit %d bytes)", e.RequestedBytes, e.Reason, e.LimitBytes)
}

// CheckAllocation returns a *LimitError when allocating bytes would exceed the
// configured table ceiling or the allowed share of available memory. A probe
// failure is logged and the memory check skipped.
func (rl *ResourceLimiter) CheckAllocation(bytes uint64) error {
	if rl.config.MaxTableMB > 0 {
		ceiling := uint64(rl.config.MaxTableMB) * 1024 * 1024
		if bytes > ceiling {
			return &LimitError{RequestedBytes: bytes, LimitBytes: ceiling, Reason: "exceeds table ceiling"}
		}
	}

	available, err := rl.probe()
	if err != nil {
		rl.logger.Warn().Err(err).Msg("Failed to read available memory, skipping memory check")
		return nil
	}

	allowed := uint64(float64(available) * rl.config.MemoryHeadroomPercent)
	if bytes > allowed {
		rl.logger.Warn().
			Uint64("requested_mb", bytes/1024/1024).
			Uint64("available_mb", available/1024/1024).
			Float64("headroom_percent", rl.config.MemoryHeadroomPercent*100).
			Msg("Allocation exceeds memory headroom")
		return &LimitError{RequestedBytes: bytes, LimitBytes: allowed, Reason: "exceeds available memory headroom"}
	}
	return nil
}
