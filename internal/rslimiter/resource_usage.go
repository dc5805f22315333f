package rslimiter

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
)

// ResourceUsage represents current system resource usage
type ResourceUsage struct {
	AllocMB              int64   // Currently allocated memory by application
	SysMB                int64   // System memory used by Go runtime
	SystemMemAvailableMB int64   // System memory available for new allocations (MB)
	SystemMemTotalMB     int64   // Total system memory (MB)
	SystemMemUsedPercent float64 // System memory used percentage
}

// GetResourceUsage returns current resource usage statistics
func GetResourceUsage() ResourceUsage {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	usage := ResourceUsage{
		AllocMB: int64(m.Alloc / 1024 / 1024),
		SysMB:   int64(m.Sys / 1024 / 1024),
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		usage.SystemMemAvailableMB = int64(vmStat.Available / 1024 / 1024)
		usage.SystemMemTotalMB = int64(vmStat.Total / 1024 / 1024)
		usage.SystemMemUsedPercent = vmStat.UsedPercent
	}

	return usage
}

// AvailableMemory returns the bytes of system memory available for new allocations.
func AvailableMemory() (uint64, error) {
	vmStat, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vmStat.Available, nil
}
