package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// DefaultWorkers returns the number of physical cores, falling back to the
// logical CPU count when the platform does not report it.
func DefaultWorkers() int {
	n, err := cpu.Counts(false)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}
