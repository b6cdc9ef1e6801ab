package procutils

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// LogicalCPUs returns the amount of logical CPUs available to the host,
// falling back to the Go runtime's view when it cannot be queried.
func LogicalCPUs() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}
