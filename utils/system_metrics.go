package utils

import (
	"log"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// StartSystemMetrics samples CPU and memory usage into the prometheus
// gauges on the given interval. Runs until the process exits.
func StartSystemMetrics(interval time.Duration) {
	go func() {
		for {
			if percentages, err := cpu.Percent(time.Second, false); err != nil {
				log.Printf("Error getting CPU usage: %v", err)
			} else if len(percentages) > 0 {
				SystemCPUUsage.Set(percentages[0])
			}

			if vm, err := mem.VirtualMemory(); err != nil {
				log.Printf("Error getting memory usage: %v", err)
			} else {
				SystemMemoryUsage.Set(vm.UsedPercent)
			}

			time.Sleep(interval)
		}
	}()
}
