// Package sysmon provides host CPU and memory sampling and CPU feature
// detection for the verbose execution header.
package sysmon

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// Stats is a system-wide load reading, in percent.
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// Sample reads current CPU and memory utilisation. CPU is measured since the
// previous call (interval 0), so the first reading in a process may be 0.
// Fields that cannot be read stay zero.
func Sample(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
	}
	return s
}

// HostInfo describes the machine the reduction runs on.
type HostInfo struct {
	LogicalCPUs  int
	PhysicalCPUs int
	GOMAXPROCS   int
	ModelName    string
	Features     []string
	Load         Stats
}

// Host gathers HostInfo including a load Sample. Fields that gopsutil cannot
// read fall back to runtime values or stay empty.
func Host(ctx context.Context) HostInfo {
	info := HostInfo{
		LogicalCPUs: runtime.NumCPU(),
		GOMAXPROCS:  runtime.GOMAXPROCS(0),
		Features:    Features(),
		Load:        Sample(ctx),
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		info.LogicalCPUs = n
	}
	if n, err := cpu.CountsWithContext(ctx, false); err == nil && n > 0 {
		info.PhysicalCPUs = n
	}
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 {
		info.ModelName = infos[0].ModelName
	}
	return info
}

// Features lists the SIMD extensions detected on this CPU.
func Features() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(xcpu.X86.HasSSE42, "sse4.2")
		add(xcpu.X86.HasAVX, "avx")
		add(xcpu.X86.HasAVX2, "avx2")
		add(xcpu.X86.HasAVX512F, "avx512f")
		add(xcpu.X86.HasBMI2, "bmi2")
	case "arm64":
		add(xcpu.ARM64.HasASIMD, "asimd")
		add(xcpu.ARM64.HasSVE, "sve")
		add(xcpu.ARM64.HasATOMICS, "atomics")
	}
	return out
}
