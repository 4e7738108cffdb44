// Package sysinfo collects best-effort host and process figures for the stats
// endpoint.
package sysinfo

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// CPUUsage is the CPU time consumed by this process, in seconds.
type CPUUsage struct {
	UserTime       float64 `json:"userTime"`
	PrivilegedTime float64 `json:"privilegedTime"`
	TotalTime      float64 `json:"totalTime"`
}

// Stats is a point-in-time view of the execution environment. Fields that
// could not be read are left zero.
type Stats struct {
	CPUUsage         CPUUsage
	ProcessorCount   int
	OSVersion        string
	MemoryTotalBytes uint64
	WorkingSetBytes  uint64
}

// Provider returns environment statistics.
type Provider interface {
	Collect(ctx context.Context) Stats
}

// Host reads statistics from the local machine and the current process.
type Host struct {
	pid int32
}

// NewHost creates a provider for the running process.
func NewHost() *Host {
	return &Host{pid: int32(os.Getpid())}
}

// Collect gathers the figures; individual failures are swallowed.
func (h *Host) Collect(ctx context.Context) Stats {
	st := Stats{
		ProcessorCount: runtime.NumCPU(),
		OSVersion:      runtime.GOOS,
	}

	if info, err := host.InfoWithContext(ctx); err == nil {
		st.OSVersion = osVersion(info)
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		st.MemoryTotalBytes = vm.Total
	}

	p, err := process.NewProcessWithContext(ctx, h.pid)
	if err != nil {
		return st
	}
	if times, err := p.TimesWithContext(ctx); err == nil {
		st.CPUUsage = CPUUsage{
			UserTime:       times.User,
			PrivilegedTime: times.System,
			TotalTime:      times.User + times.System,
		}
	}
	if mi, err := p.MemoryInfoWithContext(ctx); err == nil {
		st.WorkingSetBytes = mi.RSS
	}
	return st
}

func osVersion(info *host.InfoStat) string {
	parts := []string{info.OS}
	if info.Platform != "" {
		parts = append(parts, info.Platform)
	}
	if info.PlatformVersion != "" {
		parts = append(parts, info.PlatformVersion)
	}
	if info.KernelVersion != "" {
		parts = append(parts, "kernel "+info.KernelVersion)
	}
	return strings.Join(parts, " ")
}

// Static returns fixed statistics. It is useful in tests.
type Static Stats

// Collect returns s unchanged.
func (s Static) Collect(context.Context) Stats {
	return Stats(s)
}
