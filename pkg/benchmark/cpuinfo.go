package benchmark

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

// CPUReport summarizes the SIMD-relevant CPU features available on the
// host running the benchmark. The tokenizer itself is a scalar byte-by-byte
// state machine, so these flags are informational only: they tell a reader
// of bench output what ceiling a SIMD-accelerated tokenizer could reach on
// this hardware, without this repository attempting to hit it.
type CPUReport struct {
	BrandName string
	VendorID  string

	HasAVX2    bool
	HasAVX512F bool
	HasSSE42   bool
}

// ReportCPU gathers CPU feature flags from two independent detectors:
// cpuid.CPU (brand/vendor string and feature table) and golang.org/x/sys/cpu
// (the runtime's own X86/ARM64 feature structs). AVX2 is reported when
// either detector sees it; AVX512F and SSE4.2 come from cpuid alone.
func ReportCPU() CPUReport {
	r := CPUReport{
		BrandName: cpuid.CPU.BrandName,
		VendorID:  cpuid.CPU.VendorID.String(),

		HasAVX2:    cpuid.CPU.Supports(cpuid.AVX2),
		HasAVX512F: cpuid.CPU.Supports(cpuid.AVX512F),
		HasSSE42:   cpuid.CPU.Supports(cpuid.SSE42),
	}

	if !r.HasAVX2 {
		r.HasAVX2 = cpu.X86.HasAVX2
	}

	return r
}

// String renders the report as plain text: a CPU brand/vendor line followed
// by one indented line holding all feature flags.
func (r CPUReport) String() string {
	return fmt.Sprintf("CPU: %s (%s)\n  AVX2: %v  AVX512F: %v  SSE4.2: %v",
		r.BrandName, r.VendorID, r.HasAVX2, r.HasAVX512F, r.HasSSE42)
}
