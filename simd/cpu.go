package simd

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Capabilities reports which vector widths the CPU can compare 16-bit lanes
// at.
type Capabilities struct {
	// Has128 is set for SSE2 on x86-64 and Advanced SIMD on arm64.
	Has128 bool

	// Has256 is set for AVX2 (Intel Haswell, AMD Excavator and later).
	Has256 bool
}

var (
	capsOnce sync.Once
	caps     Capabilities
)

// Detect returns the CPU capabilities. They are computed on first use and
// never change afterwards, so Detect is safe to call from any goroutine.
func Detect() Capabilities {
	capsOnce.Do(func() {
		caps = detect()
	})
	return caps
}

func detect() Capabilities {
	if !cpu.Initialized {
		return Capabilities{}
	}
	return Capabilities{
		Has128: cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD,
		Has256: cpu.X86.HasAVX2,
	}
}
