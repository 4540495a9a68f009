// benchmark.go
// A reusable benchmarking module for RNA Lab
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Usage is what one benchmarked run consumed.
type Usage struct {
	Elapsed         time.Duration
	AllocDelta      int64
	TotalAllocated  uint64
	HeapAlloc       uint64
	GCCycles        uint32
	GoroutinesStart int
	GoroutinesEnd   int
}

// Measure runs f and records its resource usage.
func Measure(f func()) Usage {
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	startGoroutines := runtime.NumGoroutine()
	start := time.Now()

	f()

	elapsed := time.Since(start)
	runtime.ReadMemStats(&memEnd)
	return Usage{
		Elapsed:         elapsed,
		AllocDelta:      int64(memEnd.Alloc) - int64(memStart.Alloc),
		TotalAllocated:  memEnd.TotalAlloc - memStart.TotalAlloc,
		HeapAlloc:       memEnd.HeapAlloc,
		GCCycles:        memEnd.NumGC - memStart.NumGC,
		GoroutinesStart: startGoroutines,
		GoroutinesEnd:   runtime.NumGoroutine(),
	}
}

func mb(n float64) float64 { return n / 1024.0 / 1024.0 }

// Report prints the usage in the "[Benchmark]" line format.
func (u Usage) Report(w io.Writer) {
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", u.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", mb(float64(u.AllocDelta)))
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", mb(float64(u.TotalAllocated)))
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", mb(float64(u.HeapAlloc)))
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", u.GCCycles)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "[Benchmark] Goroutines: %d → %d\n", u.GoroutinesStart, u.GoroutinesEnd)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}

// Run wraps any tool run to measure its runtime and memory usage. The
// report goes to stderr so it never mixes with tool output on stdout.
func Run(label string, f func()) {
	w := os.Stderr
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	Measure(f).Report(w)
}
