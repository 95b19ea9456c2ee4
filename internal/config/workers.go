package config

import "runtime"

// Worker count resolution chain (highest priority first):
//   1. --workers flag
//   2. PARSUM_WORKERS
//   3. Hardware estimate (this file)

// ApplyAdaptiveWorkers fills in the worker count from the hardware estimate
// when it is still zero, preserving any explicit choice.
func ApplyAdaptiveWorkers(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateOptimalWorkers()
	}
	return cfg
}

// EstimateOptimalWorkers provides a heuristic worker count without running
// benchmarks. It follows GOMAXPROCS up to eight, grows at half rate up to 32
// and is capped at 20 beyond that.
func EstimateOptimalWorkers() int {
	procs := min(runtime.GOMAXPROCS(0), runtime.NumCPU())

	switch {
	case procs <= 1:
		return 1
	case procs <= 8:
		return procs
	case procs <= 32:
		return 8 + (procs-8)/2
	default:
		return 20
	}
}
