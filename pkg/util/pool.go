package util

import "runtime"

// OptimalPoolSize returns the worker count for CPU-bound parallel work:
// 2x cores, clamped to [4, 32]. The 2x factor keeps cores busy while
// goroutines sit in CGO calls; the cap bounds parser memory on large hosts.
func OptimalPoolSize() int {
	size := runtime.NumCPU() * 2
	if size < 4 {
		size = 4
	}
	if size > 32 {
		size = 32
	}
	return size
}

// PoolSize returns override when positive, otherwise OptimalPoolSize().
func PoolSize(override int) int {
	if override > 0 {
		return override
	}
	return OptimalPoolSize()
}
