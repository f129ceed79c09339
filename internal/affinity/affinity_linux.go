//go:build linux

// Package affinity pins the calling goroutine's OS thread to a single
// CPU core, used when clearing or benchmarking the table so that each
// worker first-touches the memory it will keep using.
package affinity

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Available reports whether CPU pinning is supported on this platform.
const Available = true

// Pin locks the calling goroutine to its current OS thread and restricts
// that thread to cpu. It must be called from the goroutine that should
// be pinned; Go's scheduler gives no way to pin a thread out from
// under a goroutine running on it.
func Pin(cpu int) error {
	runtime.LockOSThread()
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu % runtime.NumCPU())
	return unix.SchedSetaffinity(0, &set)
}
