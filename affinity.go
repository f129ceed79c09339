package transtable

import "github.com/petrel-engine/transtable/internal/affinity"

// pinThisGoroutine asks the platform affinity layer to bind the calling
// goroutine to cpu. Clear's zeroing workers call this on themselves so
// that on NUMA hardware each shard is first-touched by the thread that
// owns it. Failure is non-fatal: an unpinned clear is still correct.
func pinThisGoroutine(cpu int) {
	_ = affinity.Pin(cpu)
}
