//go:build !linux

package affinity

// Available reports whether CPU pinning is supported on this platform.
const Available = false

// Pin is a no-op outside Linux: there is no portable affinity API, so
// callers fall back to letting the OS scheduler place the goroutine.
func Pin(cpu int) error { return nil }
