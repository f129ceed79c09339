//go:build linux

package transtable

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// allocClusters maps count clusters worth of anonymous memory and asks
// the kernel to back it with transparent huge pages. Huge pages cut TLB
// pressure on a table that is scanned essentially at random across many
// gigabytes, the same reasoning the original engine's aligned allocator
// uses when it requests 2MB-aligned memory on Linux.
func allocClusters(count uint64) (mem []byte, clusters []Cluster, err error) {
	size := count * clusterSize
	if size == 0 {
		return nil, nil, fmt.Errorf("zero-sized allocation requested")
	}
	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap: %w", err)
	}
	_ = unix.Madvise(b, unix.MADV_HUGEPAGE) // best-effort; absence of THP is not an error

	clusters = unsafe.Slice((*Cluster)(unsafe.Pointer(&b[0])), count)
	return b, clusters, nil
}

func freeClusters(mem []byte) {
	_ = unix.Munmap(mem)
}
