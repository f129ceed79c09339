//go:build !linux

package transtable

import "fmt"

// allocClusters falls back to a plain Go allocation on platforms without
// a huge-page API. The slice is still contiguous and cache-line sized
// per cluster; it just isn't huge-page backed.
func allocClusters(count uint64) (mem []byte, clusters []Cluster, err error) {
	if count == 0 {
		return nil, nil, fmt.Errorf("zero-sized allocation requested")
	}
	clusters = make([]Cluster, count)
	return nil, clusters, nil
}

func freeClusters(mem []byte) {}
