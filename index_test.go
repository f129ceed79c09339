package transtable

import (
	"testing"

	"github.com/petrel-engine/transtable/internal/keysource"
)

func TestClusterIndexInRange(t *testing.T) {
	const count = 1009 // deliberately not a power of two
	stream := keysource.New(7)
	for _, k := range stream.NextN(5000) {
		idx := clusterIndex(k, count)
		if idx >= count {
			t.Fatalf("clusterIndex(%d, %d) = %d, out of range", k, count, idx)
		}
	}
}

func TestClusterIndexDistributionIsReasonablyUniform(t *testing.T) {
	const count = 64
	buckets := make([]int, count)
	stream := keysource.New(13)
	const n = 64000
	for _, k := range stream.NextN(n) {
		buckets[clusterIndex(k, count)]++
	}
	want := n / count
	for i, c := range buckets {
		if c < want/2 || c > want*2 {
			t.Fatalf("bucket %d got %d samples, want roughly %d", i, c, want)
		}
	}
}

func TestClusterIndexBoundaryValues(t *testing.T) {
	const count = 100
	if idx := clusterIndex(0, count); idx != 0 {
		t.Fatalf("clusterIndex(0, %d) = %d, want 0", count, idx)
	}
	if idx := clusterIndex(^uint64(0), count); idx >= count {
		t.Fatalf("clusterIndex(max, %d) = %d, out of range", count, idx)
	}
}
