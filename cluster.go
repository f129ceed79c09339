package transtable

// clusterSize is the padded byte size of one Cluster: ClusterSize entries
// of entrySize bytes each, rounded up to a 32-byte cache-sub-line boundary.
const clusterSize = ClusterSize*entrySize + 2

// Cluster is ClusterSize entries sharing one allocation unit, plus two
// padding bytes so the whole thing lands on a 32-byte boundary. A probe
// or save touches exactly one cluster and therefore exactly one cache
// line's worth of memory.
type Cluster struct {
	entry [ClusterSize]Entry
	_     [2]byte
}
