package transtable

import (
	"fmt"
	"runtime"

	"github.com/petrel-engine/transtable/internal/diag"
)

// Config controls allocation and parallelism. All fields are optional;
// the zero value is usable but Threads will default to runtime.NumCPU().
type Config struct {
	// Threads bounds how many goroutines Clear uses to zero the backing
	// array. Zero means runtime.NumCPU(), mirroring the UCI-less default
	// the original engine falls back to when no thread count is configured.
	Threads int

	// clusterCountOverride lets tests request an exact cluster count
	// instead of deriving one from a megabyte budget.
	clusterCountOverride uint64
}

// Table is a fixed-capacity, lock-free transposition table. The zero
// value is an empty table; call Resize before probing or saving into it.
type Table struct {
	clusters   []Cluster
	mem        []byte
	generation uint8
	cfg        Config
}

// New returns an empty table sized to mb megabytes.
func New(mb int, cfg Config) *Table {
	t := &Table{cfg: cfg}
	if cfg.Threads == 0 {
		t.cfg.Threads = runtime.NumCPU()
	}
	if err := t.Resize(mb); err != nil {
		diag.Fatal("TT", err)
	}
	return t
}

// Resize frees the current allocation and replaces it with one sized to
// hold mb megabytes worth of clusters, then clears it. mb values too
// small to produce even one cluster are rejected with an error rather
// than silently rounding up to one, so callers validating configuration
// input can surface the mistake before it becomes a fatal allocation
// failure.
func (t *Table) Resize(mb int) error {
	var count uint64
	if t.cfg.clusterCountOverride != 0 {
		count = t.cfg.clusterCountOverride
	} else {
		if mb < 1 {
			return fmt.Errorf("transtable: %d MB is too small to hold a single cluster", mb)
		}
		count = uint64(mb) * 1024 * 1024 / clusterSize
		if count == 0 {
			return fmt.Errorf("transtable: %d MB is too small to hold a single cluster", mb)
		}
	}

	t.free()

	mem, clusters, err := allocClusters(count)
	if err != nil {
		diag.Fatal("TT", fmt.Errorf("failed to allocate %d MB for transposition table: %w", mb, err))
	}
	t.mem = mem
	t.clusters = clusters
	t.Clear()
	return nil
}

func (t *Table) free() {
	if t.mem != nil {
		freeClusters(t.mem)
		t.mem = nil
	}
	t.clusters = nil
}

// Clear zeroes every cluster, splitting the work into Config.Threads
// contiguous shards, the last of which also takes the remainder. With
// more than eight goroutines each is pinned to its own CPU so that on a
// NUMA machine every shard is first-touched by the thread that will keep
// using it. Callers must have quiesced all concurrent probers and savers
// first.
func (t *Table) Clear() {
	if len(t.clusters) == 0 {
		return
	}
	threads := t.cfg.Threads
	if threads <= 0 {
		threads = 1
	}
	if threads > len(t.clusters) {
		threads = len(t.clusters)
	}

	chunk := len(t.clusters) / threads
	done := make(chan struct{}, threads)
	for i := 0; i < threads; i++ {
		lo := i * chunk
		hi := lo + chunk
		if i == threads-1 {
			hi = len(t.clusters)
		}
		if lo >= hi {
			done <- struct{}{}
			continue
		}
		go func(idx, lo, hi int) {
			pinIfManyThreads(idx, threads)
			zero := Cluster{}
			shard := t.clusters[lo:hi]
			for i := range shard {
				shard[i] = zero
			}
			done <- struct{}{}
		}(i, lo, hi)
	}
	for i := 0; i < threads; i++ {
		<-done
	}
}

// pinIfManyThreads mirrors the original engine's "only bind worker
// threads to cores once there are more of them than a single socket's
// worth" heuristic.
func pinIfManyThreads(idx, threads int) {
	if threads > 8 {
		pinThisGoroutine(idx)
	}
}

// NewSearch advances the generation counter, making every entry written
// before this call look one tick older to the replacement policy. Callers
// must have quiesced all concurrent probers and savers first.
func (t *Table) NewSearch() {
	t.generation += 8
}

// Generation returns the table's current generation tick.
func (t *Table) Generation() uint8 { return t.generation }

// ClusterCount returns the number of clusters currently allocated.
func (t *Table) ClusterCount() int { return len(t.clusters) }

// Hashfull estimates, in permille, how full the table is by sampling the
// first 1000 clusters (or all of them, if fewer) and counting entries
// that belong to the current generation and carry a usable bound. It is
// an approximation, not a census.
func (t *Table) Hashfull() int {
	if len(t.clusters) == 0 {
		return 0
	}
	sample := 1000
	if sample > len(t.clusters) {
		sample = len(t.clusters)
	}
	filled := 0
	for c := 0; c < sample; c++ {
		for e := 0; e < ClusterSize; e++ {
			entry := &t.clusters[c].entry[e]
			if entryGeneration(entry.genBound8) == t.generation && entryBound(entry.genBound8) != BoundNone {
				filled++
			}
		}
	}
	return filled / ClusterSize
}

// clusterFor returns the cluster that owns key, the one addressing
// primitive shared by Probe, Save and FirstEntry.
func (t *Table) clusterFor(key uint64) *Cluster {
	idx := clusterIndex(key, uint64(len(t.clusters)))
	return &t.clusters[idx]
}

// FirstEntry returns a pointer to the first of the ClusterSize entries
// that key addresses, without performing any signature matching. It
// exists mainly for diagnostics and tests that want to inspect a
// cluster's raw contents.
func (t *Table) FirstEntry(key uint64) *Entry {
	return &t.clusterFor(key).entry[0]
}
