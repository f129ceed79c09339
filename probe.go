package transtable

// Probe looks up key's cluster and linearly scans its ClusterSize
// entries for a signature match. On a hit it refreshes the matched
// entry's generation in place — a non-atomic byte write that at worst
// restores a stale generation on a torn concurrent write, which only
// makes the entry a slightly better replacement candidate next round —
// and returns a pointer to it plus true.
//
// On a miss it returns a pointer to the cluster's first entry and
// false; Save re-derives the actual victim itself rather than trusting
// this pointer, since another writer may have touched the cluster
// between the two calls.
//
// The returned pointer aliases live table memory and is only valid
// until the next Save or Clear touches the same cluster; it must not be
// retained across a quiescence boundary.
func (t *Table) Probe(key uint64) (entry *Entry, hit bool) {
	cluster := t.clusterFor(key)
	key16 := uint16(key >> 48)

	for i := range cluster.entry {
		e := &cluster.entry[i]
		if e.key16 == key16 {
			e.genBound8 = (t.generation & 0xF8) | (e.genBound8 & 0x07)
			return e, true
		}
	}

	return &cluster.entry[0], false
}

// rscore is lower for entries that are more attractive to evict: older
// generations and shallower depths score lower. The constant 263 is
// 256 + 7: 256 cancels generation-counter wraparound and 7 masks away
// the low three pv/bound bits before the subtraction.
func rscore(e *Entry, currentGeneration uint8) int {
	return int(e.depth8) - ((263 + int(currentGeneration) - int(e.genBound8)) & 0xF8)
}
