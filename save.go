package transtable

// Save writes a search result into key's cluster, choosing a victim via
// a three-phase selection: an exact signature match wins first, then any
// empty slot, then the entry with the lowest replacement score.
//
// move may be 0 to mean "no new move to record"; in that case, if the
// victim already holds this same position, its previously stored move
// is kept rather than overwritten.
func (t *Table) Save(key uint64, value int16, pv bool, bound Bound, depth int16, move Move, eval int16) {
	cluster := t.clusterFor(key)
	key16 := uint16(key >> 48)

	var replace *Entry
	matched := false

	for i := range cluster.entry {
		e := &cluster.entry[i]
		if e.key16 == key16 {
			replace = e
			matched = true
			break
		}
	}

	if replace == nil {
		for i := range cluster.entry {
			e := &cluster.entry[i]
			if isEmpty(e) {
				replace = e
				break
			}
		}
	}

	if replace == nil {
		replace = &cluster.entry[0]
		best := rscore(replace, t.generation)
		for i := 1; i < ClusterSize; i++ {
			e := &cluster.entry[i]
			if s := rscore(e, t.generation); s < best {
				replace = e
				best = s
			}
		}
	}

	if move != 0 || !matched {
		replace.move16 = move
	}

	replace.key16 = key16
	replace.value16 = value
	replace.eval16 = eval
	replace.depth8 = depthToStored(depth)
	replace.genBound8 = packGenBound(t.generation, pv, bound)
}
