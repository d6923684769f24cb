package heredity

// WorldReader enumerates every candidate world consistent with the
// pedigree's observed evidence, each exactly once, in a deterministic
// order: trait subsets outermost, then one-copy subsets, then two-copy
// subsets drawn from the remaining names so that the gene partitions
// are disjoint by construction. Trait subsets contradicting an observed
// phenotype are filtered out entirely rather than down-weighted.
type WorldReader struct {
	WorldsSeen int

	ped   *Pedigree
	names []string

	trait *subsetCursor
	one   *subsetCursor
	two   *subsetCursor

	curTrait map[string]bool
	rest     []string

	started bool
	done    bool
}

// NewWorldReader prepares an enumeration over the pedigree. An empty
// pedigree yields exactly one world with no assignments.
func (p *Pedigree) NewWorldReader() *WorldReader {
	return &WorldReader{
		ped:   p,
		names: p.Names,
		rest:  make([]string, 0, len(p.Names)),
	}
}

// Read returns the next candidate world, or nil when the enumeration is
// exhausted.
func (wr *WorldReader) Read() *World {
	if wr.done {
		return nil
	}

	if !wr.started {
		wr.started = true
		if !wr.advanceTrait() {
			wr.done = true
			return nil
		}
	} else if !wr.advanceTwo() && !wr.advanceOne() && !wr.advanceTrait() {
		wr.done = true
		return nil
	}

	wr.WorldsSeen++
	return buildWorld(wr.names, wr.curTrait, wr.one.idx, wr.rest, wr.two.idx)
}

// advanceTrait moves to the next trait subset consistent with the
// observed evidence and restarts the gene cursors beneath it.
func (wr *WorldReader) advanceTrait() bool {
	if wr.trait == nil {
		wr.trait = newSubsetCursor(len(wr.names))
	}

	for wr.trait.next() {
		assignment := make(map[string]bool, len(wr.trait.idx))
		for _, i := range wr.trait.idx {
			assignment[wr.names[i]] = true
		}
		if !consistentWithEvidence(wr.ped, assignment) {
			continue
		}

		wr.curTrait = assignment
		wr.one = newSubsetCursor(len(wr.names))
		wr.one.next()
		wr.rebuildRest()
		wr.two = newSubsetCursor(len(wr.rest))
		wr.two.next()
		return true
	}

	return false
}

// advanceOne moves to the next one-copy subset and restarts the
// two-copy cursor over the names it leaves available.
func (wr *WorldReader) advanceOne() bool {
	if !wr.one.next() {
		return false
	}
	wr.rebuildRest()
	wr.two = newSubsetCursor(len(wr.rest))
	wr.two.next()
	return true
}

func (wr *WorldReader) advanceTwo() bool {
	return wr.two.next()
}

// rebuildRest recomputes the pool of names eligible for two copies:
// everyone not currently assigned one copy.
func (wr *WorldReader) rebuildRest() {
	wr.rest = wr.rest[:0]
	j := 0
	for i, name := range wr.names {
		if j < len(wr.one.idx) && wr.one.idx[j] == i {
			j++
			continue
		}
		wr.rest = append(wr.rest, name)
	}
}

// consistentWithEvidence reports whether a trait assignment agrees with
// every observed phenotype in the pedigree. Absence from the map means
// the individual does not express the trait.
func consistentWithEvidence(ped *Pedigree, trait map[string]bool) bool {
	for name, ind := range ped.Individuals {
		if ind.Trait != nil && *ind.Trait != trait[name] {
			return false
		}
	}
	return true
}
