package heredity

// subsetCursor walks the power set of {0, ..., n-1}, ordered by subset
// size and then lexically by member index. This matches the order in
// which subsets are considered during enumeration, so runs are
// reproducible.
type subsetCursor struct {
	n    int
	k    int
	idx  []int
	done bool
}

func newSubsetCursor(n int) *subsetCursor {
	return &subsetCursor{n: n, k: -1, idx: make([]int, 0, n)}
}

// next advances the cursor. It returns false once every subset has been
// produced; until then, the current subset's member indices are in idx.
func (c *subsetCursor) next() bool {
	if c.done {
		return false
	}

	// The empty subset comes first
	if c.k < 0 {
		c.k = 0
		c.idx = c.idx[:0]
		return true
	}

	// Advance the current k-combination lexically
	for i := c.k - 1; i >= 0; i-- {
		if c.idx[i] < c.n-(c.k-i) {
			c.idx[i]++
			for j := i + 1; j < c.k; j++ {
				c.idx[j] = c.idx[j-1] + 1
			}
			return true
		}
	}

	// Exhausted: move on to subsets one element larger
	c.k++
	if c.k > c.n {
		c.done = true
		return false
	}
	c.idx = c.idx[:0]
	for i := 0; i < c.k; i++ {
		c.idx = append(c.idx, i)
	}

	return true
}
