package heredity

import (
	"runtime"
	"sync"

	"github.com/carbocation/pfx"
)

// InferParallel computes the same posteriors as Infer, sharding the
// enumeration across workers by trait subset. Each worker owns a
// private accumulator and enumerates the gene partitions for the trait
// subsets it receives; the partial sums are merged once every worker
// has finished. Floating-point addition order differs from Infer, so
// results agree to within rounding rather than bit-for-bit.
//
// workers < 1 means one worker per CPU.
func InferParallel(ped *Pedigree, m Model, workers int) (Results, error) {
	if err := m.Validate(); err != nil {
		return nil, pfx.Err(err)
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	traits := make(chan map[string]bool)
	partials := make(chan Results)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc := newResults(ped)
			for trait := range traits {
				accumulateGenePartitions(ped, m, trait, acc)
			}
			partials <- acc
		}()
	}

	// Produce the evidence-consistent trait subsets
	go func() {
		cur := newSubsetCursor(len(ped.Names))
		for cur.next() {
			assignment := make(map[string]bool, len(cur.idx))
			for _, i := range cur.idx {
				assignment[ped.Names[i]] = true
			}
			if consistentWithEvidence(ped, assignment) {
				traits <- assignment
			}
		}
		close(traits)
	}()

	go func() {
		wg.Wait()
		close(partials)
	}()

	results := newResults(ped)
	for acc := range partials {
		results.merge(acc)
	}

	if err := results.normalize(); err != nil {
		return nil, err
	}

	return results, nil
}

// accumulateGenePartitions folds every gene partition under one fixed
// trait assignment into the accumulator.
func accumulateGenePartitions(ped *Pedigree, m Model, trait map[string]bool, acc Results) {
	names := ped.Names
	rest := make([]string, 0, len(names))

	one := newSubsetCursor(len(names))
	for one.next() {
		rest = rest[:0]
		j := 0
		for i, name := range names {
			if j < len(one.idx) && one.idx[j] == i {
				j++
				continue
			}
			rest = append(rest, name)
		}

		two := newSubsetCursor(len(rest))
		for two.next() {
			w := buildWorld(names, trait, one.idx, rest, two.idx)
			acc.add(w, m.JointProbability(ped, w))
		}
	}
}
