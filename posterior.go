package heredity

import (
	"errors"
	"fmt"

	"github.com/carbocation/pfx"
)

// ErrNoConsistentWorld is returned when the observed evidence admits no
// candidate world at all, which would otherwise surface as a division
// by zero during normalization.
var ErrNoConsistentWorld = errors.New("no world is consistent with the observed evidence")

// Posterior holds one individual's marginal distributions. GeneCounts
// is indexed by copy number. Trait[0] is the mass on not expressing the
// trait and Trait[1] the mass on expressing it.
type Posterior struct {
	GeneCounts [3]float64
	Trait      [2]float64
}

// Results maps each individual's name to its posterior distributions.
type Results map[string]*Posterior

func newResults(ped *Pedigree) Results {
	r := make(Results, len(ped.Names))
	for _, name := range ped.Names {
		r[name] = &Posterior{}
	}
	return r
}

// add folds one world's joint probability into the marginal sums. It
// must be called exactly once per consistent world; the marginals are
// literally sums of joint probabilities over worlds.
func (r Results) add(w *World, p float64) {
	for name, post := range r {
		post.GeneCounts[w.Genes[name]] += p
		if w.Trait[name] {
			post.Trait[1] += p
		} else {
			post.Trait[0] += p
		}
	}
}

// merge sums another accumulator into this one. Accumulation is
// commutative and associative, so partial sums from parallel workers
// can be combined in any order.
func (r Results) merge(other Results) {
	for name, post := range other {
		mine := r[name]
		for i, v := range post.GeneCounts {
			mine.GeneCounts[i] += v
		}
		for i, v := range post.Trait {
			mine.Trait[i] += v
		}
	}
}

// normalize rescales each distribution by its own total mass so it sums
// to 1. A zero total means the evidence admitted no world; that is
// reported as ErrNoConsistentWorld rather than propagated as NaN.
func (r Results) normalize() error {
	for name, post := range r {
		geneSum := post.GeneCounts[0] + post.GeneCounts[1] + post.GeneCounts[2]
		traitSum := post.Trait[0] + post.Trait[1]
		if geneSum <= 0 || traitSum <= 0 {
			return fmt.Errorf("%w: individual %q accumulated no probability mass", ErrNoConsistentWorld, name)
		}

		for i := range post.GeneCounts {
			post.GeneCounts[i] /= geneSum
		}
		post.Trait[0] /= traitSum
		post.Trait[1] /= traitSum
	}

	return nil
}

// Infer computes the posterior gene-count and trait distributions for
// every individual by enumerating all candidate worlds consistent with
// the pedigree's evidence, weighting each by its joint probability
// under the model, and normalizing the accumulated marginals.
func Infer(ped *Pedigree, m Model) (Results, error) {
	if err := m.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	results := newResults(ped)
	wr := ped.NewWorldReader()
	for w := wr.Read(); w != nil; w = wr.Read() {
		results.add(w, m.JointProbability(ped, w))
	}

	if err := results.normalize(); err != nil {
		return nil, err
	}

	return results, nil
}
