package heredity

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// Model holds the probability tables of the causal model: unconditional
// genotype priors for founders, the genotype→phenotype emission table,
// and the per-allele mutation rate. Models are immutable values passed
// into inference, so tests can substitute alternate parameters without
// process-wide side effects.
type Model struct {
	// GenePrior[n] is the probability that a founder carries n copies
	// of the variant allele.
	GenePrior [3]float64

	// TraitProb[n] is the probability that an individual carrying n
	// copies expresses the trait. The complement covers the
	// trait-absent case.
	TraitProb [3]float64

	// Mutation is the probability that a transmitted allele flips
	// identity during inheritance.
	Mutation float64
}

// DefaultModel returns the reference parameters.
func DefaultModel() Model {
	return Model{
		GenePrior: [3]float64{0.96, 0.03, 0.01},
		TraitProb: [3]float64{0.01, 0.56, 0.65},
		Mutation:  0.01,
	}
}

// Validate confirms that the tables describe proper probabilities.
func (m Model) Validate() error {
	sum := 0.0
	for n, p := range m.GenePrior {
		if p < 0 || p > 1 {
			return pfx.Err(fmt.Errorf("gene prior for %d copies is %f; must be within [0,1]", n, p))
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		return pfx.Err(fmt.Errorf("gene priors sum to %f; must sum to 1", sum))
	}

	for n, p := range m.TraitProb {
		if p < 0 || p > 1 {
			return pfx.Err(fmt.Errorf("trait probability for %d copies is %f; must be within [0,1]", n, p))
		}
	}
	if m.Mutation < 0 || m.Mutation > 1 {
		return pfx.Err(fmt.Errorf("mutation rate is %f; must be within [0,1]", m.Mutation))
	}

	return nil
}

// transmit is the probability that a parent carrying n copies passes the
// variant allele to a child, accounting for mutation.
func (m Model) transmit(n GeneCount) float64 {
	switch n {
	case TwoCopies:
		return 1 - m.Mutation
	case OneCopy:
		return 0.5
	}
	return m.Mutation
}

// emission is the probability of the observed trait state given n copies.
func (m Model) emission(n GeneCount, trait bool) float64 {
	if trait {
		return m.TraitProb[n]
	}
	return 1 - m.TraitProb[n]
}
