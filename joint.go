package heredity

// JointProbability returns the probability that every individual in the
// pedigree simultaneously carries exactly the gene count and expresses
// exactly the trait state the world assigns them.
//
// Founders contribute their prior. Everyone else contributes a
// Mendelian transmission term computed from their parents' gene counts
// as assigned by the same world, so no traversal order is required and
// the relation graph need not be a tree. Every individual additionally
// contributes the emission probability of their assigned trait state.
func (m Model) JointProbability(ped *Pedigree, w *World) float64 {
	probability := 1.0

	for _, name := range ped.Names {
		ind := ped.Individuals[name]
		genes := w.Genes[name]

		if ind.Founder() {
			probability *= m.GenePrior[genes]
		} else {
			// Probability that each parent passes the variant
			// allele on, given their own assigned gene count
			mother := m.transmit(w.Genes[ind.Mother])
			father := m.transmit(w.Genes[ind.Father])

			switch genes {
			case TwoCopies:
				probability *= mother * father
			case OneCopy:
				probability *= mother*(1-father) + (1-mother)*father
			default:
				probability *= (1 - mother) * (1 - father)
			}
		}

		probability *= m.emission(genes, w.Trait[name])
	}

	return probability
}
