package heredity

// GeneCount is the number of copies of the variant allele assigned to an
// individual within a candidate world.
type GeneCount uint8

const (
	ZeroCopies GeneCount = iota
	OneCopy
	TwoCopies
)

func (g GeneCount) String() string {
	switch g {
	case ZeroCopies:
		return "ZeroCopies"
	case OneCopy:
		return "OneCopy"
	case TwoCopies:
		return "TwoCopies"

	default:
		return "Illegal selection"
	}
}

// World is one joint assignment of gene count and trait expression to
// every individual in a pedigree. Tagging each individual with a single
// GeneCount keeps the zero/one/two partitions disjoint by construction.
type World struct {
	Genes map[string]GeneCount
	Trait map[string]bool
}

// buildWorld assembles a World from the enumeration state: the current
// trait assignment, the indices into names carrying one copy, and the
// indices into rest (names minus the one-copy subset) carrying two.
func buildWorld(names []string, trait map[string]bool, oneIdx []int, rest []string, twoIdx []int) *World {
	w := &World{
		Genes: make(map[string]GeneCount, len(names)),
		Trait: make(map[string]bool, len(names)),
	}

	for _, name := range names {
		w.Genes[name] = ZeroCopies
		w.Trait[name] = trait[name]
	}
	for _, i := range oneIdx {
		w.Genes[names[i]] = OneCopy
	}
	for _, i := range twoIdx {
		w.Genes[rest[i]] = TwoCopies
	}

	return w
}
