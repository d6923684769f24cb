package heredity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// Individual is one record from a pedigree file. Mother and Father hold
// the names of other individuals in the same pedigree and must be both
// set or both empty. Trait is nil when the phenotype was not observed.
type Individual struct {
	Name   string
	Mother string
	Father string
	Trait  *bool
}

// Founder reports whether the individual has no recorded parents, in
// which case its genotype is governed by the unconditional prior.
func (ind Individual) Founder() bool {
	return ind.Mother == "" && ind.Father == ""
}

// Pedigree is the main object used for inference. It owns every
// individual in one name-keyed map and remembers file order so that
// results can be reported in the order individuals were listed.
type Pedigree struct {
	FilePath    string
	Names       []string
	Individuals map[string]Individual
}

// Observed is a convenience for building Individual literals with a
// known trait value.
func Observed(v bool) *bool {
	return &v
}

// Open attempts to read a pedigree file located at path, decompressing
// it if the file name indicates compression. If successful, this
// returns a new Pedigree object. Otherwise, it returns an error.
func Open(path string) (*Pedigree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r, err := decompressionReader(f, DetectCompression(path))
	if err != nil {
		return nil, pfx.Err(err)
	}

	ped, err := ReadPedigree(r)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	ped.FilePath = path

	return ped, nil
}

// ReadPedigree parses CSV data whose header names the fields name,
// mother, father, and trait. The trait column holds "1" for an
// individual observed to express the trait, "0" for one observed not
// to, and is left empty when the phenotype is unknown.
func ReadPedigree(r io.Reader) (*Pedigree, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("reading pedigree header: %w", err))
	}

	col := make(map[string]int, len(header))
	for i, field := range header {
		col[strings.ToLower(strings.TrimSpace(field))] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, ok := col[required]; !ok {
			return nil, pfx.Err(fmt.Errorf("pedigree header is missing the %q column", required))
		}
	}

	var individuals []Individual
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		ind := Individual{
			Name:   strings.TrimSpace(record[col["name"]]),
			Mother: strings.TrimSpace(record[col["mother"]]),
			Father: strings.TrimSpace(record[col["father"]]),
		}

		switch marker := strings.TrimSpace(record[col["trait"]]); marker {
		case "1":
			ind.Trait = Observed(true)
		case "0":
			ind.Trait = Observed(false)
		case "":
			// Unknown phenotype
		default:
			return nil, pfx.Err(fmt.Errorf("line %d: trait must be 1, 0, or empty; got %q", line, marker))
		}

		individuals = append(individuals, ind)
	}

	return NewPedigree(individuals)
}

// NewPedigree validates the individuals and assembles them into a
// Pedigree, preserving their order. Validation failures are surfaced
// here, before any inference can run: an empty or duplicated name, a
// record with exactly one parent, or a parent reference to a name not
// present in the pedigree all refuse the whole input.
func NewPedigree(individuals []Individual) (*Pedigree, error) {
	ped := &Pedigree{
		Individuals: make(map[string]Individual, len(individuals)),
	}

	for _, ind := range individuals {
		if ind.Name == "" {
			return nil, pfx.Err(fmt.Errorf("pedigree contains an individual with an empty name"))
		}
		if _, dup := ped.Individuals[ind.Name]; dup {
			return nil, pfx.Err(fmt.Errorf("individual %q is listed more than once", ind.Name))
		}
		ped.Individuals[ind.Name] = ind
		ped.Names = append(ped.Names, ind.Name)
	}

	for _, ind := range individuals {
		if (ind.Mother == "") != (ind.Father == "") {
			return nil, pfx.Err(fmt.Errorf("individual %q must have both parents recorded or neither", ind.Name))
		}
		for _, parent := range []string{ind.Mother, ind.Father} {
			if parent == "" {
				continue
			}
			if _, ok := ped.Individuals[parent]; !ok {
				return nil, pfx.Err(fmt.Errorf("individual %q references unknown parent %q", ind.Name, parent))
			}
		}
	}

	return ped, nil
}
