package heredity

import (
	"errors"
	"math"
	"testing"
)

func familyPedigree(t *testing.T) *Pedigree {
	t.Helper()
	return mustPedigree(t, []Individual{
		{Name: "Harry", Mother: "Lily", Father: "James"},
		{Name: "James", Trait: Observed(true)},
		{Name: "Lily", Trait: Observed(false)},
	})
}

func TestInferSingleFounderWithTrait(t *testing.T) {
	ped := mustPedigree(t, []Individual{
		{Name: "A", Trait: Observed(true)},
	})

	results, err := Infer(ped, DefaultModel())
	if err != nil {
		t.Fatal(err)
	}

	// Unnormalized masses are prior * emission for each copy count:
	// {2: 0.0065, 1: 0.0168, 0: 0.0096}, total 0.0329
	total := 0.0065 + 0.0168 + 0.0096
	expected := [3]float64{0.0096 / total, 0.0168 / total, 0.0065 / total}

	post := results["A"]
	for n, want := range expected {
		if math.Abs(post.GeneCounts[n]-want) > 1e-9 {
			t.Errorf("P(genes=%d) = %.6f, expected %.6f", n, post.GeneCounts[n], want)
		}
	}

	// The trait is fixed evidence for the only individual
	if post.Trait[1] != 1 || post.Trait[0] != 0 {
		t.Errorf("trait distribution = %v, expected exactly {true:1, false:0}", post.Trait)
	}
}

func TestInferDistributionsSumToOne(t *testing.T) {
	ped := familyPedigree(t)

	results, err := Infer(ped, DefaultModel())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range ped.Names {
		post := results[name]
		geneSum := post.GeneCounts[0] + post.GeneCounts[1] + post.GeneCounts[2]
		traitSum := post.Trait[0] + post.Trait[1]
		if math.Abs(geneSum-1) > 1e-9 {
			t.Errorf("%s: gene distribution sums to %.12f", name, geneSum)
		}
		if math.Abs(traitSum-1) > 1e-9 {
			t.Errorf("%s: trait distribution sums to %.12f", name, traitSum)
		}
	}

	// Observed phenotypes are hard evidence, so those trait posteriors
	// collapse exactly
	if post := results["James"]; post.Trait[1] != 1 {
		t.Errorf("James is observed to express the trait, but P(trait) = %.6f", post.Trait[1])
	}
	if post := results["Lily"]; post.Trait[0] != 1 {
		t.Errorf("Lily is observed not to express the trait, but P(no trait) = %.6f", post.Trait[0])
	}
}

func TestInferIdempotent(t *testing.T) {
	ped := familyPedigree(t)
	m := DefaultModel()

	first, err := Infer(ped, m)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Infer(ped, m)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range ped.Names {
		if *first[name] != *second[name] {
			t.Errorf("%s: runs disagree: %+v vs %+v", name, first[name], second[name])
		}
	}
}

func TestInferParallelMatchesSerial(t *testing.T) {
	ped := mustPedigree(t, []Individual{
		{Name: "Harry", Mother: "Lily", Father: "James"},
		{Name: "James", Trait: Observed(true)},
		{Name: "Lily"},
		{Name: "Albus", Mother: "Lily", Father: "James"},
	})
	m := DefaultModel()

	serial, err := Infer(ped, m)
	if err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{1, 3, 0} {
		parallel, err := InferParallel(ped, m, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		for _, name := range ped.Names {
			for n := range serial[name].GeneCounts {
				if d := math.Abs(serial[name].GeneCounts[n] - parallel[name].GeneCounts[n]); d > 1e-9 {
					t.Errorf("workers=%d %s genes=%d: differs from serial by %g", workers, name, n, d)
				}
			}
			for i := range serial[name].Trait {
				if d := math.Abs(serial[name].Trait[i] - parallel[name].Trait[i]); d > 1e-9 {
					t.Errorf("workers=%d %s trait[%d]: differs from serial by %g", workers, name, i, d)
				}
			}
		}
	}
}

func TestInferRejectsInvalidModel(t *testing.T) {
	ped := mustPedigree(t, []Individual{{Name: "A"}})

	broken := DefaultModel()
	broken.GenePrior[0] = 0

	if _, err := Infer(ped, broken); err == nil {
		t.Error("Infer accepted a model whose priors do not sum to 1")
	}
	if _, err := InferParallel(ped, broken, 2); err == nil {
		t.Error("InferParallel accepted a model whose priors do not sum to 1")
	}
}

func TestNormalizeReportsNoConsistentWorld(t *testing.T) {
	ped := mustPedigree(t, []Individual{{Name: "A"}})

	// Accumulating nothing models evidence that admits zero worlds
	results := newResults(ped)
	err := results.normalize()
	if err == nil {
		t.Fatal("normalizing zero mass should fail")
	}
	if !errors.Is(err, ErrNoConsistentWorld) {
		t.Errorf("error should wrap ErrNoConsistentWorld, got: %v", err)
	}
}
