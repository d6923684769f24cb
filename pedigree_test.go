package heredity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const familyCSV = `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`

func TestReadPedigree(t *testing.T) {
	ped, err := ReadPedigree(strings.NewReader(familyCSV))
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Join(ped.Names, ","); got != "Harry,James,Lily" {
		t.Errorf("input order not preserved: %s", got)
	}

	harry := ped.Individuals["Harry"]
	if harry.Mother != "Lily" || harry.Father != "James" {
		t.Errorf("Harry's parents parsed as %q/%q", harry.Mother, harry.Father)
	}
	if harry.Trait != nil {
		t.Error("Harry's trait should be unknown")
	}
	if harry.Founder() {
		t.Error("Harry has parents and is not a founder")
	}

	james := ped.Individuals["James"]
	if james.Trait == nil || !*james.Trait {
		t.Error("James should be observed to express the trait")
	}
	if !james.Founder() {
		t.Error("James has no parents and is a founder")
	}

	lily := ped.Individuals["Lily"]
	if lily.Trait == nil || *lily.Trait {
		t.Error("Lily should be observed not to express the trait")
	}
}

func TestReadPedigreeRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			"unknown mother",
			"name,mother,father,trait\nHarry,Petunia,James,\nJames,,,1\n",
		},
		{
			"single parent",
			"name,mother,father,trait\nHarry,Lily,,\nLily,,,0\n",
		},
		{
			"duplicate name",
			"name,mother,father,trait\nJames,,,1\nJames,,,0\n",
		},
		{
			"empty name",
			"name,mother,father,trait\n,,,1\n",
		},
		{
			"bad trait marker",
			"name,mother,father,trait\nJames,,,yes\n",
		},
		{
			"missing column",
			"name,mother,father\nJames,,\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ReadPedigree(strings.NewReader(test.csv)); err == nil {
				t.Errorf("%s should be rejected before inference", test.name)
			}
		})
	}
}

func TestOpenGzippedPedigree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "family.csv.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(familyCSV)); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	ped, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(ped.Names) != 3 {
		t.Errorf("parsed %d individuals, expected 3", len(ped.Names))
	}
	if ped.FilePath != path {
		t.Errorf("FilePath = %q, expected %q", ped.FilePath, path)
	}
}

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		path     string
		expected Compression
	}{
		{"family.csv", CompressionDisabled},
		{"family.csv.gz", CompressionGzip},
		{"family.csv.zst", CompressionZStandard},
	}

	for _, test := range tests {
		if got := DetectCompression(test.path); got != test.expected {
			t.Errorf("DetectCompression(%q) = %d, expected %d", test.path, got, test.expected)
		}
	}
}
