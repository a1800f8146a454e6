package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleJSON = `[
  {"Microorganism": "Aspergillus niger", "Plastic": "PVC", "Year": 2019, "Enzyme (ID)": "cutinase"},
  {"Microorganism": "Candida albicans", "Plastic": "PVC", "Year": 2021, "Enzyme (ID)": ""},
  {"Microorganism": "Aspergillus niger", "Plastic": "PE", "Year": 2020, "Enzyme (ID)": "laccase"}
]`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "degraders.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	records, err := Load(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if got := records[0].String("Microorganism"); got != "Aspergillus niger" {
		t.Errorf("field: got %q", got)
	}
}

func TestLoadMissingFileIsEmptyDataset(t *testing.T) {
	records, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not an array"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSanitizeColumn(t *testing.T) {
	cases := map[string]string{
		"Enzyme (ID)":   "EnzymeID",
		"Tax_ID":        "Tax_ID",
		"Year":          "Year",
		"weight-loss %": "weightloss",
	}
	for in, want := range cases {
		if got := SanitizeColumn(in); got != want {
			t.Errorf("SanitizeColumn(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestColumnsSanitizedAndSorted(t *testing.T) {
	records, err := Load(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"EnzymeID", "Microorganism", "Plastic", "Year"}
	if diff := cmp.Diff(want, Columns(records)); diff != "" {
		t.Errorf("columns (-want +got):\n%s", diff)
	}
}

func TestDistinct(t *testing.T) {
	records, err := Load(writeSample(t))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Aspergillus niger", "Candida albicans"}
	if diff := cmp.Diff(want, Distinct(records, "Microorganism")); diff != "" {
		t.Errorf("distinct (-want +got):\n%s", diff)
	}
	// empty values are dropped
	if got := Distinct(records, "EnzymeID"); len(got) != 2 {
		t.Errorf("enzymes: %v", got)
	}
}
