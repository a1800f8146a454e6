package predict

import (
	"strings"
	"testing"
)

func TestGenerateNotesNormalConditions(t *testing.T) {
	got := generateNotes(25, 60, 7, "pieces", 1.0)
	if got != "Conditions within normal parameters" {
		t.Fatalf("got %q", got)
	}
}

func TestGenerateNotesExtremeConditions(t *testing.T) {
	// temp 40, humidity 95, pH 2, microplastics: combined factor lands in
	// the favorable band (0.95 * 1.05 * 0.9 * 1.5 ≈ 1.35).
	combined := temperatureFactor(40) * humidityFactor(95) * phFactor(2) * plasticFormFactor("microplastics")
	got := generateNotes(40, 95, 2, "microplastics", combined)

	for _, phrase := range []string{
		"Favorable conditions for degradation",
		"Temperature may inhibit fungal activity",
		"Very high humidity may favor contamination",
		"Very acidic pH may inhibit fungi",
		"Microplastics degrade faster due to greater surface area",
	} {
		if !strings.Contains(got, phrase) {
			t.Errorf("notes missing %q: %q", phrase, got)
		}
	}
}

func TestGenerateNotesFavorabilityBands(t *testing.T) {
	cases := []struct {
		factor float64
		want   string
	}{
		{1.6, "Very favorable conditions for degradation"},
		{1.3, "Favorable conditions for degradation"},
		{0.7, "Unfavorable conditions for degradation"},
	}
	for _, c := range cases {
		got := generateNotes(25, 60, 7, "pieces", c.factor)
		if !strings.Contains(got, c.want) {
			t.Errorf("factor %v: notes %q missing %q", c.factor, got, c.want)
		}
	}
	// bands are mutually exclusive
	got := generateNotes(25, 60, 7, "pieces", 1.6)
	if strings.Contains(got, "Unfavorable") || strings.Count(got, "favorable conditions") != 1 {
		t.Errorf("expected exactly one favorability note, got %q", got)
	}
}
