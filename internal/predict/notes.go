package predict

import "strings"

// generateNotes assembles the human-readable observations triggered by the
// scenario. Rules fire independently and in a fixed order; the combined
// factor rule is mutually exclusive within itself.
func generateNotes(temp, humidity, ph float64, plasticForm string, combinedFactor float64) string {
	var notes []string

	switch {
	case combinedFactor > 1.5:
		notes = append(notes, "Very favorable conditions for degradation")
	case combinedFactor > 1.2:
		notes = append(notes, "Favorable conditions for degradation")
	case combinedFactor < 0.8:
		notes = append(notes, "Unfavorable conditions for degradation")
	}

	if temp > 35 {
		notes = append(notes, "Temperature may inhibit fungal activity")
	} else if temp < 15 {
		notes = append(notes, "Low temperature may slow degradation")
	}

	if humidity < 40 {
		notes = append(notes, "Low humidity may limit fungal growth")
	} else if humidity > 90 {
		notes = append(notes, "Very high humidity may favor contamination")
	}

	if ph < 3 {
		notes = append(notes, "Very acidic pH may inhibit fungi")
	} else if ph > 8 {
		notes = append(notes, "Alkaline pH may reduce efficiency")
	}

	if strings.Contains(strings.ToLower(plasticForm), "microplastic") {
		notes = append(notes, "Microplastics degrade faster due to greater surface area")
	}

	if len(notes) == 0 {
		return "Conditions within normal parameters"
	}
	return strings.Join(notes, "; ")
}
