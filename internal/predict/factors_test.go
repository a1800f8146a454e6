package predict

import (
	"math"
	"testing"
)

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTemperatureFactor(t *testing.T) {
	approx(t, temperatureFactor(25), 1.0)  // reference baseline
	approx(t, temperatureFactor(30), 1.25) // optimum
	approx(t, temperatureFactor(20), 0.75)
	approx(t, temperatureFactor(35), 1.25-5*0.03) // falls off past the optimum
}

func TestHumidityFactor(t *testing.T) {
	for _, h := range []float64{60, 65, 70, 75, 80} {
		approx(t, humidityFactor(h), 1.2)
	}
	approx(t, humidityFactor(30), 0.8+(30.0/60)*0.4)
	approx(t, humidityFactor(90), 1.2-10*0.01)
}

func TestPHFactor(t *testing.T) {
	for _, ph := range []float64{4, 4.5, 5, 6} {
		approx(t, phFactor(ph), 1.1)
	}
	approx(t, phFactor(2), 0.7+(2.0/4)*0.4)
	approx(t, phFactor(8), 1.1-2*0.05)
}

func TestPlasticFormFactor(t *testing.T) {
	cases := map[string]float64{
		"microplastics": 1.5,
		"MICROPLASTICS": 1.5,
		"MicroPlastics": 1.5,
		"pieces":        1.0,
		"film":          1.3,
		"powder":        2.0,
		"granules":      1.0, // unknown forms are neutral
		"":              1.0,
	}
	for form, want := range cases {
		approx(t, plasticFormFactor(form), want)
	}
}
