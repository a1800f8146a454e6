package predict

import "strings"

// Reference conditions the base rates were recorded under.
const (
	baseTemperature = 25.0
	optimalTemp     = 30.0
)

// temperatureFactor follows a simplified Arrhenius shape: degradation
// accelerates up to ~30°C and falls off beyond it.
func temperatureFactor(temp float64) float64 {
	if temp <= optimalTemp {
		return 1 + (temp-baseTemperature)*0.05
	}
	return 1 + (optimalTemp-baseTemperature)*0.05 - (temp-optimalTemp)*0.03
}

// humidityFactor peaks flat at 1.2 across the 60-80% band.
func humidityFactor(humidity float64) float64 {
	switch {
	case humidity >= 60 && humidity <= 80:
		return 1.2
	case humidity < 60:
		return 0.8 + (humidity/60)*0.4
	default:
		return 1.2 - (humidity-80)*0.01
	}
}

// phFactor peaks flat at 1.1 across pH 4-6, the optimum for most fungi.
func phFactor(ph float64) float64 {
	switch {
	case ph >= 4 && ph <= 6:
		return 1.1
	case ph < 4:
		return 0.7 + (ph/4)*0.4
	default:
		return 1.1 - (ph-6)*0.05
	}
}

// formFactors map physical form to a surface-area multiplier.
var formFactors = map[string]float64{
	"microplastics": 1.5,
	"pieces":        1.0,
	"film":          1.3,
	"powder":        2.0,
}

func plasticFormFactor(form string) float64 {
	if f, ok := formFactors[strings.ToLower(form)]; ok {
		return f
	}
	return 1.0
}
