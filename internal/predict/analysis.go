package predict

import (
	"context"
	"math"
)

// TimelinePoint is one sample of the projected weight-loss curve.
type TimelinePoint struct {
	Day        int     `json:"day"`
	WeightLoss float64 `json:"weight_loss"`
}

// Timeline projects the weight-loss curve behind a prediction: progressive
// degradation up to the observable point, then a saturating tail worth an
// extra 30%, capped at 95%. Sampled every stepDays through T+30.
func Timeline(p Prediction, stepDays int) []TimelinePoint {
	if stepDays <= 0 {
		stepDays = 5
	}
	t := float64(p.DegradationTimeDays)
	var points []TimelinePoint
	for day := 0; day < p.DegradationTimeDays+30; day += stepDays {
		var loss float64
		if day <= p.DegradationTimeDays {
			progress := math.Pow(float64(day)/t, 0.7)
			loss = p.WeightLossPercentage * progress
		} else {
			extra := float64(day - p.DegradationTimeDays)
			loss = p.WeightLossPercentage + p.WeightLossPercentage*0.3*(1-math.Exp(-extra/20))
		}
		points = append(points, TimelinePoint{Day: day, WeightLoss: round1(math.Min(loss, 95))})
	}
	return points
}

// SensitivityPoint is the model output with one parameter swapped.
type SensitivityPoint struct {
	Value      float64 `json:"value"`
	WeightLoss float64 `json:"weight_loss"`
	TimeDays   int     `json:"time_days"`
}

// SensitivitySeries sweeps one parameter. Index is the mean coefficient of
// variation of degradation and time across the sweep — higher means the
// output reacts more to that parameter.
type SensitivitySeries struct {
	Parameter string             `json:"parameter"`
	Points    []SensitivityPoint `json:"points"`
	Index     float64            `json:"index"`
}

// sensitivityParams fixes sweep order for stable output.
var sensitivityParams = []string{"temperature", "humidity", "ph"}

// DefaultSensitivityRanges covers the expected input domains.
func DefaultSensitivityRanges() map[string][]float64 {
	return map[string][]float64{
		"temperature": {15, 20, 25, 30, 35, 40},
		"humidity":    {30, 45, 60, 75, 90},
		"ph":          {3, 4, 5, 6, 7, 8, 9},
	}
}

// Sensitivity re-runs the model across per-parameter value sweeps. Advisory
// enrichment is skipped so sweeps stay deterministic and offline.
func (p *Predictor) Sensitivity(ctx context.Context, req Request, variations map[string][]float64) []SensitivitySeries {
	var out []SensitivitySeries
	for _, param := range sensitivityParams {
		values, ok := variations[param]
		if !ok || len(values) == 0 {
			continue
		}
		series := SensitivitySeries{Parameter: param}
		var losses, times []float64
		for _, v := range values {
			varied := req
			switch param {
			case "temperature":
				varied.Temperature = v
			case "humidity":
				varied.Humidity = v
			case "ph":
				varied.PH = v
			}
			pred := p.predict(ctx, varied, nil)
			series.Points = append(series.Points, SensitivityPoint{
				Value:      v,
				WeightLoss: pred.WeightLossPercentage,
				TimeDays:   pred.DegradationTimeDays,
			})
			losses = append(losses, pred.WeightLossPercentage)
			times = append(times, float64(pred.DegradationTimeDays))
		}
		series.Index = round2((coefVar(losses) + coefVar(times)) / 2)
		out = append(out, series)
	}
	return out
}

func coefVar(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	if mean == 0 {
		return 0
	}
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq/float64(len(values))) / mean
}

// CompareScenarios returns the canned scenarios behind the dashboard's
// comparative view.
func CompareScenarios() []Request {
	return []Request{
		{PlasticType: "PVC", Microorganism: "Aspergillus niger", Temperature: 25, Humidity: 60, PH: 5, PlasticForm: "pieces"},
		{PlasticType: "PVC", Microorganism: "Aspergillus niger", Temperature: 30, Humidity: 70, PH: 4, PlasticForm: "microplastics"},
		{PlasticType: "PE", Microorganism: "Aspergillus niger", Temperature: 27, Humidity: 65, PH: 5, PlasticForm: "microplastics"},
		{PlasticType: "PET", Microorganism: "Acremonium sclerotigenum", Temperature: 25, Humidity: 60, PH: 6, PlasticForm: "microplastics"},
	}
}
