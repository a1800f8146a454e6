// Package predict estimates how fast a plastic degrades under fungal action
// for a given environment. Base rates come from a curated literature table
// (or per-plastic default estimates) and are adjusted by four multiplicative
// correction factors. The estimator never fails: unrecognized inputs fall
// back to defaults with lowered confidence.
package predict

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/speNillusion/fungis-boosters/internal/advisory"
	"github.com/speNillusion/fungis-boosters/internal/dataset"
)

// Advisor supplies optional enrichment from an external knowledge service.
type Advisor interface {
	Consult(ctx context.Context, prompt string) advisory.Result
}

// Predictor holds the static rate tables plus the optional advisor and the
// loaded dataset (used only for catalogs). Safe for concurrent use: nothing
// is mutated after construction.
type Predictor struct {
	advisor Advisor // nil disables advisory enrichment
	records []dataset.Record
}

// New builds a predictor. Both arguments may be nil/empty.
func New(advisor Advisor, records []dataset.Record) *Predictor {
	return &Predictor{advisor: advisor, records: records}
}

// minCombinedFactor floors the factor product. Extreme inputs can push
// individual factors negative; a non-positive product would invert the
// time adjustment.
const minCombinedFactor = 0.01

// Predict estimates degradation for one scenario.
func (p *Predictor) Predict(ctx context.Context, req Request) Prediction {
	return p.predict(ctx, req, p.advisor)
}

// PredictBatch runs the scenarios sequentially, preserving order.
func (p *Predictor) PredictBatch(ctx context.Context, reqs []Request) []Prediction {
	out := make([]Prediction, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, p.Predict(ctx, req))
	}
	return out
}

func (p *Predictor) predict(ctx context.Context, req Request, advisor Advisor) Prediction {
	plastic := strings.ToUpper(req.PlasticType)
	organism := speciesCase(req.Microorganism)

	base := resolveBase(plastic, organism, req.PlasticForm)

	combined := temperatureFactor(req.Temperature) *
		humidityFactor(req.Humidity) *
		phFactor(req.PH) *
		plasticFormFactor(req.PlasticForm)
	if combined < minCombinedFactor {
		combined = minCombinedFactor
	}

	adjustedTime := int(float64(base.TimeDays) / combined)
	if adjustedTime < 1 {
		adjustedTime = 1
	}
	adjustedDegradation := math.Min(100, base.DegradationPct*combined)
	adjustedConfidence := base.Confidence * math.Min(1.0, combined/2)

	var advisoryNote string
	if advisor != nil {
		if res := advisor.Consult(ctx, buildPrompt(plastic, organism, req)); res.Available {
			adjustedConfidence = math.Min(1.0, adjustedConfidence*1.3)
			adjustedTime = int(float64(adjustedTime) * 0.9)
			if adjustedTime < 1 {
				adjustedTime = 1
			}
			advisoryNote = " Data enriched with scientific API information."
		}
	}

	notes := generateNotes(req.Temperature, req.Humidity, req.PH, req.PlasticForm, combined) + advisoryNote

	return Prediction{
		DegradationTimeDays:  adjustedTime,
		WeightLossPercentage: round1(adjustedDegradation),
		Confidence:           round2(adjustedConfidence),
		Conditions: Conditions{
			Temperature: req.Temperature,
			Humidity:    req.Humidity,
			PH:          req.PH,
			PlasticForm: req.PlasticForm,
		},
		Notes:         notes,
		Microorganism: organism,
		PlasticType:   plastic,
	}
}

// resolveBase finds a literature entry for the exact combination, bucketing
// the form to microplastics vs pieces, and otherwise estimates from the
// per-plastic defaults scaled by organism efficiency.
func resolveBase(plastic, organism, form string) BaseRate {
	bucket := "pieces"
	if strings.Contains(strings.ToLower(form), "microplastic") {
		bucket = "microplastics"
	}
	if byPlastic, ok := literatureRates[organism]; ok {
		if byForm, ok := byPlastic[plastic]; ok {
			if rate, ok := byForm[bucket]; ok {
				return rate
			}
		}
	}
	return estimateRate(plastic, organism)
}

func estimateRate(plastic, organism string) BaseRate {
	base, ok := defaultRates[plastic]
	if !ok {
		base = fallbackRate
	}
	eff, ok := organismEfficiency[organism]
	if !ok {
		eff = defaultEfficiency
	}
	return BaseRate{
		TimeDays:       int(float64(base.TimeDays) / eff),
		DegradationPct: base.DegradationPct * eff,
		Confidence:     base.Confidence * estimatePenalty,
	}
}

// AvailableOrganisms lists dataset organisms merged with the literature
// table, sorted.
func (p *Predictor) AvailableOrganisms() []string {
	seen := map[string]bool{}
	for _, o := range dataset.Distinct(p.records, "Microorganism") {
		seen[o] = true
	}
	for o := range literatureRates {
		seen[o] = true
	}
	return sortedKeys(seen)
}

// AvailablePlastics lists dataset plastics merged with the common plastic
// codes, sorted.
func (p *Predictor) AvailablePlastics() []string {
	seen := map[string]bool{}
	for _, pl := range dataset.Distinct(p.records, "Plastic") {
		seen[pl] = true
	}
	for _, pl := range commonPlastics {
		seen[pl] = true
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// speciesCase canonicalizes a binomial species name: first rune upper,
// remainder lower ("aspergillus NIGER" → "Aspergillus niger").
func speciesCase(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

func buildPrompt(plastic, organism string, req Request) string {
	return fmt.Sprintf(`I need scientific information about plastic degradation by fungi.

Specific data:
- Plastic: %s
- Microorganism: %s
- Temperature: %g°C
- Humidity: %g%%
- pH: %g

Please provide information about:
1. Observable degradation time (in days)
2. Expected weight loss percentage
3. Enzymes involved in the process
4. Optimal conditions for degradation
5. Relevant scientific references

Please respond in a structured and scientific manner.`,
		plastic, organism, req.Temperature, req.Humidity, req.PH)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
