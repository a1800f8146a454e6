package http

import (
	"encoding/json"
	"net/http"

	"github.com/speNillusion/fungis-boosters/internal/predict"
)

func PredictHandler(p *predict.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req predict.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.PlasticType == "" || req.Microorganism == "" {
			http.Error(w, "plastic_type and microorganism required", 400)
			return
		}
		_ = json.NewEncoder(w).Encode(p.Predict(r.Context(), req))
	}
}

func BatchPredictHandler(p *predict.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reqs []predict.Request
		if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		_ = json.NewEncoder(w).Encode(p.PredictBatch(r.Context(), reqs))
	}
}

// CompareHandler runs the canned comparison scenarios.
func CompareHandler(p *predict.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(p.PredictBatch(r.Context(), predict.CompareScenarios()))
	}
}

func TimelineHandler(p *predict.Predictor) http.HandlerFunc {
	type response struct {
		Prediction predict.Prediction      `json:"prediction"`
		Timeline   []predict.TimelinePoint `json:"timeline"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req predict.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		pred := p.Predict(r.Context(), req)
		_ = json.NewEncoder(w).Encode(response{Prediction: pred, Timeline: predict.Timeline(pred, 5)})
	}
}

func SensitivityHandler(p *predict.Predictor) http.HandlerFunc {
	type request struct {
		predict.Request
		Variations map[string][]float64 `json:"variations"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if len(req.Variations) == 0 {
			req.Variations = predict.DefaultSensitivityRanges()
		}
		_ = json.NewEncoder(w).Encode(p.Sensitivity(r.Context(), req.Request, req.Variations))
	}
}

func OrganismsHandler(p *predict.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]string{"organisms": p.AvailableOrganisms()})
	}
}

func PlasticsHandler(p *predict.Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string][]string{"plastics": p.AvailablePlastics()})
	}
}
