package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/speNillusion/fungis-boosters/internal/dataset"
	"github.com/speNillusion/fungis-boosters/internal/store"
)

func DatasetStatsHandler(s *store.DegraderStore) http.HandlerFunc {
	type response struct {
		Total          int                `json:"total"`
		Plastics       []store.FieldCount `json:"plastics"`
		Microorganisms []store.FieldCount `json:"microorganisms"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := s.Count(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		plastics, err := s.PlasticCounts(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		organisms, err := s.MicroorganismCounts(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(response{Total: total, Plastics: plastics, Microorganisms: organisms})
	}
}

func DatasetRecordsHandler(s *store.DegraderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit := 100
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "bad limit", 400)
				return
			}
			limit = n
		}
		recs, err := s.Records(r.Context(), store.RecordFilter{
			Plastic:       q.Get("plastic"),
			Microorganism: q.Get("microorganism"),
		}, limit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if recs == nil {
			recs = []map[string]string{}
		}
		_ = json.NewEncoder(w).Encode(recs)
	}
}

func DatasetSchemaHandler(s *store.DegraderStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cols, err := s.Schema(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string][]store.ColumnInfo{"columns": cols})
	}
}

// RebuildDatasetHandler repopulates the degraders table from the configured
// JSON file. Admin-only; mounted behind the JWT middleware.
func RebuildDatasetHandler(s *store.DegraderStore, datasetPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := dataset.Load(datasetPath)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if err := s.Rebuild(r.Context(), records); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]int{"imported": len(records)})
	}
}
