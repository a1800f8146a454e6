package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/speNillusion/fungis-boosters/internal/advisory"
	api "github.com/speNillusion/fungis-boosters/internal/api/http"
	"github.com/speNillusion/fungis-boosters/internal/auth"
	"github.com/speNillusion/fungis-boosters/internal/config"
	"github.com/speNillusion/fungis-boosters/internal/dataset"
	"github.com/speNillusion/fungis-boosters/internal/predict"
	"github.com/speNillusion/fungis-boosters/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := store.Open(ctx, store.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	degraders := store.NewDegraderStore(dbh, store.Driver(cfg.DBDriver))

	// --- Dataset & predictor ---
	records, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		log.Fatalf("dataset load failed: %v", err)
	}
	if len(records) == 0 {
		log.Printf("dataset %s empty or missing; catalogs fall back to literature tables", cfg.DatasetPath)
	}

	var advisor predict.Advisor
	if cfg.AdvisoryURL != "" {
		advisor = advisory.New(cfg.AdvisoryURL)
	}
	predictor := predict.New(advisor, records)

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, cfg.AdminUser, cfg.AdminPassHash))

	r.Route("/api", func(ar chi.Router) {
		ar.Post("/predict", api.PredictHandler(predictor))
		ar.Post("/predict/batch", api.BatchPredictHandler(predictor))
		ar.Get("/predict/compare", api.CompareHandler(predictor))
		ar.Post("/predict/timeline", api.TimelineHandler(predictor))
		ar.Post("/predict/sensitivity", api.SensitivityHandler(predictor))

		ar.Get("/organisms", api.OrganismsHandler(predictor))
		ar.Get("/plastics", api.PlasticsHandler(predictor))

		ar.Get("/dataset/stats", api.DatasetStatsHandler(degraders))
		ar.Get("/dataset/records", api.DatasetRecordsHandler(degraders))
		ar.Get("/dataset/schema", api.DatasetSchemaHandler(degraders))

		// Admin-only repopulation
		ar.Group(func(pr chi.Router) {
			pr.Use(auth.JWTMiddleware(authSvc))
			pr.Post("/dataset/rebuild", api.RebuildDatasetHandler(degraders, cfg.DatasetPath))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s, advisory=%v)", cfg.HTTPAddr, cfg.DBDriver, cfg.AdvisoryURL != "")
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
