package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lox/bikeusage/internal/charts"
	"github.com/lox/bikeusage/internal/metrics"
)

func (s *Server) handleAPIDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := s.summarize(r)
	if err != nil {
		metrics.PageRendersTotal.WithLabelValues("api", "error").Inc()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		if err := json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}); err != nil {
			log.Printf("api: write dashboard error: %v", err)
		}
		return
	}
	metrics.PageRendersTotal.WithLabelValues("api", "ok").Inc()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(DashboardJSON{Summary: summary, Charts: charts.Build(summary)}); err != nil {
		log.Printf("api: write dashboard: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := HealthStatus{Status: "ok"}

	ds, err := s.source.Load()
	if err != nil {
		health.Status = "error"
		health.Error = err.Error()
	} else {
		health.Dataset = ds.Path
		health.Rows = len(ds.Records)
	}

	w.Header().Set("Content-Type", "application/json")
	if health.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		log.Printf("health: write response: %v", err)
	}
}
