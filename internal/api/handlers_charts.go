package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/lox/bikeusage/internal/charts"
	"github.com/lox/bikeusage/internal/metrics"
)

// handleChart serves one chart as a PNG, e.g. /charts/workingday.png?year=1.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(r.PathValue("file"), ".png")
	if !ok {
		http.NotFound(w, r)
		return
	}

	summary, err := s.summarize(r)
	if err != nil {
		metrics.PageRendersTotal.WithLabelValues("chart", "error").Inc()
		log.Printf("api: chart %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	spec, ok := charts.Find(charts.Build(summary), name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := s.renderer.PNG(spec)
	if err != nil {
		metrics.PageRendersTotal.WithLabelValues("chart", "error").Inc()
		log.Printf("api: render %s: %v", name, err)
		http.Error(w, "chart render failed", http.StatusInternalServerError)
		return
	}
	metrics.PageRendersTotal.WithLabelValues("chart", "ok").Inc()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}
