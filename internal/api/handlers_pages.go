package api

import (
	"encoding/base64"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/lox/bikeusage/internal/analysis"
	"github.com/lox/bikeusage/internal/charts"
	"github.com/lox/bikeusage/internal/ingest"
	"github.com/lox/bikeusage/internal/metrics"
)

// summarize runs load, filter and aggregate for the request's selection.
func (s *Server) summarize(r *http.Request) (analysis.Summary, error) {
	ds, err := s.source.Load()
	if err != nil {
		return analysis.Summary{}, err
	}
	q := r.URL.Query()
	sel := analysis.ParseSelection(analysis.Domain(ds), q.Get("year"), q.Get("season"))
	return analysis.Summarize(ds, sel), nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := s.summarize(r)
	if err != nil {
		metrics.PageRendersTotal.WithLabelValues("dashboard", "error").Inc()
		s.renderError(w, err)
		return
	}

	specs := charts.Build(summary)
	page := DashboardPage{
		Summary:    summary,
		Yearly:     s.panel(specs, charts.Yearly),
		WorkingDay: s.panel(specs, charts.WorkingDay),
		Seasonal:   s.panel(specs, charts.Seasonal),
		Monthly:    s.panel(specs, charts.Monthly),
		RFM:        summary.RFM,
		RFMCaption: charts.RFMCaption,
	}

	if err := s.tmpl.ExecuteTemplate(w, "dashboard.html", page); err != nil {
		metrics.PageRendersTotal.WithLabelValues("dashboard", "error").Inc()
		log.Printf("api: dashboard template: %v", err)
		return
	}
	metrics.PageRendersTotal.WithLabelValues("dashboard", "ok").Inc()
}

// panel renders the named chart inline. A render failure is shown in place
// of that chart only.
func (s *Server) panel(specs []charts.Spec, name string) ChartPanel {
	spec, _ := charts.Find(specs, name)
	p := ChartPanel{Spec: spec}
	data, err := s.renderer.PNG(spec)
	if err != nil {
		log.Printf("api: render %s: %v", name, err)
		p.Error = err.Error()
		return p
	}
	p.Image = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(data))
	return p
}

// renderError shows a load or schema failure instead of the dashboard.
func (s *Server) renderError(w http.ResponseWriter, err error) {
	page := ErrorPage{Heading: "Dashboard unavailable", Message: err.Error()}

	var loadErr *ingest.LoadError
	var schemaErr *ingest.SchemaError
	switch {
	case errors.As(err, &loadErr):
		page.Heading = "Could not load dataset"
	case errors.As(err, &schemaErr):
		page.Heading = "Dataset is missing required data"
	}
	log.Printf("api: %s: %v", page.Heading, err)

	w.WriteHeader(http.StatusInternalServerError)
	if err := s.tmpl.ExecuteTemplate(w, "error.html", page); err != nil {
		log.Printf("api: error template: %v", err)
	}
}
