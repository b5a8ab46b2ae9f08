package api

import (
	"html/template"

	"github.com/lox/bikeusage/internal/analysis"
	"github.com/lox/bikeusage/internal/charts"
	"github.com/lox/bikeusage/internal/models"
)

// DashboardPage is everything the dashboard template needs.
type DashboardPage struct {
	Summary    analysis.Summary
	Yearly     ChartPanel
	WorkingDay ChartPanel
	Seasonal   ChartPanel
	Monthly    ChartPanel
	RFM        []models.RFMRow
	RFMCaption string
}

// ChartPanel is one rendered chart with its caption.
type ChartPanel struct {
	Spec  charts.Spec
	Image template.URL // data: URI of the PNG
	Error string
}

// ErrorPage is shown instead of the dashboard when the dataset is unusable.
type ErrorPage struct {
	Heading string
	Message string
}

// DashboardJSON is the /api/dashboard payload.
type DashboardJSON struct {
	analysis.Summary
	Charts []charts.Spec `json:"charts"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Dataset string `json:"dataset,omitempty"`
	Rows    int    `json:"rows"`
	Error   string `json:"error,omitempty"`
}
