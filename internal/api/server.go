package api

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lox/bikeusage/internal/charts"
	"github.com/lox/bikeusage/internal/models"
)

// DatasetSource supplies the dataset for one request.
type DatasetSource interface {
	Load() (*models.Dataset, error)
}

type Server struct {
	source   DatasetSource
	port     string
	tmpl     *template.Template
	renderer *charts.Renderer
}

func NewServer(source DatasetSource, port string) *Server {
	return &Server{
		source:   source,
		port:     port,
		tmpl:     newTemplates(),
		renderer: charts.NewRenderer(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /charts/{file}", s.handleChart)
	mux.HandleFunc("GET /api/dashboard", s.handleAPIDashboard)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
