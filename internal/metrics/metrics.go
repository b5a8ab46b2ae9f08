package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bikeusage_dataset_loads_total",
			Help: "Total dataset loads by outcome",
		},
		[]string{"status"},
	)

	DatasetLoadLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bikeusage_dataset_load_seconds",
			Help:    "Time to read and parse the dataset CSV in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bikeusage_dataset_cache_hits_total",
			Help: "Dataset loads served from the modification-time cache",
		},
	)

	PageRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bikeusage_page_renders_total",
			Help: "Total dashboard renders by page and status",
		},
		[]string{"page", "status"},
	)

	ChartRenderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bikeusage_chart_render_seconds",
			Help:    "Chart rasterisation latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"chart"},
	)
)
