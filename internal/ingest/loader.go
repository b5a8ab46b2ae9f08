package ingest

import (
	"log"
	"time"

	"github.com/lox/bikeusage/internal/metrics"
	"github.com/lox/bikeusage/internal/models"
)

// Loader reads the dataset at a fixed path. Without a cache every call
// re-reads the file.
type Loader struct {
	path  string
	cache *Cache
}

func NewLoader(path string, cache *Cache) *Loader {
	return &Loader{path: path, cache: cache}
}

func (l *Loader) Path() string {
	return l.path
}

func (l *Loader) Load() (*models.Dataset, error) {
	if l.cache != nil {
		if ds, ok := l.cache.Get(l.path); ok {
			metrics.DatasetCacheHits.Inc()
			return ds, nil
		}
	}

	start := time.Now()
	ds, err := Load(l.path)
	metrics.DatasetLoadLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DatasetLoadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.DatasetLoadsTotal.WithLabelValues("ok").Inc()

	if l.cache != nil {
		if err := l.cache.Set(l.path, ds); err != nil {
			log.Printf("ingest: cache dataset %s: %v", l.path, err)
		}
	}
	return ds, nil
}
