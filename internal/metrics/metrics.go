// Package metrics exposes Prometheus collectors for the HTTP layer and the
// proximity search.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"localmarket-api/internal/proximity"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application's collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "localmarket",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "localmarket",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	proximityQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "localmarket",
			Subsystem: "proximity",
			Name:      "queries_total",
			Help:      "Nearby-service searches by radius and outcome.",
		},
		[]string{"radius_km", "outcome"},
	)

	proximityDiskCells = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "localmarket",
			Subsystem: "proximity",
			Name:      "disk_cells",
			Help:      "Number of grid cells searched per nearby query.",
			Buckets:   []float64{1, 7, 19, 37, 61, 91, 127, 169},
		},
	)

	cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "localmarket",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Read-through cache lookups by key and result.",
		},
		[]string{"key", "result"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		proximityQueries,
		proximityDiskCells,
		cacheLookups,
	)
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveProximityQuery records one nearby search. cells is ignored when err
// is non-nil. Radii the policy rejected share the "other" label so client
// input cannot grow the series set.
func ObserveProximityQuery(radiusKm float64, cells int, err error) {
	radius := strconv.FormatFloat(radiusKm, 'f', -1, 64)
	outcome := "ok"
	switch {
	case errors.Is(err, proximity.ErrUnsupportedRadius):
		radius, outcome = "other", "unsupported_radius"
	case err != nil:
		outcome = "error"
	}
	proximityQueries.WithLabelValues(radius, outcome).Inc()
	if err == nil {
		proximityDiskCells.Observe(float64(cells))
	}
}

// ObserveCacheLookup records a cache hit or miss for key.
func ObserveCacheLookup(key string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.WithLabelValues(key, result).Inc()
}
