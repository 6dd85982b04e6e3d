package controller

import (
	"net/http"
	"strconv"
	"time"

	"yelpcamp/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics holds the request instruments recorded by WithMetrics.
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP request instruments on reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	return &HTTPMetrics{
		duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route pattern, method and status code.",
			Buckets: metrics.DefaultBuckets,
		}, []string{"pattern", "method", "status"}),
	}
}

// WithMetrics records the latency of every request handled by mux. It must
// wrap the ServeMux itself, so the matched pattern is known once the mux
// returns; unmatched requests are recorded with an empty pattern.
func (m *HTTPMetrics) WithMetrics(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		mux.ServeHTTP(rec, r)

		m.duration.
			WithLabelValues(r.Pattern, r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
