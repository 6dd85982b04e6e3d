package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yelpcamp/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_RecordsPattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := controller.NewHTTPMetrics(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/campgrounds/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := m.WithMetrics(mux)

	for _, path := range []string{"/v1/campgrounds/a", "/v1/campgrounds/b"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	require.Equal(t, "http_request_duration_seconds", families[0].GetName())

	series := families[0].GetMetric()
	require.Len(t, series, 1)
	require.EqualValues(t, 2, series[0].GetHistogram().GetSampleCount())

	labels := map[string]string{}
	for _, l := range series[0].GetLabel() {
		labels[l.GetName()] = l.GetValue()
	}
	require.Equal(t, map[string]string{
		"pattern": "GET /v1/campgrounds/{id}",
		"method":  http.MethodGet,
		"status":  "404",
	}, labels)
}
