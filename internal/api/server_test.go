package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yelpcamp/internal/api"
	"yelpcamp/internal/api/handler/v1handler"
	mockcampground "yelpcamp/internal/campground/mock"
	"yelpcamp/pkg/domain"
	"yelpcamp/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func publicKeyPEM(t *testing.T) string {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func newTestServer(t *testing.T, deps api.Deps) *httptest.Server {
	t.Helper()

	reg := prometheus.NewRegistry()
	deps.Registerer = reg
	deps.Gatherer = reg

	srv, err := api.NewServer(deps, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()

	res, err := ts.Client().Get(ts.URL + path)
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestNewServer_InvalidPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{Registerer: prometheus.NewRegistry()}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "garbage"},
	})
	require.ErrorContains(t, err, "could not create sec handler")
}

func TestNewServer_MissingMetricsPath(t *testing.T) {
	_, err := api.NewServer(api.Deps{Registerer: prometheus.NewRegistry()}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
	})
	require.ErrorIs(t, err, api.ErrMetricsPathRequired)
}

func TestServer_Specs(t *testing.T) {
	ts := newTestServer(t, api.Deps{})

	res, body := get(t, ts, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "openapi:")
	require.Contains(t, body, "/campgrounds")
}

func TestServer_Docs(t *testing.T) {
	ts := newTestServer(t, api.Deps{})

	res, body := get(t, ts, "/v1/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "YelpCamp API")
}

func TestServer_V1RoutesAndMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	campgrounds := mockcampground.NewMockService(ctrl)
	campgrounds.EXPECT().List(gomock.Any(), "", uint(0)).Return([]domain.Campground{{Name: "Lake"}}, "", nil)

	ts := newTestServer(t, api.Deps{V1: v1handler.Deps{Campgrounds: campgrounds}})

	res, body := get(t, ts, "/v1/campgrounds")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `"name":"Lake"`)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	res, body = get(t, ts, "/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `http_request_duration_seconds_count{method="GET",pattern="/v1/",status="200"} 1`)
	require.Contains(t, body, "ogen_server_request_count_total")
	require.Contains(t, body, `oas_operation="listCampgrounds"`)
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := newTestServer(t, api.Deps{})

	res, _ := get(t, ts, "/v1/nope")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = get(t, ts, "/nope")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, api.Deps{})

	req, err := http.NewRequest(http.MethodPatch, ts.URL+"/v1/campgrounds", nil)
	require.NoError(t, err)
	res, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	require.Equal(t, "GET,POST", res.Header.Get("Allow"))
}

func TestServer_Pprof(t *testing.T) {
	ts := newTestServer(t, api.Deps{})

	res, _ := get(t, ts, "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, res.StatusCode)
}
