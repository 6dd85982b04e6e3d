package google_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"yelpcamp/pkg/cache"
	mockcache "yelpcamp/pkg/cache/mock"
	"yelpcamp/pkg/geocoder"
	"yelpcamp/pkg/geocoder/google"
	"yelpcamp/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(fn rtFunc, c cache.Cache) *google.Client {
	return google.New(&http.Client{Transport: fn}, c, google.Options{
		APIKey:   "test-key",
		CacheTTL: time.Hour,
	})
}

const okBody = `{
  "status": "OK",
  "results": [{
    "formatted_address": "Yosemite Valley, CA 95389, USA",
    "geometry": {"location": {"lat": 37.7456, "lng": -119.5936}}
  }]
}`

func TestClient_Geocode_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "maps.googleapis.com", r.URL.Host)
		require.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		require.Equal(t, "Yosemite Valley", r.URL.Query().Get("address"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		return jsonResponse(http.StatusOK, okBody), nil
	}, nil)

	place, err := c.Geocode(context.Background(), "  Yosemite Valley ")
	require.NoError(t, err)
	require.Equal(t, "Yosemite Valley, CA 95389, USA", place.FormattedAddress)
	require.InDelta(t, 37.7456, place.Lat, 1e-9)
	require.InDelta(t, -119.5936, place.Lng, 1e-9)
}

func TestClient_Geocode_zeroResults(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"status":"ZERO_RESULTS","results":[]}`), nil
	}, nil)

	_, err := c.Geocode(context.Background(), "nowhere at all")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.EqualError(t, err, "Invalid address")
}

func TestClient_Geocode_emptyAddress(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected")

		return nil, nil
	}, nil)

	_, err := c.Geocode(context.Background(), "   ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_Geocode_providerFailures(t *testing.T) {
	tests := []struct {
		name string
		fn   rtFunc
	}{
		{
			name: "transport",
			fn: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: refused")
			},
		},
		{
			name: "status",
			fn: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusInternalServerError, "boom"), nil
			},
		},
		{
			name: "denied",
			fn: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"status":"REQUEST_DENIED","error_message":"bad key"}`), nil
			},
		},
		{
			name: "malformed",
			fn: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{`), nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestClient(tt.fn, nil).Geocode(context.Background(), "Yosemite")
			require.ErrorIs(t, err, serrors.ErrExternalService)
		})
	}
}

func TestClient_Geocode_missingKey(t *testing.T) {
	c := google.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected")

		return nil, nil
	})}, nil, google.Options{})

	_, err := c.Geocode(context.Background(), "Yosemite")
	require.ErrorIs(t, err, serrors.ErrExternalService)
}

func TestClient_Geocode_cacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached, err := json.Marshal(geocoder.Place{FormattedAddress: "cached", Lat: 1, Lng: 2})
	require.NoError(t, err)

	mc := mockcache.NewMockCache(ctrl)
	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, nil)

	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected on cache hit")

		return nil, nil
	}, mc)

	place, err := c.Geocode(context.Background(), "Yosemite")
	require.NoError(t, err)
	require.Equal(t, "cached", place.FormattedAddress)
}

func TestClient_Geocode_cacheMissStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var key string
	mc := mockcache.NewMockCache(ctrl)
	mc.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, k string) ([]byte, error) {
		key = k

		return nil, cache.ErrMiss
	})
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Hour).
		DoAndReturn(func(_ context.Context, k string, v []byte, _ time.Duration) error {
			require.Equal(t, key, k)
			var p geocoder.Place
			require.NoError(t, json.Unmarshal(v, &p))
			require.Equal(t, "Yosemite Valley, CA 95389, USA", p.FormattedAddress)

			return nil
		})

	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, okBody), nil
	}, mc)

	_, err := c.Geocode(context.Background(), "Yosemite Valley")
	require.NoError(t, err)
}

func TestClient_Geocode_cacheErrorsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mc := mockcache.NewMockCache(ctrl)
	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, okBody), nil
	}, mc)

	place, err := c.Geocode(context.Background(), "Yosemite Valley")
	require.NoError(t, err)
	require.NotNil(t, place)
}
