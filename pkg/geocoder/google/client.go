// Package google provides a geocoder.Geocoder backed by the Google Maps
// Geocoding API, with an optional result cache.
package google

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yelpcamp/internal/config"
	"yelpcamp/pkg/cache"
	"yelpcamp/pkg/geocoder"
	"yelpcamp/pkg/logger"
	"yelpcamp/pkg/serrors"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Options configure the Client.
type Options struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// CacheTTL is how long resolved places are cached. Zero disables caching.
	CacheTTL time.Duration
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		APIKey:   cfg.Geocoder.APIKey,
		BaseURL:  cfg.Geocoder.BaseURL,
		Timeout:  cfg.Geocoder.Timeout,
		CacheTTL: cfg.Geocoder.CacheTTL,
	}
}

// Client talks to the Geocoding API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	cache      cache.Cache // optional
	options    Options
}

// New constructs a Client. A nil httpClient uses one bounded by opts.Timeout;
// a nil cache disables caching.
func New(httpClient *http.Client, c cache.Cache, opts Options) *Client {
	if strings.TrimSpace(opts.BaseURL) == "" {
		opts.BaseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{httpClient: httpClient, cache: c, options: opts}
}

// Geocode resolves address into a Place. Unknown addresses yield ErrBadRequest
// with the message "Invalid address".
func (c *Client) Geocode(ctx context.Context, address string) (*geocoder.Place, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid address")
	}

	key := cacheKey(trimmed)
	if place, ok := c.cached(ctx, key); ok {
		return place, nil
	}

	place, err := c.request(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, place)

	return place, nil
}

func (c *Client) request(ctx context.Context, address string) (*geocoder.Place, error) {
	// https://developers.google.com/maps/documentation/geocoding/requests-geocoding
	if c.options.APIKey == "" {
		return nil, serrors.With(serrors.ErrExternalService, "geocoder api key is not configured")
	}

	params := url.Values{"address": []string{address}, "key": []string{c.options.APIKey}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.options.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrExternalService, err, "could not send geocode request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrExternalService, err, "could not read geocode response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrExternalService,
			"geocode request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var gr struct {
		Status       string `json:"status"`
		ErrorMessage string `json:"error_message"`
		Results      []struct {
			FormattedAddress string `json:"formatted_address"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.Unmarshal(b, &gr); err != nil {
		return nil, serrors.Wrap(serrors.ErrExternalService, err, "could not decode geocode response")
	}

	switch gr.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid address")
	default:
		return nil, serrors.With(serrors.ErrExternalService, "geocoder returned %s: %s", gr.Status, gr.ErrorMessage)
	}
	if len(gr.Results) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid address")
	}

	r := gr.Results[0]

	return &geocoder.Place{
		FormattedAddress: r.FormattedAddress,
		Lat:              r.Geometry.Location.Lat,
		Lng:              r.Geometry.Location.Lng,
	}, nil
}

func (c *Client) cached(ctx context.Context, key string) (*geocoder.Place, bool) {
	if c.cache == nil || c.options.CacheTTL <= 0 {
		return nil, false
	}

	b, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			logger.Warn(ctx, "could not read geocode cache", zap.Error(err))
		}

		return nil, false
	}

	var place geocoder.Place
	if err := json.Unmarshal(b, &place); err != nil {
		return nil, false
	}

	return &place, true
}

func (c *Client) store(ctx context.Context, key string, place *geocoder.Place) {
	if c.cache == nil || c.options.CacheTTL <= 0 {
		return
	}

	b, err := json.Marshal(place)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, key, b, c.options.CacheTTL); err != nil {
		logger.Warn(ctx, "could not write geocode cache", zap.Error(err))
	}
}

func cacheKey(address string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(address)))

	return "geocode:" + hex.EncodeToString(sum[:])
}

// Ensure Client conforms to the geocoder.Geocoder interface at compile time.
var _ geocoder.Geocoder = (*Client)(nil)
