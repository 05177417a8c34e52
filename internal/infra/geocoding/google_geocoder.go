// Package geocoding resolves free-text addresses through the Google
// Maps Geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"agriconnect/config"
	"agriconnect/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const defaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

type googleGeocoder struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewGoogleGeocoder creates a Geocoder backed by the Google Maps
// Geocoding API.
func NewGoogleGeocoder(cfg *config.Config) service.Geocoder {
	endpoint := defaultEndpoint
	apiKey := ""
	if cfg.Geocoding != nil {
		if cfg.Geocoding.Endpoint != "" {
			endpoint = cfg.Geocoding.Endpoint
		}
		apiKey = cfg.Geocoding.APIKey
	}

	return &googleGeocoder{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// geocodeResponse is the subset of the API response this service reads.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves address text to a point. Any non-OK upstream status
// maps to ErrLocationNotResolvable.
func (g *googleGeocoder) Geocode(ctx context.Context, address string) (orb.Point, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return orb.Point{}, errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return orb.Point{}, errors.Wrap(err, "call geocoding api")
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return orb.Point{}, errors.Wrap(err, "decode geocoding response")
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return orb.Point{}, service.ErrLocationNotResolvable
	}

	loc := decoded.Results[0].Geometry.Location

	return orb.Point{loc.Lng, loc.Lat}, nil
}
