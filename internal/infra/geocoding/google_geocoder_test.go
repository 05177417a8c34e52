package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"agriconnect/config"
	"agriconnect/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(endpoint string) service.Geocoder {
	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			APIKey:   "test-key",
			Endpoint: endpoint,
		},
	}

	return NewGoogleGeocoder(cfg)
}

func TestGoogleGeocoder_Geocode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Tagbilaran City, Bohol", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": 9.6475, "lng": 123.8854}}}
			]
		}`))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL)

	pt, err := geocoder.Geocode(context.Background(), "Tagbilaran City, Bohol")

	require.NoError(t, err)
	assert.Equal(t, 9.6475, pt.Lat())
	assert.Equal(t, 123.8854, pt.Lon())
}

func TestGoogleGeocoder_Geocode_ZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL)

	_, err := geocoder.Geocode(context.Background(), "nowhere at all")

	require.ErrorIs(t, err, service.ErrLocationNotResolvable)
}

func TestGoogleGeocoder_Geocode_OKWithoutResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OK", "results": []}`))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL)

	_, err := geocoder.Geocode(context.Background(), "strange place")

	require.ErrorIs(t, err, service.ErrLocationNotResolvable)
}

func TestGoogleGeocoder_Geocode_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL)

	_, err := geocoder.Geocode(context.Background(), "anywhere")

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrLocationNotResolvable)
}
