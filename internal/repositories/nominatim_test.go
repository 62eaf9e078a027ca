package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/pkg/logger"
)

const nominatimBody = `[
	{"place_id": 1, "display_name": "Budapest, Közép-Magyarország, Magyarország", "lat": "47.4979937", "lon": "19.0403594", "type": "city"},
	{"place_id": 2, "display_name": "Broken", "lat": "north", "lon": "19.0", "type": "village"},
	{"place_id": 3, "display_name": "Budapest, Georgia, United States", "lat": "34.0276", "lon": "-84.7427", "type": "hamlet"}
]`

func TestNominatimRepository_Search(t *testing.T) {
	var ua string
	var q map[string]string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		v := r.URL.Query()
		q = map[string]string{
			"q":              v.Get("q"),
			"format":         v.Get("format"),
			"limit":          v.Get("limit"),
			"addressdetails": v.Get("addressdetails"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(nominatimBody))
	}))
	defer mockServer.Close()

	repo := NewNominatimRepository(mockServer.URL, "", 0, NewHTTPClient(5), nil, logger.NewNop())

	places, err := repo.Search(context.Background(), "Budapest")
	require.NoError(t, err)

	assert.Equal(t, NominatimUserAgent, ua)
	assert.Equal(t, map[string]string{"q": "Budapest", "format": "json", "limit": "5", "addressdetails": "1"}, q)

	require.Len(t, places, 2, "the entry with unparsable coordinates is skipped")
	assert.Equal(t, models.Place{
		Name: "Budapest, Közép-Magyarország, Magyarország",
		Lat:  47.4979937,
		Lng:  19.0403594,
		Type: "city",
	}, places[0])
	assert.Equal(t, -84.7427, places[1].Lng)
}

func TestNominatimRepository_Search_Empty(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer mockServer.Close()

	repo := NewNominatimRepository(mockServer.URL, "test/1.0", 3, NewHTTPClient(5), nil, logger.NewNop())

	places, err := repo.Search(context.Background(), "zzzzzz")
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestNominatimRepository_Search_UpstreamError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("Access blocked"))
	}))
	defer mockServer.Close()

	repo := NewNominatimRepository(mockServer.URL, "", 0, NewHTTPClient(5), nil, logger.NewNop())

	_, err := repo.Search(context.Background(), "Budapest")

	var upstream *models.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusForbidden, upstream.Status)
	assert.Equal(t, "Access blocked", upstream.Detail)
}
