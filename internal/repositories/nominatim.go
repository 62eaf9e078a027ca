package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/pkg/logger"
	"outdoor-advisor/pkg/observe"
)

const (
	NominatimBaseURL   = "https://nominatim.openstreetmap.org/search"
	NominatimUserAgent = "outdoor-advisor/1.0"
	defaultSearchLimit = 5
)

// NominatimRepository resolves free text to places with OpenStreetMap's geocoder.
type NominatimRepository struct {
	BaseURL    string
	UserAgent  string
	Limit      int
	httpClient HTTPClient
	metrics    *observe.Metrics
	l          *logger.Logger
}

// Nominatim returns coordinates as strings.
type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
}

func NewNominatimRepository(baseURL, userAgent string, limit int, httpClient HTTPClient, metrics *observe.Metrics, l *logger.Logger) *NominatimRepository {
	if baseURL == "" {
		baseURL = NominatimBaseURL
	}
	if userAgent == "" {
		userAgent = NominatimUserAgent
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return &NominatimRepository{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		Limit:      limit,
		httpClient: httpClient,
		metrics:    metrics,
		l:          l,
	}
}

func (n *NominatimRepository) Name() string {
	return "nominatim"
}

// Search returns at most Limit places for the query. Results whose
// coordinates do not parse are skipped.
func (n *NominatimRepository) Search(ctx context.Context, query string) (places []models.Place, err error) {
	started := time.Now()
	defer func() { observeUpstream(n.metrics, n.Name(), started, err) }()

	params := url.Values{
		"format":         {"json"},
		"q":              {query},
		"limit":          {strconv.Itoa(n.Limit)},
		"addressdetails": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", n.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &models.UpstreamError{
			Source: "Nominatim",
			Status: resp.StatusCode,
			Detail: readErrorBody(resp.Body),
		}
	}

	var raw []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	places = make([]models.Place, 0, len(raw))
	for _, r := range raw {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			n.l.Debug("skipping place with bad coordinates", map[string]any{"name": r.DisplayName})
			continue
		}
		places = append(places, models.Place{
			Name: r.DisplayName,
			Lat:  lat,
			Lng:  lng,
			Type: r.Type,
		})
	}

	n.l.Debug("search finished", map[string]any{"query": query, "results": len(places)})

	return places, nil
}
