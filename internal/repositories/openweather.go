package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/pkg/logger"
	"outdoor-advisor/pkg/observe"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// OpenWeatherRepository fetches the 5 day / 3 hour forecast.
type OpenWeatherRepository struct {
	BaseURL    string
	APIKey     string
	Units      string
	httpClient HTTPClient
	metrics    *observe.Metrics
	l          *logger.Logger
}

func NewOpenWeatherRepository(baseURL, apiKey, units string, httpClient HTTPClient, metrics *observe.Metrics, l *logger.Logger) *OpenWeatherRepository {
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}
	if units == "" {
		units = "metric"
	}

	return &OpenWeatherRepository{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Units:      units,
		httpClient: httpClient,
		metrics:    metrics,
		l:          l,
	}
}

func (w *OpenWeatherRepository) Name() string {
	return "openweather"
}

// FetchForecast returns the raw forecast for a point. A non-success answer
// becomes a *models.UpstreamError carrying OpenWeatherMap's own message.
func (w *OpenWeatherRepository) FetchForecast(ctx context.Context, lat, lon float64) (payload models.ForecastPayload, err error) {
	started := time.Now()
	defer func() { observeUpstream(w.metrics, w.Name(), started, err) }()

	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"units": {w.Units},
		"appid": {w.APIKey},
	}

	w.l.Info("making openweather API request", map[string]any{
		"lat":   lat,
		"lon":   lon,
		"units": w.Units,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return payload, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return payload, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	w.l.Info("received openweather API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return payload, fmt.Errorf("failed to read response body: %w", err)
	}

	// Error answers are JSON too: {"cod": 401, "message": "Invalid API key..."}
	jsonErr := json.Unmarshal(body, &payload)

	if resp.StatusCode != http.StatusOK || (jsonErr == nil && !payload.OK()) {
		detail := string(payload.Message)
		if jsonErr != nil || detail == "" {
			detail = resp.Status
		}
		status := resp.StatusCode
		if cod, err := strconv.Atoi(string(payload.Cod)); err == nil && status == http.StatusOK {
			status = cod
		}
		return payload, &models.UpstreamError{
			Source: models.SourceOpenWeather,
			Status: status,
			Detail: detail,
		}
	}

	if jsonErr != nil {
		return payload, fmt.Errorf("failed to parse JSON response: %w", jsonErr)
	}

	w.l.Debug("parsed openweather response", map[string]any{
		"slots": len(payload.List),
	})

	return payload, nil
}
