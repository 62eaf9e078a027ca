package repositories

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/pkg/logger"
	"outdoor-advisor/pkg/observe"
)

const (
	NASAPowerBaseURL   = "https://power.larc.nasa.gov/api/temporal/daily/point"
	NASAPowerCommunity = "RE"
)

// NASAPowerRepository talks to the NASA POWER daily point API directly. Only
// the proxy uses it; the advisor goes through the proxy.
type NASAPowerRepository struct {
	BaseURL    string
	Community  string
	httpClient HTTPClient
	metrics    *observe.Metrics
	l          *logger.Logger
}

func NewNASAPowerRepository(baseURL, community string, httpClient HTTPClient, metrics *observe.Metrics, l *logger.Logger) *NASAPowerRepository {
	if baseURL == "" {
		baseURL = NASAPowerBaseURL
	}
	if community == "" {
		community = NASAPowerCommunity
	}
	return &NASAPowerRepository{
		BaseURL:    baseURL,
		Community:  community,
		httpClient: httpClient,
		metrics:    metrics,
		l:          l,
	}
}

func (n *NASAPowerRepository) Name() string {
	return "nasapower"
}

// FetchRaw returns the upstream JSON body untouched. A non-2xx answer becomes
// a *models.UpstreamError with the upstream status and body text.
func (n *NASAPowerRepository) FetchRaw(ctx context.Context, q models.PowerQuery) (body []byte, err error) {
	started := time.Now()
	defer func() { observeUpstream(n.metrics, n.Name(), started, err) }()

	q = q.WithDefaults()
	params := url.Values{
		"parameters": {q.Params},
		"community":  {n.Community},
		"longitude":  {q.Lon},
		"latitude":   {q.Lat},
		"start":      {q.Start},
		"end":        {q.End},
		"format":     {"JSON"},
	}

	n.l.Info("making NASA POWER API request", map[string]any{
		"lat":   q.Lat,
		"lon":   q.Lon,
		"start": q.Start,
		"end":   q.End,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := readErrorBody(resp.Body)
		n.l.Warning("NASA POWER fetch error", map[string]any{
			"status": resp.StatusCode,
			"detail": detail,
		})
		return nil, &models.UpstreamError{
			Source: models.SourceNASAPower,
			Status: resp.StatusCode,
			Detail: detail,
		}
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
