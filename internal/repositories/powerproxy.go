package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/pkg/logger"
	"outdoor-advisor/pkg/observe"
)

// PowerProxyRepository reads climatology through the caching /nasa-power proxy.
type PowerProxyRepository struct {
	ProxyURL   string
	Params     string
	httpClient HTTPClient
	metrics    *observe.Metrics
	l          *logger.Logger
}

// proxyError is the JSON body the proxy sends with non-200 answers.
type proxyError struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func NewPowerProxyRepository(proxyURL string, httpClient HTTPClient, metrics *observe.Metrics, l *logger.Logger) *PowerProxyRepository {
	return &PowerProxyRepository{
		ProxyURL:   strings.TrimRight(proxyURL, "/"),
		Params:     models.DefaultPowerParams,
		httpClient: httpClient,
		metrics:    metrics,
		l:          l,
	}
}

func (p *PowerProxyRepository) Name() string {
	return "nasapower-proxy"
}

// FetchClimatology asks the proxy for an inclusive YYYYMMDD range.
func (p *PowerProxyRepository) FetchClimatology(ctx context.Context, lat, lon float64, start, end string) (payload models.ClimatologyPayload, err error) {
	started := time.Now()
	defer func() { observeUpstream(p.metrics, p.Name(), started, err) }()

	params := url.Values{
		"lat":    {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(lon, 'f', -1, 64)},
		"start":  {start},
		"end":    {end},
		"params": {p.Params},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.ProxyURL+"/nasa-power?"+params.Encode(), nil)
	if err != nil {
		return payload, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return payload, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return payload, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var pe proxyError
		_ = json.Unmarshal(body, &pe)

		status := pe.Status
		if status == 0 {
			status = resp.StatusCode
		}
		detail := pe.Detail
		if detail == "" {
			detail = pe.Error
		}
		if detail == "" {
			detail = resp.Status
		}

		p.l.Warning("climatology proxy returned an error", map[string]any{
			"status": resp.StatusCode,
			"error":  pe.Error,
		})

		return payload, &models.UpstreamError{
			Source: models.SourceNASAPower,
			Status: status,
			Detail: detail,
		}
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return payload, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return payload, nil
}
