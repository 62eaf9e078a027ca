package repositories

import (
	"io"
	"net/http"
	"strings"
	"time"

	"outdoor-advisor/pkg/observe"
)

// maxErrorBody caps how much of an upstream error body is carried into errors.
const maxErrorBody = 2048

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns a client with the given timeout in seconds.
func NewHTTPClient(timeoutSeconds int) *http.Client {
	return &http.Client{
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

func readErrorBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(b))
}

// observeUpstream records one upstream call; it is a no-op without metrics.
func observeUpstream(m *observe.Metrics, source string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.UpstreamRequests.WithLabelValues(source, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(source).Observe(time.Since(started).Seconds())
}
