package power

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"outdoor-advisor/internal/models"
	"outdoor-advisor/pkg/logger"
	"outdoor-advisor/pkg/observe"
)

const requiredParamsMessage = "Missing required query params: lat, lon, start, end"

// Upstream fetches a raw NASA POWER response body.
type Upstream interface {
	FetchRaw(ctx context.Context, q models.PowerQuery) ([]byte, error)
}

// Proxy fronts NASA POWER with a bounded cache keyed by the full query.
type Proxy struct {
	upstream Upstream
	cache    *lruCache
	metrics  *observe.Metrics
	l        *logger.Logger
}

type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	Clock     clockwork.Clock
}

func NewProxy(upstream Upstream, opts Options, metrics *observe.Metrics, l *logger.Logger) *Proxy {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Proxy{
		upstream: upstream,
		cache:    newLRUCache(opts.CacheSize, opts.CacheTTL, opts.Clock),
		metrics:  metrics,
		l:        l,
	}
}

// Fetch returns the upstream JSON for q, from cache when possible.
//
// Errors: *models.ValidationError when a required field is missing,
// *models.UpstreamError for a non-2xx upstream answer, and
// models.ErrInvalidStructure (with the body still returned) when the upstream
// answered without properties.parameter. Only valid bodies are cached.
func (p *Proxy) Fetch(ctx context.Context, q models.PowerQuery) ([]byte, error) {
	if missing := q.Missing(); len(missing) > 0 {
		return nil, &models.ValidationError{Field: strings.Join(missing, ", "), Message: requiredParamsMessage}
	}
	q = q.WithDefaults()
	key := q.CacheKey()

	if body, ok := p.cache.get(key); ok {
		p.count("hit")
		p.l.Debug("climatology cache hit", map[string]any{"key": key})
		return body, nil
	}
	p.count("miss")

	body, err := p.upstream.FetchRaw(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "fetch NASA POWER")
	}

	var payload models.ClimatologyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrap(err, "decode NASA POWER response")
	}
	if !payload.Valid() {
		p.l.Warning("NASA POWER returned invalid data structure", map[string]any{"key": key})
		return body, models.ErrInvalidStructure
	}

	p.cache.put(key, body)
	p.count("store")
	if p.metrics != nil {
		p.metrics.ProxyCacheSize.Set(float64(p.cache.size()))
	}

	return body, nil
}

func (p *Proxy) count(result string) {
	if p.metrics == nil {
		return
	}
	p.metrics.ProxyCache.WithLabelValues(result).Inc()
}
