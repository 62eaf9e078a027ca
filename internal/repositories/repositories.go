package repositories

import (
	"outdoor-advisor/config"
	"outdoor-advisor/pkg/logger"
	"outdoor-advisor/pkg/observe"
)

// Repositories groups every upstream client the service talks to.
type Repositories struct {
	Forecasts   *OpenWeatherRepository
	Climatology *PowerProxyRepository
	Power       *NASAPowerRepository
	Places      *NominatimRepository
}

func InitRepositories(cfg *config.Config, metrics *observe.Metrics, l *logger.Logger) *Repositories {
	if cfg.Weather.APIKey == "" {
		l.Warning("no OpenWeatherMap API key configured, near-term forecasts will fail")
	}

	// The proxy is this same process, so the client waits for the
	// proxy's own upstream timeout plus some slack.
	proxyTimeout := cfg.Power.Timeout + 5

	return &Repositories{
		Forecasts: NewOpenWeatherRepository(
			cfg.Weather.BaseURL,
			cfg.Weather.APIKey,
			cfg.Weather.Units,
			NewHTTPClient(cfg.Weather.Timeout),
			metrics,
			l,
		),
		Climatology: NewPowerProxyRepository(
			cfg.Power.ProxyURL,
			NewHTTPClient(proxyTimeout),
			metrics,
			l,
		),
		Power: NewNASAPowerRepository(
			cfg.Power.BaseURL,
			cfg.Power.Community,
			NewHTTPClient(cfg.Power.Timeout),
			metrics,
			l,
		),
		Places: NewNominatimRepository(
			cfg.Search.BaseURL,
			cfg.Search.UserAgent,
			cfg.Search.Limit,
			NewHTTPClient(cfg.Search.Timeout),
			metrics,
			l,
		),
	}
}

