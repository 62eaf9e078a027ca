package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	App     AppConfig     `yaml:"app" envconfig:"APP"`
	Server  ServerConfig  `yaml:"server" envconfig:"SERVER"`
	Log     LogConfig     `yaml:"log" envconfig:"LOG"`
	Weather WeatherConfig `yaml:"weather" envconfig:"WEATHER"`
	Power   PowerConfig   `yaml:"power" envconfig:"POWER"`
	Search  SearchConfig  `yaml:"search" envconfig:"SEARCH"`
	Sentry  SentryConfig  `yaml:"sentry" envconfig:"SENTRY"`
}

type AppConfig struct {
	Name     string `yaml:"name" split_words:"true"`
	Version  string `yaml:"version" split_words:"true"`
	Env      string `yaml:"env" split_words:"true"`
	Timezone string `yaml:"timezone" split_words:"true"`
}

// ServerConfig timeouts are in seconds. PORT is accepted as an alias of SERVER_PORT.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT"`
	ReadTimeout  int    `yaml:"read_timeout" split_words:"true"`
	WriteTimeout int    `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  int    `yaml:"idle_timeout" split_words:"true"`
}

type LogConfig struct {
	Level  string `yaml:"level" split_words:"true"`
	Format string `yaml:"format" split_words:"true"`
}

// WeatherConfig describes the near-term forecast upstream (OpenWeatherMap).
type WeatherConfig struct {
	BaseURL string `yaml:"base_url" split_words:"true"`
	APIKey  string `yaml:"api_key,omitempty" split_words:"true"`
	Units   string `yaml:"units" split_words:"true"`
	Timeout int    `yaml:"timeout" split_words:"true"`
}

// PowerConfig describes the NASA POWER upstream, the proxy cache and the
// proxy URL the advisor goes through for climatology.
type PowerConfig struct {
	BaseURL      string `yaml:"base_url" split_words:"true"`
	ProxyURL     string `yaml:"proxy_url" split_words:"true"`
	Community    string `yaml:"community" split_words:"true"`
	Timeout      int    `yaml:"timeout" split_words:"true"`
	CacheSize    int    `yaml:"cache_size" split_words:"true"`
	CacheTTLMins int    `yaml:"cache_ttl_minutes" split_words:"true"`
}

type SearchConfig struct {
	BaseURL    string `yaml:"base_url" split_words:"true"`
	UserAgent  string `yaml:"user_agent" split_words:"true"`
	Limit      int    `yaml:"limit" split_words:"true"`
	Timeout    int    `yaml:"timeout" split_words:"true"`
	DebounceMs int    `yaml:"debounce_ms" split_words:"true"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" split_words:"true"`
	Debug bool   `yaml:"debug" split_words:"true"`
}

// FileConfigProvider loads defaults, then the YAML file (if present), then
// environment overrides.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if yamlData, err := os.ReadFile(p.path); err == nil {
		if err := yaml.Unmarshal(yamlData, cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read YAML config %s: %w", p.path, err)
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	if cnf.Power.ProxyURL == "" {
		cnf.Power.ProxyURL = "http://localhost:" + cnf.Server.Port
	}

	return cnf, nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	switch {
	case cnf.App.Name == "":
		return errors.New("app name is required")
	case cnf.Server.Port == "":
		return errors.New("server port is required")
	case cnf.Server.ReadTimeout <= 0 || cnf.Server.WriteTimeout <= 0 || cnf.Server.IdleTimeout <= 0:
		return errors.New("server timeouts must be positive")
	case cnf.Weather.BaseURL == "":
		return errors.New("weather base url is required")
	case cnf.Weather.Timeout <= 0:
		return errors.New("weather timeout must be positive")
	case cnf.Power.BaseURL == "":
		return errors.New("power base url is required")
	case cnf.Power.Timeout <= 0:
		return errors.New("power timeout must be positive")
	case cnf.Power.CacheSize <= 0:
		return errors.New("power cache size must be positive")
	case cnf.Power.CacheTTLMins <= 0:
		return errors.New("power cache ttl must be positive")
	case cnf.Search.Limit <= 0:
		return errors.New("search limit must be positive")
	case cnf.Search.DebounceMs < 0:
		return errors.New("search debounce must not be negative")
	}

	switch cnf.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", cnf.Log.Level)
	}

	return nil
}

// NewConfigWithProvider loads and validates configuration.
func NewConfigWithProvider(p *FileConfigProvider) (*Config, error) {
	cnf, err := p.Load()
	if err != nil {
		return nil, err
	}

	if err := p.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func NewConfig() *Config {
	path := defaultConfigPath
	if v := os.Getenv("CONFIG_FILE"); v != "" {
		path = v
	}

	cnf, err := NewConfigWithProvider(NewFileConfigProvider(path))
	if err != nil {
		panic(err)
	}

	return cnf
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:     "outdoor-advisor",
			Version:  "1.0.0",
			Env:      "development",
			Timezone: "Local",
		},
		Server: ServerConfig{
			Port:         "3000",
			ReadTimeout:  10,
			WriteTimeout: 30,
			IdleTimeout:  120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org/data/2.5/forecast",
			Units:   "metric",
			Timeout: 15,
		},
		Power: PowerConfig{
			BaseURL:      "https://power.larc.nasa.gov/api/temporal/daily/point",
			Community:    "RE",
			Timeout:      30,
			CacheSize:    512,
			CacheTTLMins: 24 * 60,
		},
		Search: SearchConfig{
			BaseURL:    "https://nominatim.openstreetmap.org/search",
			UserAgent:  "outdoor-advisor/1.0",
			Limit:      5,
			Timeout:    10,
			DebounceMs: 300,
		},
	}
}
