// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	OMDb      OMDbConfig      `toml:"omdb"`
	Cache     CacheConfig     `toml:"cache"`
	Batch     BatchConfig     `toml:"batch"`
	Lists     ListsConfig     `toml:"lists"`
	Telemetry TelemetryConfig `toml:"telemetry"`
	DNS       DNSConfig       `toml:"dns"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

type OMDbConfig struct {
	APIKey  string        `toml:"api_key"`
	BaseURL string        `toml:"base_url"`
	Timeout time.Duration `toml:"timeout"` // per request
}

type CacheConfig struct {
	MovieTTL   time.Duration `toml:"movie_ttl"`
	SearchTTL  time.Duration `toml:"search_ttl"`
	SimilarTTL time.Duration `toml:"similar_ttl"`
}

type BatchConfig struct {
	Concurrency       int           `toml:"concurrency"`
	SearchConcurrency int           `toml:"search_concurrency"`
	Delay             time.Duration `toml:"delay"`
	SearchLimit       int           `toml:"search_limit"`
	SimilarCount      int           `toml:"similar_count"`
}

// ListsConfig overrides the built-in trending and popular IMDb ID lists.
type ListsConfig struct {
	Trending []string `toml:"trending"`
	Popular  []string `toml:"popular"`
}

type TelemetryConfig struct {
	Metrics         bool    `toml:"metrics"`
	TracingEndpoint string  `toml:"tracing_endpoint"`
	SampleRate      float64 `toml:"sample_rate"`
}

type DNSConfig struct {
	Cache           bool          `toml:"cache"`
	RefreshInterval time.Duration `toml:"refresh_interval"`
}

// Load reads, parses and validates the configuration file.
// Unresolved ${VAR} references and validation failures are reported
// together as a *ConfigError.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	cfg := Default()
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	cerr := &ConfigError{Path: path, Missing: missing}
	if len(missing) == 0 {
		cerr.Errors = cfg.Validate()
	}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{
		Telemetry: TelemetryConfig{Metrics: true, SampleRate: 1.0},
		DNS:       DNSConfig{Cache: true},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8585
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.OMDb.BaseURL == "" {
		c.OMDb.BaseURL = "https://www.omdbapi.com"
	}
	if c.OMDb.Timeout == 0 {
		c.OMDb.Timeout = 5 * time.Second
	}
	if c.Cache.MovieTTL == 0 {
		c.Cache.MovieTTL = time.Hour
	}
	if c.Cache.SearchTTL == 0 {
		c.Cache.SearchTTL = 30 * time.Minute
	}
	if c.Cache.SimilarTTL == 0 {
		c.Cache.SimilarTTL = time.Hour
	}
	if c.Batch.Concurrency == 0 {
		c.Batch.Concurrency = 4
	}
	if c.Batch.SearchConcurrency == 0 {
		c.Batch.SearchConcurrency = 3
	}
	if c.Batch.Delay == 0 {
		c.Batch.Delay = 50 * time.Millisecond
	}
	if c.Batch.SearchLimit == 0 {
		c.Batch.SearchLimit = 10
	}
	if c.Batch.SimilarCount == 0 {
		c.Batch.SimilarCount = 12
	}
	if c.DNS.RefreshInterval == 0 {
		c.DNS.RefreshInterval = 5 * time.Minute
	}
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references and returns the names
// (or ":?" messages) of the ones it could not resolve. Unresolved
// references are left in place.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("config not found")
