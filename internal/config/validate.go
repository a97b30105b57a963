package config

import (
	"fmt"
	"net/url"
	"regexp"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var imdbIDPattern = regexp.MustCompile(`^tt\d{7,}$`)

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	// OMDb
	if c.OMDb.APIKey == "" {
		errs = append(errs, "omdb.api_key: required")
	}
	if c.OMDb.BaseURL != "" {
		if u, err := url.Parse(c.OMDb.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("omdb.base_url: invalid URL %q", c.OMDb.BaseURL))
		}
	}
	if c.OMDb.Timeout < 0 {
		errs = append(errs, "omdb.timeout: must not be negative")
	}

	// Cache
	if c.Cache.MovieTTL < 0 || c.Cache.SearchTTL < 0 || c.Cache.SimilarTTL < 0 {
		errs = append(errs, "cache: TTLs must not be negative")
	}

	// Batch
	if c.Batch.Concurrency < 1 {
		errs = append(errs, fmt.Sprintf("batch.concurrency: must be at least 1, got %d", c.Batch.Concurrency))
	}
	if c.Batch.SearchConcurrency < 1 {
		errs = append(errs, fmt.Sprintf("batch.search_concurrency: must be at least 1, got %d", c.Batch.SearchConcurrency))
	}
	if c.Batch.Delay < 0 {
		errs = append(errs, "batch.delay: must not be negative")
	}
	if c.Batch.SearchLimit < 1 {
		errs = append(errs, fmt.Sprintf("batch.search_limit: must be at least 1, got %d", c.Batch.SearchLimit))
	}
	if c.Batch.SimilarCount < 1 {
		errs = append(errs, fmt.Sprintf("batch.similar_count: must be at least 1, got %d", c.Batch.SimilarCount))
	}

	// Lists
	for _, id := range c.Lists.Trending {
		if !imdbIDPattern.MatchString(id) {
			errs = append(errs, fmt.Sprintf("lists.trending: invalid IMDb ID %q", id))
		}
	}
	for _, id := range c.Lists.Popular {
		if !imdbIDPattern.MatchString(id) {
			errs = append(errs, fmt.Sprintf("lists.popular: invalid IMDb ID %q", id))
		}
	}

	// Telemetry
	if c.Telemetry.SampleRate < 0 || c.Telemetry.SampleRate > 1 {
		errs = append(errs, fmt.Sprintf("telemetry.sample_rate: must be between 0 and 1, got %g", c.Telemetry.SampleRate))
	}

	return errs
}
