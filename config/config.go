// Package config loads the application configuration from a YAML file,
// filling in defaults for anything left unset.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adeilh/metcat/cache"
	"github.com/adeilh/metcat/metapi"
)

var ErrInvalid = errors.New("config: invalid value")

// Config is the full application configuration.
type Config struct {
	API           APIConfig   `yaml:"api"`
	Cache         CacheConfig `yaml:"cache"`
	Nationalities string      `yaml:"nationalities_file"`
	Diag          DiagConfig  `yaml:"diag"`
}

// APIConfig configures the collection API client.
type APIConfig struct {
	BaseURL           string        `yaml:"base_url"`
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	RetryCount        int           `yaml:"retry_count"`
	RetryWait         time.Duration `yaml:"retry_wait"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
}

// CacheConfig configures the shared store: the global ceiling and the
// per-category TTLs.
type CacheConfig struct {
	MaxEntries       int           `yaml:"max_entries"`
	ArtworkTTL       time.Duration `yaml:"artwork_ttl"`
	DepartmentTTL    time.Duration `yaml:"department_ttl"`
	SearchTTL        time.Duration `yaml:"search_ttl"`
	DepartmentIDsTTL time.Duration `yaml:"department_ids_ttl"`
}

// DiagConfig configures the optional diagnostics HTTP server.
type DiagConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:           metapi.DefaultBaseURL,
			Timeout:           30 * time.Second,
			UserAgent:         "metcat/1.0",
			RetryCount:        2,
			RetryWait:         time.Second,
			RequestsPerSecond: 40,
		},
		Cache: CacheConfig{
			MaxEntries:       cache.DefaultMaxEntries,
			ArtworkTTL:       cache.DefaultArtworkTTL,
			DepartmentTTL:    cache.DefaultDepartmentTTL,
			SearchTTL:        cache.DefaultSearchTTL,
			DepartmentIDsTTL: cache.DefaultDepartmentIDsTTL,
		},
		Nationalities: "nationalities.txt",
		Diag: DiagConfig{
			Enabled: false,
			Address: "127.0.0.1:8091",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the cache and client would refuse anyway, so the
// failure points at the file instead of a constructor deep in the wiring.
func (c Config) Validate() error {
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("%w: cache.max_entries must be positive", ErrInvalid)
	}
	for name, ttl := range map[string]time.Duration{
		"cache.artwork_ttl":        c.Cache.ArtworkTTL,
		"cache.department_ttl":     c.Cache.DepartmentTTL,
		"cache.search_ttl":         c.Cache.SearchTTL,
		"cache.department_ids_ttl": c.Cache.DepartmentIDsTTL,
	} {
		if ttl < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalid, name)
		}
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url must not be empty", ErrInvalid)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: api.timeout must be positive", ErrInvalid)
	}
	if c.Nationalities == "" {
		return fmt.Errorf("%w: nationalities_file must not be empty", ErrInvalid)
	}
	if c.Diag.Enabled && c.Diag.Address == "" {
		return fmt.Errorf("%w: diag.address must be set when diag is enabled", ErrInvalid)
	}
	return nil
}
