package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/c360/sempath/errors"
)

// Config represents the complete application configuration
type Config struct {
	Remote RemoteConfig `json:"remote"`
	Cache  CacheConfig  `json:"cache"`
	Search SearchConfig `json:"search"`
	Pairs  []Pair       `json:"pairs,omitempty"` // Node pairs for batch runs
}

// RemoteConfig defines the remote concept-graph service settings
type RemoteConfig struct {
	BaseURL           string  `json:"base_url,omitempty"`
	RequestsPerSecond float64 `json:"requests_per_second,omitempty"`
	TimeoutSeconds    int     `json:"timeout_seconds,omitempty"`
	EdgeLimit         int     `json:"edge_limit,omitempty"`
	MaxAttempts       int     `json:"max_attempts,omitempty"`
}

// Timeout returns the per-request timeout as a duration.
func (r RemoteConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// CacheConfig defines adjacency cache persistence settings
type CacheConfig struct {
	Path string `json:"path,omitempty"`
}

// SearchConfig defines search engine settings
type SearchConfig struct {
	MaxDepth int `json:"max_depth,omitempty"`
}

// Pair names a start and end node for a batch search run.
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Default returns the configuration used when no file is supplied: the
// public concept-graph endpoint at one request per second, a cache file in
// the working directory, and a ten-edge depth limit.
func Default() *Config {
	return &Config{
		Remote: RemoteConfig{
			BaseURL:           "https://api.conceptnet.io",
			RequestsPerSecond: 1,
			TimeoutSeconds:    10,
			EdgeLimit:         50,
			MaxAttempts:       1,
		},
		Cache: CacheConfig{
			Path: "adjacency-cache.json",
		},
		Search: SearchConfig{
			MaxDepth: 10,
		},
	}
}

// Load returns the configuration from path layered over the defaults. An
// empty path yields the pure defaults. A path that cannot be read or
// parsed is an error: a user who names a config file wants that file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFatal(err, "config", "Load", "read config file")
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err),
			"config", "Load", "parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the config is valid
func (c *Config) Validate() error {
	if c.Remote.BaseURL == "" {
		return invalid("remote.base_url is required")
	}
	u, err := url.Parse(c.Remote.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return invalid(fmt.Sprintf("remote.base_url %q is not an absolute URL", c.Remote.BaseURL))
	}
	// A trailing slash would double up against node IDs, which begin with "/"
	c.Remote.BaseURL = strings.TrimRight(c.Remote.BaseURL, "/")

	if c.Remote.RequestsPerSecond <= 0 {
		return invalid("remote.requests_per_second must be positive")
	}
	if c.Remote.TimeoutSeconds <= 0 {
		return invalid("remote.timeout_seconds must be positive")
	}
	if c.Remote.EdgeLimit <= 0 {
		return invalid("remote.edge_limit must be positive")
	}
	if c.Remote.MaxAttempts < 1 {
		return invalid("remote.max_attempts must be at least 1")
	}

	if c.Cache.Path == "" {
		return invalid("cache.path is required")
	}

	if c.Search.MaxDepth < 1 {
		return invalid("search.max_depth must be at least 1")
	}

	for i, pair := range c.Pairs {
		if pair.From == "" || pair.To == "" {
			return invalid(fmt.Sprintf("pairs[%d]: from and to are both required", i))
		}
		if !strings.HasPrefix(pair.From, "/") || !strings.HasPrefix(pair.To, "/") {
			return invalid(fmt.Sprintf("pairs[%d]: node IDs must start with '/'", i))
		}
	}

	return nil
}

func invalid(msg string) error {
	return errors.WrapInvalid(errors.ErrInvalidConfig, "config", "Validate", msg)
}
