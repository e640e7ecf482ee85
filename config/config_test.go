package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.conceptnet.io", cfg.Remote.BaseURL)
	assert.Equal(t, 1.0, cfg.Remote.RequestsPerSecond)
	assert.Equal(t, 10, cfg.Remote.TimeoutSeconds)
	assert.Equal(t, 50, cfg.Remote.EdgeLimit)
	assert.Equal(t, 1, cfg.Remote.MaxAttempts)
	assert.Equal(t, "adjacency-cache.json", cfg.Cache.Path)
	assert.Equal(t, 10, cfg.Search.MaxDepth)
	assert.Empty(t, cfg.Pairs)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"remote": {
			"base_url": "http://localhost:8080/",
			"requests_per_second": 5,
			"timeout_seconds": 3,
			"edge_limit": 20,
			"max_attempts": 2
		},
		"cache": {"path": "/tmp/sempath-cache.json"},
		"search": {"max_depth": 4},
		"pairs": [{"from": "/c/en/dog", "to": "/c/en/cat"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Trailing slash is normalized away
	assert.Equal(t, "http://localhost:8080", cfg.Remote.BaseURL)
	assert.Equal(t, 5.0, cfg.Remote.RequestsPerSecond)
	assert.Equal(t, 3, cfg.Remote.TimeoutSeconds)
	assert.Equal(t, 20, cfg.Remote.EdgeLimit)
	assert.Equal(t, 2, cfg.Remote.MaxAttempts)
	assert.Equal(t, "/tmp/sempath-cache.json", cfg.Cache.Path)
	assert.Equal(t, 4, cfg.Search.MaxDepth)
	require.Len(t, cfg.Pairs, 1)
	assert.Equal(t, Pair{From: "/c/en/dog", To: "/c/en/cat"}, cfg.Pairs[0])
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"search": {"max_depth": 3}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Search.MaxDepth)
	assert.Equal(t, "https://api.conceptnet.io", cfg.Remote.BaseURL)
	assert.Equal(t, "adjacency-cache.json", cfg.Cache.Path)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"remote": `), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(_ *Config) {}, false},
		{"empty base url", func(c *Config) { c.Remote.BaseURL = "" }, true},
		{"relative base url", func(c *Config) { c.Remote.BaseURL = "api.conceptnet.io" }, true},
		{"zero rate", func(c *Config) { c.Remote.RequestsPerSecond = 0 }, true},
		{"negative timeout", func(c *Config) { c.Remote.TimeoutSeconds = -1 }, true},
		{"zero edge limit", func(c *Config) { c.Remote.EdgeLimit = 0 }, true},
		{"zero attempts", func(c *Config) { c.Remote.MaxAttempts = 0 }, true},
		{"empty cache path", func(c *Config) { c.Cache.Path = "" }, true},
		{"zero depth", func(c *Config) { c.Search.MaxDepth = 0 }, true},
		{"pair missing to", func(c *Config) { c.Pairs = []Pair{{From: "/c/en/dog"}} }, true},
		{"pair without leading slash", func(c *Config) {
			c.Pairs = []Pair{{From: "c/en/dog", To: "/c/en/cat"}}
		}, true},
		{"valid pair", func(c *Config) {
			c.Pairs = []Pair{{From: "/c/en/dog", To: "/c/en/cat"}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
