package adjacency

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/c360/sempath/errors"
	"github.com/c360/sempath/graph"
	"github.com/c360/sempath/metric"
)

// Fetcher retrieves the directed edge list for a node from the remote
// graph service. conceptnet.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, node graph.NodeID) ([]graph.Edge, error)
}

// Config holds store configuration
type Config struct {
	Path string // Cache file location
}

// Deps holds store dependencies
type Deps struct {
	Config  Config
	Fetcher Fetcher
	Logger  *slog.Logger
	Metrics *metric.Registry
}

// Store is a durable adjacency cache backed by a single JSON file. Entries
// are only ever added, never evicted: the remote graph is treated as
// immutable for the lifetime of the cache file.
type Store struct {
	mu      sync.RWMutex
	entries map[graph.NodeID][]graph.Edge

	path    string
	fetcher Fetcher
	logger  *slog.Logger
	stats   *Statistics
	metrics *storeMetrics
}

// NewStore creates a store bound to the given cache file. The file is not
// touched until Load or Save is called.
func NewStore(deps Deps) (*Store, error) {
	if deps.Config.Path == "" {
		return nil, errors.WrapFatal(errors.ErrMissingConfig,
			"adjacency.Store", "NewStore", "cache path required")
	}
	if deps.Fetcher == nil {
		return nil, errors.WrapFatal(errors.ErrMissingConfig,
			"adjacency.Store", "NewStore", "fetcher required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := newStoreMetrics(deps.Metrics)
	if err != nil {
		return nil, err
	}

	return &Store{
		entries: make(map[graph.NodeID][]graph.Edge),
		path:    deps.Config.Path,
		fetcher: deps.Fetcher,
		logger:  logger,
		stats:   NewStatistics(),
		metrics: metrics,
	}, nil
}

// Load reads the cache file into memory. An absent file yields an empty
// cache. A file that cannot be read or parsed also yields an empty cache:
// the cache is an optimization, not a source of truth, so corruption is
// logged and the damaged content is discarded rather than aborting the
// search.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Debug("cache file absent, starting empty",
			"component", "adjacency", "path", s.path)
		return nil
	}
	if err != nil {
		s.logger.Warn("cache file unreadable, starting empty",
			"component", "adjacency", "path", s.path,
			"error", fmt.Errorf("%w: %v", errors.ErrStorageCorrupt, err))
		s.metrics.recordCorruption()
		return nil
	}

	var raw map[graph.NodeID][]cacheEdge
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("cache file corrupt, starting empty",
			"component", "adjacency", "path", s.path,
			"error", fmt.Errorf("%w: %v", errors.ErrStorageCorrupt, err))
		s.metrics.recordCorruption()
		return nil
	}

	entries := make(map[graph.NodeID][]graph.Edge, len(raw))
	for node, cached := range raw {
		edges := make([]graph.Edge, len(cached))
		for i, ce := range cached {
			edges[i] = graph.Edge(ce)
		}
		entries[node] = edges
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	s.stats.UpdateSize(int64(len(entries)))
	s.metrics.setEntries(len(entries))
	s.logger.Info("cache loaded",
		"component", "adjacency", "path", s.path, "nodes", len(entries))
	return nil
}

// GetOrFetch returns the edge list for node, consulting the in-memory cache
// first and falling back to the remote fetcher on a miss. Successful fetch
// results, including empty edge lists, are cached. A fetch error is returned
// to the caller and nothing is recorded, so the node stays fetchable.
func (s *Store) GetOrFetch(ctx context.Context, node graph.NodeID) ([]graph.Edge, error) {
	s.mu.RLock()
	edges, ok := s.entries[node]
	s.mu.RUnlock()

	if ok {
		s.stats.Hit()
		s.metrics.recordLookup("hit")
		return edges, nil
	}

	s.stats.Miss()
	s.metrics.recordLookup("miss")

	fetched, err := s.fetcher.Fetch(ctx, node)
	if err != nil {
		s.stats.FetchFailure()
		s.metrics.recordLookup("fetch_failure")
		return nil, err
	}
	if fetched == nil {
		fetched = []graph.Edge{}
	}

	s.mu.Lock()
	s.entries[node] = fetched
	size := len(s.entries)
	s.mu.Unlock()

	s.stats.Set()
	s.stats.UpdateSize(int64(size))
	s.metrics.setEntries(size)
	return fetched, nil
}

// Get returns the cached edge list for node without fetching.
func (s *Store) Get(node graph.NodeID) ([]graph.Edge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	edges, ok := s.entries[node]
	return edges, ok
}

// Len returns the number of cached nodes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Save writes the full cache to disk. The write goes to a temporary file in
// the cache directory and is renamed into place, so a crash mid-write never
// leaves a truncated cache file behind.
func (s *Store) Save() error {
	s.mu.RLock()
	raw := make(map[graph.NodeID][]cacheEdge, len(s.entries))
	for node, edges := range s.entries {
		cached := make([]cacheEdge, len(edges))
		for i, e := range edges {
			cached[i] = cacheEdge(e)
		}
		raw[node] = cached
	}
	s.mu.RUnlock()

	data, err := json.Marshal(raw)
	if err != nil {
		return errors.WrapFatal(
			fmt.Errorf("%w: %v", errors.ErrStorageWrite, err),
			"adjacency.Store", "Save", "encode cache")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(
			fmt.Errorf("%w: %v", errors.ErrStorageWrite, err),
			"adjacency.Store", "Save", "create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(
			fmt.Errorf("%w: %v", errors.ErrStorageWrite, err),
			"adjacency.Store", "Save", "write temp file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(
			fmt.Errorf("%w: %v", errors.ErrStorageWrite, err),
			"adjacency.Store", "Save", "close temp file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(
			fmt.Errorf("%w: %v", errors.ErrStorageWrite, err),
			"adjacency.Store", "Save", "replace cache file")
	}

	s.metrics.recordSave(len(raw))
	s.logger.Info("cache saved",
		"component", "adjacency", "path", s.path, "nodes", len(raw))
	return nil
}

// Stats returns a snapshot of the store's counters.
func (s *Store) Stats() StatsSummary {
	return s.stats.Summary()
}

// cacheEdge is the on-disk form of a graph.Edge: a compact
// [relation, neighbor, direction] triple.
type cacheEdge graph.Edge

// MarshalJSON encodes the edge as a three-element array.
func (ce cacheEdge) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]string{ce.Rel, string(ce.Neighbor), ce.Direction.String()})
}

// UnmarshalJSON decodes a three-element array into the edge.
func (ce *cacheEdge) UnmarshalJSON(data []byte) error {
	var triple [3]string
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}

	direction, err := graph.ParseDirection(triple[2])
	if err != nil {
		return err
	}

	ce.Rel = triple[0]
	ce.Neighbor = graph.NodeID(triple[1])
	ce.Direction = direction
	return nil
}
