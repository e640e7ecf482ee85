package adjacency

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/sempath/graph"
)

// fakeFetcher serves canned edge lists and counts calls per node.
type fakeFetcher struct {
	edges map[graph.NodeID][]graph.Edge
	errs  map[graph.NodeID]error
	calls map[graph.NodeID]int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		edges: make(map[graph.NodeID][]graph.Edge),
		errs:  make(map[graph.NodeID]error),
		calls: make(map[graph.NodeID]int),
	}
}

func (f *fakeFetcher) Fetch(_ context.Context, node graph.NodeID) ([]graph.Edge, error) {
	f.calls[node]++
	if err := f.errs[node]; err != nil {
		return nil, err
	}
	return f.edges[node], nil
}

func newTestStore(t *testing.T, fetcher Fetcher) *Store {
	t.Helper()

	store, err := NewStore(Deps{
		Config:  Config{Path: filepath.Join(t.TempDir(), "cache.json")},
		Fetcher: fetcher,
	})
	require.NoError(t, err)
	return store
}

func TestNewStore_Validation(t *testing.T) {
	_, err := NewStore(Deps{Fetcher: newFakeFetcher()})
	assert.Error(t, err, "missing path")

	_, err = NewStore(Deps{Config: Config{Path: "cache.json"}})
	assert.Error(t, err, "missing fetcher")
}

func TestLoad_AbsentFileStartsEmpty(t *testing.T) {
	store := newTestStore(t, newFakeFetcher())

	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Len())
}

func TestLoad_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"truncated`), 0o644))

	store, err := NewStore(Deps{
		Config:  Config{Path: path},
		Fetcher: newFakeFetcher(),
	})
	require.NoError(t, err)

	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Len())
}

func TestLoad_UnreadableFileStartsEmpty(t *testing.T) {
	// A path that exists but cannot be read as a file: reads fail with a
	// non-ENOENT error and the cache must degrade to empty, not abort.
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.Mkdir(path, 0o755))

	fetcher := newFakeFetcher()
	fetcher.edges["/c/en/dog"] = []graph.Edge{
		{Rel: "IsA", Neighbor: "/c/en/animal", Direction: graph.DirectionOutgoing},
	}

	store, err := NewStore(Deps{
		Config:  Config{Path: path},
		Fetcher: fetcher,
	})
	require.NoError(t, err)

	require.NoError(t, store.Load())
	assert.Equal(t, 0, store.Len())

	// The store stays fully usable after the degraded load
	edges, err := store.GetOrFetch(context.Background(), "/c/en/dog")
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestLoad_ParsesTripleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	content := `{"/c/en/dog": [["IsA", "/c/en/animal", "outgoing"], ["Desires", "/c/en/puppy", "incoming"]]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := NewStore(Deps{
		Config:  Config{Path: path},
		Fetcher: newFakeFetcher(),
	})
	require.NoError(t, err)
	require.NoError(t, store.Load())

	edges, ok := store.Get("/c/en/dog")
	require.True(t, ok)
	assert.Equal(t, []graph.Edge{
		{Rel: "IsA", Neighbor: "/c/en/animal", Direction: graph.DirectionOutgoing},
		{Rel: "Desires", Neighbor: "/c/en/puppy", Direction: graph.DirectionIncoming},
	}, edges)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.edges["/c/en/dog"] = []graph.Edge{
		{Rel: "IsA", Neighbor: "/c/en/animal", Direction: graph.DirectionOutgoing},
	}
	fetcher.edges["/c/en/rock"] = []graph.Edge{}

	store := newTestStore(t, fetcher)
	require.NoError(t, store.Load())

	_, err := store.GetOrFetch(context.Background(), "/c/en/dog")
	require.NoError(t, err)
	_, err = store.GetOrFetch(context.Background(), "/c/en/rock")
	require.NoError(t, err)

	require.NoError(t, store.Save())

	reloaded, err := NewStore(Deps{
		Config:  Config{Path: store.path},
		Fetcher: newFakeFetcher(),
	})
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())

	edges, ok := reloaded.Get("/c/en/dog")
	require.True(t, ok)
	assert.Equal(t, fetcher.edges["/c/en/dog"], edges)

	// Empty edge lists survive the round trip as cached entries
	edges, ok = reloaded.Get("/c/en/rock")
	require.True(t, ok)
	assert.Empty(t, edges)
}

func TestGetOrFetch_HitSkipsFetcher(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.edges["/c/en/dog"] = []graph.Edge{
		{Rel: "IsA", Neighbor: "/c/en/animal", Direction: graph.DirectionOutgoing},
	}

	store := newTestStore(t, fetcher)

	for i := 0; i < 3; i++ {
		edges, err := store.GetOrFetch(context.Background(), "/c/en/dog")
		require.NoError(t, err)
		assert.Len(t, edges, 1)
	}

	assert.Equal(t, 1, fetcher.calls["/c/en/dog"])

	stats := store.Stats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestGetOrFetch_FailureNotCached(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.errs["/c/en/dog"] = fmt.Errorf("connection reset")

	store := newTestStore(t, fetcher)

	_, err := store.GetOrFetch(context.Background(), "/c/en/dog")
	require.Error(t, err)
	assert.Equal(t, 0, store.Len())

	// Failure clears: the next lookup fetches again and caches
	delete(fetcher.errs, "/c/en/dog")
	fetcher.edges["/c/en/dog"] = []graph.Edge{
		{Rel: "IsA", Neighbor: "/c/en/animal", Direction: graph.DirectionOutgoing},
	}

	edges, err := store.GetOrFetch(context.Background(), "/c/en/dog")
	require.NoError(t, err)
	assert.Len(t, edges, 1)
	assert.Equal(t, 2, fetcher.calls["/c/en/dog"])
	assert.Equal(t, int64(1), store.Stats().FetchFailures)
}

func TestSave_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"/c/en/old": []}`), 0o644))

	fetcher := newFakeFetcher()
	fetcher.edges["/c/en/new"] = []graph.Edge{}

	store, err := NewStore(Deps{
		Config:  Config{Path: path},
		Fetcher: fetcher,
	})
	require.NoError(t, err)
	require.NoError(t, store.Load())

	_, err = store.GetOrFetch(context.Background(), "/c/en/new")
	require.NoError(t, err)
	require.NoError(t, store.Save())

	reloaded, err := NewStore(Deps{Config: Config{Path: path}, Fetcher: newFakeFetcher()})
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())

	assert.Equal(t, 2, reloaded.Len())
	_, ok := reloaded.Get("/c/en/old")
	assert.True(t, ok)
	_, ok = reloaded.Get("/c/en/new")
	assert.True(t, ok)
}
