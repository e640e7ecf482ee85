package adjacency

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks store performance counters.
type Statistics struct {
	// Atomic counters for thread-safe updates
	hits          int64
	misses        int64
	sets          int64
	fetchFailures int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Hit records a cache hit.
func (s *Statistics) Hit() {
	atomic.AddInt64(&s.hits, 1)
}

// Miss records a cache miss.
func (s *Statistics) Miss() {
	atomic.AddInt64(&s.misses, 1)
}

// Set records a new entry being cached.
func (s *Statistics) Set() {
	atomic.AddInt64(&s.sets, 1)
}

// FetchFailure records a miss whose remote fetch failed.
func (s *Statistics) FetchFailure() {
	atomic.AddInt64(&s.fetchFailures, 1)
}

// UpdateSize updates the current entry count.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	s.mu.Unlock()
}

// Hits returns the total number of cache hits.
func (s *Statistics) Hits() int64 {
	return atomic.LoadInt64(&s.hits)
}

// Misses returns the total number of cache misses.
func (s *Statistics) Misses() int64 {
	return atomic.LoadInt64(&s.misses)
}

// Sets returns the total number of entries added.
func (s *Statistics) Sets() int64 {
	return atomic.LoadInt64(&s.sets)
}

// FetchFailures returns the total number of failed remote fetches.
func (s *Statistics) FetchFailures() int64 {
	return atomic.LoadInt64(&s.fetchFailures)
}

// CurrentSize returns the current number of cached nodes.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// HitRatio returns the cache hit ratio (0.0 to 1.0).
func (s *Statistics) HitRatio() float64 {
	hits := s.Hits()
	total := hits + s.Misses()

	if total == 0 {
		return 0.0
	}

	return float64(hits) / float64(total)
}

// Uptime returns how long the store has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// StatsSummary is a point-in-time snapshot of all counters.
type StatsSummary struct {
	Hits          int64         `json:"hits"`
	Misses        int64         `json:"misses"`
	Sets          int64         `json:"sets"`
	FetchFailures int64         `json:"fetch_failures"`
	CurrentSize   int64         `json:"current_size"`
	HitRatio      float64       `json:"hit_ratio"`
	Uptime        time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Hits:          s.Hits(),
		Misses:        s.Misses(),
		Sets:          s.Sets(),
		FetchFailures: s.FetchFailures(),
		CurrentSize:   s.CurrentSize(),
		HitRatio:      s.HitRatio(),
		Uptime:        s.Uptime(),
	}
}
