package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	sourceLoads          int
	sourceLoadFailures   int
	cacheHits            map[string]int
	cacheMisses          map[string]int
	cacheInvalidations   int
	aggregationDurations []float64
	playersTracked       int
	slackNotifSent       int
	slackNotifFailed     int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		cacheHits:            make(map[string]int),
		cacheMisses:          make(map[string]int),
		aggregationDurations: make([]float64, 0),
	}
}

func (m *Mock) IncSourceLoads() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourceLoads++
}

func (m *Mock) IncSourceLoadFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourceLoadFailures++
}

func (m *Mock) IncCacheLookup(cache string, hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.cacheHits[cache]++
	} else {
		m.cacheMisses[cache]++
	}
}

func (m *Mock) IncCacheInvalidations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheInvalidations++
}

func (m *Mock) ObserveAggregationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.aggregationDurations = append(m.aggregationDurations, duration)
}

func (m *Mock) SetPlayersTracked(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playersTracked = count
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// SourceLoads returns the number of times IncSourceLoads was called.
func (m *Mock) SourceLoads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sourceLoads
}

// SourceLoadFailures returns the number of times IncSourceLoadFailures was called.
func (m *Mock) SourceLoadFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sourceLoadFailures
}

// CacheHits returns the number of hits recorded for the named cache.
func (m *Mock) CacheHits(cache string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits[cache]
}

// CacheMisses returns the number of misses recorded for the named cache.
func (m *Mock) CacheMisses(cache string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheMisses[cache]
}

// CacheInvalidations returns the number of times IncCacheInvalidations was called.
func (m *Mock) CacheInvalidations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheInvalidations
}

// AggregationRuns returns how many aggregation durations were observed.
func (m *Mock) AggregationRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.aggregationDurations)
}

// PlayersTracked returns the last value passed to SetPlayersTracked.
func (m *Mock) PlayersTracked() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playersTracked
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}
