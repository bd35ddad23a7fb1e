package matchdata

import (
	"context"
	"sync"
)

// MockLoader is a mock implementation of the Loader interface for testing.
// It is safe for concurrent use.
type MockLoader struct {
	mu sync.Mutex

	// LoadMatchesFunc overrides the returned matches when set.
	LoadMatchesFunc func(ctx context.Context) ([]RawMatch, error)
	// Matches is returned when LoadMatchesFunc is nil.
	Matches []RawMatch

	loadCalls int
}

// NewMockLoader creates a mock that serves the given matches.
func NewMockLoader(matches ...RawMatch) *MockLoader {
	return &MockLoader{Matches: matches}
}

func (m *MockLoader) LoadMatches(ctx context.Context) ([]RawMatch, error) {
	m.mu.Lock()
	m.loadCalls++
	fn := m.LoadMatchesFunc
	matches := m.Matches
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	return matches, nil
}

// LoadCalls returns the number of times LoadMatches was called.
func (m *MockLoader) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}
