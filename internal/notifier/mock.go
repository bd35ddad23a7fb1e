package notifier

import (
	"sync"

	"github.com/mauv0809/ace-tracker/internal/tennis"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendLeaderboardCalls    [][]tennis.Player
	SendPlayerSummaryCalls  []tennis.Summary
	SendPlayerNotFoundCalls []string
	DryRuns                 []bool

	// Spies for send functions
	SendLeaderboardFunc func(players []tennis.Player, dryRun bool) error

	// Spies for format functions
	FormatLeaderboardResponseFunc    func(players []tennis.Player) (any, error)
	FormatPlayerStatsResponseFunc    func(summary tennis.Summary) (any, error)
	FormatPlayerNotFoundResponseFunc func(query string) (any, error)

	// Call records for format functions
	LastLeaderboardResponse    any
	LastPlayerStatsResponse    any
	LastPlayerNotFoundResponse any
	LastPlayerNotFoundQuery    string
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = nil
	m.SendPlayerSummaryCalls = nil
	m.SendPlayerNotFoundCalls = nil
	m.DryRuns = nil
	m.LastLeaderboardResponse = nil
	m.LastPlayerStatsResponse = nil
	m.LastPlayerNotFoundResponse = nil
	m.LastPlayerNotFoundQuery = ""
}

func (m *Mock) SendLeaderboard(players []tennis.Player, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, players)
	m.DryRuns = append(m.DryRuns, dryRun)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(players, dryRun)
	}
	return nil
}

func (m *Mock) SendPlayerSummary(summary tennis.Summary, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerSummaryCalls = append(m.SendPlayerSummaryCalls, summary)
	m.DryRuns = append(m.DryRuns, dryRun)
	return nil
}

func (m *Mock) SendPlayerNotFound(query string, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendPlayerNotFoundCalls = append(m.SendPlayerNotFoundCalls, query)
	m.DryRuns = append(m.DryRuns, dryRun)
	return nil
}

func (m *Mock) FormatLeaderboardResponse(players []tennis.Player) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatLeaderboardResponseFunc != nil {
		resp, err := m.FormatLeaderboardResponseFunc(players)
		m.LastLeaderboardResponse = resp
		return resp, err
	}
	return "formatted_leaderboard", nil
}

func (m *Mock) FormatPlayerStatsResponse(summary tennis.Summary) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FormatPlayerStatsResponseFunc != nil {
		resp, err := m.FormatPlayerStatsResponseFunc(summary)
		m.LastPlayerStatsResponse = resp
		return resp, err
	}
	return "formatted_player_stats", nil
}

func (m *Mock) FormatPlayerNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastPlayerNotFoundQuery = query
	if m.FormatPlayerNotFoundResponseFunc != nil {
		resp, err := m.FormatPlayerNotFoundResponseFunc(query)
		m.LastPlayerNotFoundResponse = resp
		return resp, err
	}
	return "formatted_player_not_found", nil
}

// LeaderboardSends returns how many times SendLeaderboard was called.
func (m *Mock) LeaderboardSends() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SendLeaderboardCalls)
}
