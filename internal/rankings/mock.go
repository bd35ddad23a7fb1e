package rankings

import (
	"context"
	"sync"

	"github.com/mauv0809/ace-tracker/internal/tennis"
)

var _ Rankings = (*MockRankings)(nil)

// MockRankings is a mock implementation of Rankings for testing.
// Players and Matches back the default behaviour; the Func hooks override it.
type MockRankings struct {
	mu sync.Mutex

	Players []tennis.Player
	Matches map[string][]tennis.MatchResult

	ListPlayersFunc      func(ctx context.Context) []tennis.Player
	GetPlayerMatchesFunc func(ctx context.Context, id string) []tennis.MatchResult

	TopCounts         []int
	MatchLookups      []string
	InvalidationCalls int
}

// NewMockRankings creates a mock serving players.
func NewMockRankings(players ...tennis.Player) *MockRankings {
	return &MockRankings{
		Players: players,
		Matches: make(map[string][]tennis.MatchResult),
	}
}

func (m *MockRankings) ListPlayers(ctx context.Context) []tennis.Player {
	m.mu.Lock()
	fn, players := m.ListPlayersFunc, m.Players
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}
	if players == nil {
		return []tennis.Player{}
	}
	return players
}

func (m *MockRankings) GetPlayer(ctx context.Context, id string) (tennis.Player, bool) {
	for _, p := range m.ListPlayers(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return tennis.Player{}, false
}

func (m *MockRankings) ListTopPlayers(ctx context.Context, count int) []tennis.Player {
	m.mu.Lock()
	m.TopCounts = append(m.TopCounts, count)
	m.mu.Unlock()

	if count <= 0 {
		count = DefaultTopCount
	}
	players := m.ListPlayers(ctx)
	return players[:min(count, len(players))]
}

func (m *MockRankings) GetPlayerMatches(ctx context.Context, id string) []tennis.MatchResult {
	m.mu.Lock()
	m.MatchLookups = append(m.MatchLookups, id)
	fn, matches := m.GetPlayerMatchesFunc, m.Matches[id]
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, id)
	}
	if matches == nil {
		return []tennis.MatchResult{}
	}
	return matches
}

func (m *MockRankings) GetPlayerSummary(ctx context.Context, id string) (tennis.Summary, bool) {
	player, ok := m.GetPlayer(ctx, id)
	if !ok {
		return tennis.Summary{}, false
	}
	return tennis.Summarize(player, m.GetPlayerMatches(ctx, id)), true
}

func (m *MockRankings) InvalidateCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvalidationCalls++
}

// Invalidations returns how many times InvalidateCache was called.
func (m *MockRankings) Invalidations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.InvalidationCalls
}
