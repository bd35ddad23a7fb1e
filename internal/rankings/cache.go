package rankings

import (
	"sync"

	"github.com/mauv0809/ace-tracker/internal/matchdata"
	"github.com/mauv0809/ace-tracker/internal/tennis"
)

// Cache holds the parsed export, the aggregated player set and each player's
// match history. It starts empty and is filled lazily by the service.
//
// Every Store call carries the generation observed before the work began. A
// Clear bumps the generation, so results computed from pre-Clear data are
// discarded instead of repopulating the cache.
type Cache struct {
	mu            sync.RWMutex
	generation    uint64
	raw           []matchdata.RawMatch
	rawLoaded     bool
	players       []tennis.Player
	playersLoaded bool
	matches       map[string][]tennis.MatchResult
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		matches: make(map[string][]tennis.MatchResult),
	}
}

// Generation returns the current generation.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// Raw returns the cached export, if loaded.
func (c *Cache) Raw() ([]matchdata.RawMatch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.raw, c.rawLoaded
}

// StoreRaw caches the export unless the cache was cleared since generation.
func (c *Cache) StoreRaw(generation uint64, raw []matchdata.RawMatch) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}
	c.raw, c.rawLoaded = raw, true
	return true
}

// Players returns the cached player set, if aggregated.
func (c *Cache) Players() ([]tennis.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.players, c.playersLoaded
}

// StorePlayers caches the player set unless the cache was cleared since generation.
func (c *Cache) StorePlayers(generation uint64, players []tennis.Player) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}
	c.players, c.playersLoaded = players, true
	return true
}

// Matches returns the cached history for one player, if extracted.
func (c *Cache) Matches(playerID string) ([]tennis.MatchResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.matches[playerID]
	return m, ok
}

// StoreMatches caches one player's history unless the cache was cleared since generation.
func (c *Cache) StoreMatches(generation uint64, playerID string, matches []tennis.MatchResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}
	c.matches[playerID] = matches
	return true
}

// Clear drops everything and starts a new generation.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.raw, c.rawLoaded = nil, false
	c.players, c.playersLoaded = nil, false
	c.matches = make(map[string][]tennis.MatchResult)
}
