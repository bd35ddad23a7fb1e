package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncSourceLoads()
	s.IncSourceLoads()
	s.IncSourceLoadFailures()
	s.IncCacheLookup(CachePlayers, true)
	s.IncCacheLookup(CachePlayers, false)
	s.IncCacheLookup(CachePlayers, true)
	s.IncCacheInvalidations()
	s.SetPlayersTracked(42)

	assert.Equal(t, 2.0, testutil.ToFloat64(s.SourceLoads))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.SourceLoadFailures))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.CacheLookups.WithLabelValues(CachePlayers, "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.CacheLookups.WithLabelValues(CachePlayers, "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.CacheInvalidations))
	assert.Equal(t, 42.0, testutil.ToFloat64(s.PlayersTracked))

	t.Run("handler exposes registered metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "ace_source_loads_total 2")
		assert.Contains(t, rr.Body.String(), "ace_players_tracked 42")
	})
}
