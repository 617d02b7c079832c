package stats

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	counts Counts
	calls  int
}

func (f *fakeStore) Counts(context.Context) (Counts, error) {
	f.calls++
	return f.counts, nil
}

func newRouter(store Store, cache *redis.Client, ttl time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/stats", NewHandler(store, cache, ttl, zap.NewNop()).Get)
	return r
}

func getStats(t *testing.T, r *gin.Engine) Counts {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var c Counts
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	return c
}

func TestGetWithoutCache(t *testing.T) {
	store := &fakeStore{counts: Counts{Donors: 2, NGOs: 1, AvailableFood: 3, CompletedDonations: 5}}
	r := newRouter(store, nil, 0)

	c := getStats(t, r)
	assert.Equal(t, store.counts, c)

	getStats(t, r)
	assert.Equal(t, 2, store.calls)
}

func TestGetServesFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	store := &fakeStore{counts: Counts{Donors: 2, NGOs: 1, AvailableFood: 3, CompletedDonations: 5}}
	r := newRouter(store, cache, 30*time.Second)

	first := getStats(t, r)
	require.Equal(t, 1, store.calls)

	// The store changes, but within the TTL the cached counts are served.
	store.counts.Donors = 99
	second := getStats(t, r)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.calls)

	// After the TTL expires the query runs again.
	mr.FastForward(31 * time.Second)
	third := getStats(t, r)
	assert.Equal(t, 99, third.Donors)
	assert.Equal(t, 2, store.calls)
}

func TestStatsJSONKeys(t *testing.T) {
	store := &fakeStore{counts: Counts{Donors: 1, NGOs: 2, AvailableFood: 3, CompletedDonations: 4}}
	r := newRouter(store, nil, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, map[string]int{
		"donors": 1, "ngos": 2, "availableFood": 3, "completedDonations": 4,
	}, raw)
}
