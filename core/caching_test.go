package core

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/internal/iocache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCachedLeagueHistoryHit(t *testing.T) {
	ctx := t.Context()
	cfg := testConfig()

	history := testHistory()
	payload, err := json.Marshal(history)
	require.NoError(t, err)

	store := new(iocache.MockCacheStore)
	store.On("Get", historyCacheKey(cfg)).Return(payload, currentCacheVersion, time.Now().Unix(), nil)

	mgr := new(iocache.MockCacheManager)
	mgr.On("GetHistoryStore").Return(store)

	// The client must never be hit on a cache hit
	client := new(contract.MockLeagueClient)

	got, err := cachedLeagueHistory(ctx, cfg, client, mgr)
	require.NoError(t, err)
	assert.Len(t, got[2021], 2)

	client.AssertNotCalled(t, "GetHistory", mock.Anything, mock.Anything)
}

func TestCachedLeagueHistoryMissFetchesAndStores(t *testing.T) {
	ctx := t.Context()
	cfg := testConfig()

	store := new(iocache.MockCacheStore)
	store.On("Get", historyCacheKey(cfg)).Return([]byte(nil), 0, int64(0), sql.ErrNoRows)
	store.On("Set", historyCacheKey(cfg), mock.Anything, currentCacheVersion, mock.Anything).Return(nil)

	mgr := new(iocache.MockCacheManager)
	mgr.On("GetHistoryStore").Return(store)

	client := new(contract.MockLeagueClient)
	client.On("GetHistory", mock.Anything, "league-1").Return(testHistory(), nil)

	got, err := cachedLeagueHistory(ctx, cfg, client, mgr)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	store.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestCachedLeagueHistoryStaleEntryRefetches(t *testing.T) {
	ctx := t.Context()
	cfg := testConfig()
	cfg.CacheTTL = time.Minute

	payload, err := json.Marshal(testHistory())
	require.NoError(t, err)

	// Entry is far older than the TTL
	staleTS := time.Now().Add(-2 * time.Hour).Unix()

	store := new(iocache.MockCacheStore)
	store.On("Get", historyCacheKey(cfg)).Return(payload, currentCacheVersion, staleTS, nil)
	store.On("Set", historyCacheKey(cfg), mock.Anything, currentCacheVersion, mock.Anything).Return(nil)

	mgr := new(iocache.MockCacheManager)
	mgr.On("GetHistoryStore").Return(store)

	client := new(contract.MockLeagueClient)
	client.On("GetHistory", mock.Anything, "league-1").Return(testHistory(), nil)

	_, err = cachedLeagueHistory(ctx, cfg, client, mgr)
	require.NoError(t, err)

	client.AssertCalled(t, "GetHistory", mock.Anything, "league-1")
}

func TestCachedLeagueHistoryVersionMismatchRefetches(t *testing.T) {
	ctx := t.Context()
	cfg := testConfig()

	payload, err := json.Marshal(testHistory())
	require.NoError(t, err)

	store := new(iocache.MockCacheStore)
	store.On("Get", historyCacheKey(cfg)).Return(payload, currentCacheVersion+1, time.Now().Unix(), nil)
	store.On("Set", historyCacheKey(cfg), mock.Anything, currentCacheVersion, mock.Anything).Return(nil)

	mgr := new(iocache.MockCacheManager)
	mgr.On("GetHistoryStore").Return(store)

	client := new(contract.MockLeagueClient)
	client.On("GetHistory", mock.Anything, "league-1").Return(testHistory(), nil)

	_, err = cachedLeagueHistory(ctx, cfg, client, mgr)
	require.NoError(t, err)

	client.AssertCalled(t, "GetHistory", mock.Anything, "league-1")
}

func TestCachedLeagueHistoryNilStore(t *testing.T) {
	ctx := t.Context()
	cfg := testConfig()

	client := new(contract.MockLeagueClient)
	client.On("GetHistory", mock.Anything, "league-1").Return(testHistory(), nil)

	got, err := cachedLeagueHistory(ctx, cfg, client, nilStoreManager())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHistoryCacheKey(t *testing.T) {
	cfg := testConfig()
	key1 := historyCacheKey(cfg)
	assert.Len(t, key1, 64, "Key should be a sha256 hex digest")

	// Different league gives a different key
	other := cfg.Clone()
	other.LeagueID = "league-2"
	assert.NotEqual(t, key1, historyCacheKey(other))

	// Different backend URL gives a different key
	otherURL := cfg.Clone()
	otherURL.BaseURL = "https://staging.clutchfantasy.com"
	assert.NotEqual(t, key1, historyCacheKey(otherURL))

	// Same config gives the same key
	assert.Equal(t, key1, historyCacheKey(cfg.Clone()))
}
