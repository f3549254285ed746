package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/schema"
)

// currentCacheVersion defines the version of the cached history schema
const currentCacheVersion = 1

// cachedLeagueHistory fetches the league's import history, going through
// the cache store when one is configured.
func cachedLeagueHistory(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) (map[int][]schema.TeamEntry, error) {
	store := mgr.GetHistoryStore()
	if store == nil {
		// Fallback to a direct fetch
		return client.GetHistory(ctx, cfg.LeagueID)
	}

	key := historyCacheKey(cfg)

	// Check for cache hit
	if history := checkCacheHit(store, key, cfg.CacheTTL); history != nil {
		return history, nil
	}

	// Cache miss: fetch and store
	return fetchAndStore(ctx, cfg, client, store, key)
}

// checkCacheHit attempts to retrieve and validate a cached history payload
func checkCacheHit(store contract.CacheStore, key string, ttl time.Duration) map[int][]schema.TeamEntry {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	// Validate version and staleness
	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if time.Since(entryTimestamp) <= ttl {
			var history map[int][]schema.TeamEntry
			if err := json.Unmarshal(data, &history); err == nil {
				return history // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// fetchAndStore fetches the history from the backend and stores it in cache
func fetchAndStore(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, store contract.CacheStore, key string) (map[int][]schema.TeamEntry, error) {
	history, err := client.GetHistory(ctx, cfg.LeagueID)
	if err != nil {
		return nil, err
	}

	// Store in cache
	if data, err := json.Marshal(history); err == nil {
		_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
	}

	return history, nil
}

// historyCacheKey creates a unique key for a league's history fetch. The
// base URL is part of the key so pointing the tool at a different backend
// never serves stale data.
func historyCacheKey(cfg *contract.Config) string {
	key := fmt.Sprintf("%s:%s", cfg.BaseURL, cfg.LeagueID)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
