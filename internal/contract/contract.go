// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/clutchsports/clutchvault/schema"
)

// LeagueClient defines the Clutch backend operations this tool depends on.
// This allows the core logic to be tested without a live API.
type LeagueClient interface {
	// GetHistory returns the imported league history as a map of season
	// year to that season's team entries, exactly as the backend stores it.
	GetHistory(ctx context.Context, leagueID string) (map[int][]schema.TeamEntry, error)

	// GetOwnerAliases returns the persisted owner-alias list for a league.
	// A league with no aliases yet returns an empty slice, not an error.
	GetOwnerAliases(ctx context.Context, leagueID string) ([]schema.OwnerAlias, error)

	// SaveOwnerAliases replaces the league's alias list with the given
	// batch. The write is last-write-wins; there is no concurrency token.
	SaveOwnerAliases(ctx context.Context, leagueID string, aliases []schema.OwnerAlias) error
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetHistoryStore() CacheStore
	GetRunStore() RunStore
}

// CacheStore defines the interface for cached history payload storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// RunStore defines the interface for tracking vault aggregation runs and
// storing the owner stat rows each run produced.
type RunStore interface {
	// BeginRun creates a new vault run and returns its unique ID.
	BeginRun(leagueID string, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data.
	EndRun(runID int64, endTime time.Time, totalOwners int) error

	// RecordOwnerStat stores one aggregated owner row for a run.
	RecordOwnerStat(runID int64, stat schema.OwnerStat) error

	// GetAllRuns returns every recorded vault run.
	GetAllRuns() ([]schema.VaultRunRecord, error)

	// GetAllOwnerStats returns every recorded owner stat row.
	GetAllOwnerStats() ([]schema.OwnerStatRecord, error)

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStatus, error)

	// Close closes the underlying connection.
	Close() error
}
