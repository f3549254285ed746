// Package core has core logic for fetching, reconciling and aggregating
// league history.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/clutchsports/clutchvault/core/algo"
	"github.com/clutchsports/clutchvault/core/detect"
	"github.com/clutchsports/clutchvault/core/flatten"
	"github.com/clutchsports/clutchvault/core/session"
	"github.com/clutchsports/clutchvault/core/vault"
	"github.com/clutchsports/clutchvault/internal/contract"
	"github.com/clutchsports/clutchvault/internal/outwriter"
	"github.com/clutchsports/clutchvault/schema"
)

// ExecutorFunc defines the function signature for executing different vault commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) error

// ExecuteOwnerRankings computes all-time owner stats and prints the ranked
// table. It serves as the main entry point for the 'owners' command.
func ExecuteOwnerRankings(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) error {
	start := time.Now()
	result, err := GetVaultResult(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	ranked := algo.RankOwners(result.OwnerStats, cfg.ResultLimit)
	duration := time.Since(start)
	return outwriter.PrintOwnerStats(ranked, cfg, duration)
}

// ExecuteLeagueSummary computes and prints the league-wide aggregates.
func ExecuteLeagueSummary(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) error {
	start := time.Now()
	result, err := GetVaultResult(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintLeagueStats(result, cfg, duration)
}

// ExecuteDetect scans the league's raw team names for likely human first
// names and prints the per-name detail.
func ExecuteDetect(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) error {
	start := time.Now()
	matches, err := GetDetections(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintDetections(matches, cfg, duration)
}

// GetDetections runs first-name detection over the league's distinct raw
// team names. Shared by the detect command and the MCP tools.
func GetDetections(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) ([]schema.NameDetection, error) {
	detector, err := loadDetector(cfg)
	if err != nil {
		return nil, err
	}

	history, err := cachedLeagueHistory(ctx, cfg, client, mgr)
	if err != nil {
		return nil, err
	}
	records := flatten.Flatten(history, flatten.MaxYear(history))
	return detector.Matches(rawNameSeasons(records)), nil
}

// ExecuteAliasesList fetches the persisted alias list and prints it.
func ExecuteAliasesList(ctx context.Context, cfg *contract.Config, client contract.LeagueClient) error {
	start := time.Now()
	aliases, err := client.GetOwnerAliases(ctx, cfg.LeagueID)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintAliases(aliases, cfg, duration)
}

// ExecuteAliasesSeed builds an assignment session for the league and prints
// the seeded alias batch without persisting anything. Useful as a dry run
// before 'aliases push'.
func ExecuteAliasesSeed(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) error {
	start := time.Now()
	sess, err := buildSession(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintAliases(sess.BuildAliases(), cfg, duration)
}

// ExecuteAliasesApply loads claim directives from the mapping file, replays
// them onto a freshly seeded session, and prints the resulting batch. The
// mapping file is a JSON object of raw name to canonical owner name.
func ExecuteAliasesApply(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) error {
	start := time.Now()
	sess, err := buildAppliedSession(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintAliases(sess.BuildAliases(), cfg, duration)
}

// ExecuteAliasesPush is ExecuteAliasesApply plus the save: the resulting
// alias batch is persisted to the backend as one atomic write.
func ExecuteAliasesPush(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) error {
	sess, err := buildAppliedSession(ctx, cfg, client, mgr)
	if err != nil {
		return err
	}
	if err := sess.Save(ctx, client); err != nil {
		return fmt.Errorf("failed to save aliases: %w", err)
	}
	count := len(sess.BuildAliases())
	_, err = fmt.Fprintf(os.Stdout, "Saved %d aliases for league %s\n", count, cfg.LeagueID)
	return err
}

// GetVaultResult fetches history and aliases, flattens, and aggregates.
// This is the shared path behind the owners and league commands as well as
// the MCP tools. Aggregation runs are tracked in the run store when one is
// configured; tracking failures are warnings, never fatal.
func GetVaultResult(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) (*schema.VaultResult, error) {
	var runID int64
	runStore := mgr.GetRunStore()
	if runStore != nil {
		startTime := time.Now()
		configParams := map[string]any{
			"league_id": cfg.LeagueID,
			"base_url":  cfg.BaseURL,
			"limit":     cfg.ResultLimit,
			"cache_ttl": cfg.CacheTTL.String(),
		}
		var err error
		runID, err = runStore.BeginRun(cfg.LeagueID, startTime, configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	history, err := cachedLeagueHistory(ctx, cfg, client, mgr)
	if err != nil {
		abortRun(runStore, runID)
		return nil, err
	}
	aliases, err := client.GetOwnerAliases(ctx, cfg.LeagueID)
	if err != nil {
		abortRun(runStore, runID)
		return nil, err
	}

	records := flatten.Flatten(history, flatten.MaxYear(history))
	result := vault.Compute(records, aliases)

	if runStore != nil && runID > 0 {
		for _, stat := range result.OwnerStats {
			if err := runStore.RecordOwnerStat(runID, stat); err != nil {
				contract.LogWarn(fmt.Sprintf("Failed to record stats for %s", stat.Name), err)
			}
		}
		if err := runStore.EndRun(runID, time.Now(), len(result.OwnerStats)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}
	return &result, nil
}

// abortRun finalizes a tracked run that failed before producing any owner
// stats, so failed fetches do not pile up as open runs in the store.
func abortRun(runStore contract.RunStore, runID int64) {
	if runStore == nil || runID == 0 {
		return
	}
	if err := runStore.EndRun(runID, time.Now(), 0); err != nil {
		contract.LogWarn("Failed to finalize aborted run", err)
	}
}

// buildSession fetches history and aliases and initializes an assignment
// session with the load-or-seed policy.
func buildSession(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) (*session.Session, error) {
	history, err := cachedLeagueHistory(ctx, cfg, client, mgr)
	if err != nil {
		return nil, err
	}
	aliases, err := client.GetOwnerAliases(ctx, cfg.LeagueID)
	if err != nil {
		return nil, err
	}

	sess := session.NewSession(cfg.LeagueID)
	sess.LoadOrSeed(aliases, latestSeasonRawNames(history))
	return sess, nil
}

// buildAppliedSession builds a session and replays the mapping file onto it.
func buildAppliedSession(ctx context.Context, cfg *contract.Config, client contract.LeagueClient, mgr contract.CacheManager) (*session.Session, error) {
	if cfg.MappingFile == "" {
		return nil, fmt.Errorf("a mapping file is required (use --mapping-file)")
	}
	mapping, err := loadMappingFile(cfg.MappingFile)
	if err != nil {
		return nil, err
	}

	sess, err := buildSession(ctx, cfg, client, mgr)
	if err != nil {
		return nil, err
	}

	// Deterministic replay order regardless of map iteration.
	rawNames := make([]string, 0, len(mapping))
	for raw := range mapping {
		rawNames = append(rawNames, raw)
	}
	sort.Strings(rawNames)

	for _, raw := range rawNames {
		owner := mapping[raw]
		sess.AddOwner(owner)
		if !sess.SetActiveOwner(owner) {
			return nil, fmt.Errorf("invalid owner name %q in mapping file", owner)
		}
		sess.Claim(raw)
	}
	return sess, nil
}

// loadMappingFile reads a JSON object of raw team name to canonical owner.
func loadMappingFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file: %w", err)
	}
	var mapping map[string]string
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("malformed mapping file %s: %w", path, err)
	}
	return mapping, nil
}

// loadDetector builds the first-name detector from the configured dictionary
// file, or the embedded dictionary when none is given.
func loadDetector(cfg *contract.Config) (*detect.Detector, error) {
	if cfg.Dictionary != "" {
		return detect.NewDetectorFromFile(cfg.Dictionary)
	}
	return detect.NewDetector(), nil
}

// rawNameSeasons indexes each distinct raw name to the seasons it appeared
// in, ascending.
func rawNameSeasons(records []schema.TeamSeasonRecord) map[string][]int {
	index := make(map[string][]int, len(records))
	for _, record := range records {
		index[record.RawName] = append(index[record.RawName], record.SeasonYear)
	}
	for name := range index {
		sort.Ints(index[name])
	}
	return index
}

// latestSeasonRawNames returns the raw names from the most recent season.
func latestSeasonRawNames(history map[int][]schema.TeamEntry) []string {
	maxYear := flatten.MaxYear(history)
	if maxYear == 0 {
		return nil
	}
	var names []string
	seen := make(map[string]struct{})
	for _, entry := range history[maxYear] {
		name := entry.ResolvedName()
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
