// Package parquet provides data structures and functions for exporting vault
// run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/clutchsports/clutchvault/schema"
	"github.com/parquet-go/parquet-go"
)

// VaultRun represents a single vault aggregation run with metadata.
// This struct maps to the clutchvault_runs database table.
type VaultRun struct {
	// RunID is the unique identifier for this vault run
	RunID int64 `parquet:"run_id,snappy"`

	// LeagueID identifies the league this run aggregated
	LeagueID string `parquet:"league_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalOwners is the number of owners aggregated in this run
	TotalOwners int32 `parquet:"total_owners,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// OwnerStats represents one aggregated owner row produced by a vault run.
// This struct maps to the clutchvault_owner_stats database table.
type OwnerStats struct {
	// RunID references the parent vault run
	RunID int64 `parquet:"run_id,snappy"`

	// OwnerName is the canonical owner name
	OwnerName string `parquet:"owner_name,snappy"`

	// Color is the display color assigned to this owner
	Color string `parquet:"color,snappy"`

	// IsActive indicates whether the owner plays in the latest season
	IsActive bool `parquet:"is_active,snappy"`

	// Seasons is the number of season records attributed to this owner
	Seasons int32 `parquet:"seasons,snappy"`

	// TotalWins is the owner's completed-season win total
	TotalWins int32 `parquet:"total_wins,snappy"`

	// TotalLosses is the owner's completed-season loss total
	TotalLosses int32 `parquet:"total_losses,snappy"`

	// TotalTies is the owner's completed-season tie total
	TotalTies int32 `parquet:"total_ties,snappy"`

	// TotalPF is the owner's completed-season points for
	TotalPF float64 `parquet:"total_pf,snappy"`

	// TotalPA is the owner's completed-season points against
	TotalPA float64 `parquet:"total_pa,snappy"`

	// WinPct is the owner's all-time win percentage
	WinPct float64 `parquet:"win_pct,snappy"`

	// Titles is the number of championships won
	Titles int32 `parquet:"titles,snappy"`

	// BestSeasonYear is the year of the owner's best season (nullable)
	BestSeasonYear *int32 `parquet:"best_season_year,optional,snappy"`

	// BestSeasonPct is the win percentage of the owner's best season (nullable)
	BestSeasonPct *float64 `parquet:"best_season_pct,optional,snappy"`
}

// WriteVaultRunsParquet writes a slice of VaultRun structs to a Parquet file.
func WriteVaultRunsParquet(data []VaultRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the VaultRun struct tags
	writer := parquet.NewGenericWriter[VaultRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteOwnerStatsParquet writes a slice of OwnerStats structs to a Parquet file.
func WriteOwnerStatsParquet(data []OwnerStats, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the OwnerStats struct tags
	writer := parquet.NewGenericWriter[OwnerStats](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertVaultRunRecords converts schema.VaultRunRecord to VaultRun for Parquet export.
func ConvertVaultRunRecords(records []schema.VaultRunRecord) []VaultRun {
	result := make([]VaultRun, len(records))
	for i, record := range records {
		result[i] = VaultRun{
			RunID:         record.RunID,
			LeagueID:      record.LeagueID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalOwners:   record.TotalOwners,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertOwnerStatRecords converts schema.OwnerStatRecord to OwnerStats for Parquet export.
func ConvertOwnerStatRecords(records []schema.OwnerStatRecord) []OwnerStats {
	result := make([]OwnerStats, len(records))
	for i, record := range records {
		result[i] = OwnerStats{
			RunID:          record.RunID,
			OwnerName:      record.OwnerName,
			Color:          record.Color,
			IsActive:       record.IsActive,
			Seasons:        record.Seasons,
			TotalWins:      record.TotalWins,
			TotalLosses:    record.TotalLosses,
			TotalTies:      record.TotalTies,
			TotalPF:        record.TotalPF,
			TotalPA:        record.TotalPA,
			WinPct:         record.WinPct,
			Titles:         record.Titles,
			BestSeasonYear: record.BestSeasonYear,
			BestSeasonPct:  record.BestSeasonPct,
		}
	}
	return result
}
